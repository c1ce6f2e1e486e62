package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Jleagle/rate-limit-go"
	"github.com/seqdash/seqdash/pkg/log"
)

// RateLimiter throttles requests per client IP. A request that cannot be
// served within its context deadline gets a 429 with the limit advertised in
// the response headers.
func RateLimiter(limiters *rate.Limiters) func(http.Handler) http.Handler {

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			err := limiters.GetLimiter(r.RemoteAddr).Wait(r.Context())
			if err != nil {

				if !errors.Is(err, context.Canceled) {
					log.InfoS(err)
				}

				w.Header().Set("X-RateLimit-Every", limiters.GetMinInterval().String())
				w.Header().Set("X-RateLimit-Burst", fmt.Sprint(limiters.GetBurst()))

				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
