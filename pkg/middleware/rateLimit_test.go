package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jleagle/rate-limit-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedHandler(limiters *rate.Limiters) http.Handler {
	return RateLimiter(limiters)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRateLimiterWithinBurst(t *testing.T) {

	handler := rateLimitedHandler(rate.New(time.Hour, rate.WithBurst(2)))

	for i := 0; i < 2; i++ {

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/costs.json", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterExhausted(t *testing.T) {

	handler := rateLimitedHandler(rate.New(time.Hour, rate.WithBurst(1)))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/costs.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// The next token is an hour away, further than this request can wait
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	r := httptest.NewRequest("GET", "/costs.json", nil).WithContext(ctx)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, time.Hour.String(), w.Header().Get("X-RateLimit-Every"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Burst"))
}
