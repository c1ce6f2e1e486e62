package main

import (
	"compress/flate"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jleagle/rate-limit-go"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/seqdash/seqdash/cmd/api/handlers"
	"github.com/seqdash/seqdash/pkg/config"
	"github.com/seqdash/seqdash/pkg/log"
	"github.com/seqdash/seqdash/pkg/middleware"
	"github.com/seqdash/seqdash/pkg/session"
	"github.com/seqdash/seqdash/pkg/source"
)

var (
	version string
	commits string
)

func main() {

	err := config.Init(version, commits)
	log.InitZap(log.LogNameAPI)
	defer log.Flush()
	if err != nil {
		log.ErrS(err)
		return
	}

	session.InitSession()
	handlers.Init(source.NewClient())

	// Routes
	r := chi.NewRouter()
	r.Use(chiMiddleware.RedirectSlashes)
	r.Use(middleware.MiddlewareCors())
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RateLimiter(rate.New(time.Second/2, rate.WithBurst(10))))
	r.Use(chiMiddleware.NewCompressor(flate.DefaultCompression, "application/json", "text/csv", "text/tab-separated-values").Handler)

	r.Mount("/billing", handlers.BillingRouter())
	r.Mount("/insights", handlers.InsightsRouter())
	r.Mount("/settings", handlers.SettingsRouter())
	r.Mount("/health-check", handlers.HealthCheckRouter())

	r.NotFound(handlers.Error404Handler)

	// Serve
	s := &http.Server{
		Addr:              config.ListenOn(),
		Handler:           r,
		ReadTimeout:       2 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {

		log.Info("Starting API on http://" + s.Addr)

		err := s.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.ErrS(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = s.Shutdown(ctx)
	if err != nil {
		log.ErrS(err)
	}
}
