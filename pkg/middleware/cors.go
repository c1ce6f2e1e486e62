package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/seqdash/seqdash/pkg/config"
)

func MiddlewareCors() func(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{config.C.Domain},
		AllowedMethods:   []string{"GET", "POST"},
		AllowCredentials: true,
	}).Handler
}
