package wire

import (
	"handcrafted-haven/internal/adaptor"
	"handcrafted-haven/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, limiter *middleware.RateLimiter) {
	r.With(limiter.Middleware).Post("/api/auth/register", authHandler.Register)
	r.With(limiter.Middleware).Post("/api/auth/login", authHandler.Login)
}
