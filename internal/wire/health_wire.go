package wire

import (
	"handcrafted-haven/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHealth(r chi.Router, healthHandler *adaptor.HealthHandler) {
	r.Get("/api/health/db", healthHandler.CheckDB)
	r.Get("/api/health/db-write", healthHandler.CheckDBWrite)
}
