package adaptor

import (
	"encoding/json"
	"net/http"

	"handcrafted-haven/internal/usecase"

	"go.uber.org/zap"
)

type HealthHandler struct {
	service usecase.HealthService
	log     *zap.Logger
}

func NewHealthHandler(service usecase.HealthService, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		log:     log.With(zap.String("handler", "health")),
	}
}

// CheckDB handles GET /api/health/db
func (h *HealthHandler) CheckDB(w http.ResponseWriter, r *http.Request) {
	resp, code := h.service.CheckDB(r.Context())
	writeProbe(w, code, resp)
}

// CheckDBWrite handles GET /api/health/db-write
func (h *HealthHandler) CheckDBWrite(w http.ResponseWriter, r *http.Request) {
	resp, code := h.service.CheckDBWrite(r.Context())
	writeProbe(w, code, resp)
}

// Probe responses are raw status documents, not the API envelope, so
// monitoring tools can read them directly.
func writeProbe(w http.ResponseWriter, code int, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}
