package adaptor

import (
	"encoding/json"
	"net/http"
	"net/url"

	"handcrafted-haven/internal/dto/request"
	"handcrafted-haven/internal/usecase"
	"handcrafted-haven/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SellerHandler struct {
	service usecase.SellerService
	log     *zap.Logger
}

func NewSellerHandler(service usecase.SellerService, log *zap.Logger) *SellerHandler {
	return &SellerHandler{
		service: service,
		log:     log.With(zap.String("handler", "seller")),
	}
}

// GetProfile handles GET /api/sellers/{email}
func (h *SellerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	sellerEmail, ok := h.parseSellerEmail(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), sellerEmail)
	if err != nil {
		handleServiceError(w, h.log, err, "get seller profile")
		return
	}

	utils.ResponseSuccess(w, "Seller profile retrieved successfully", profile)
}

// UpdateStory handles PATCH /api/sellers/{email}
func (h *SellerHandler) UpdateStory(w http.ResponseWriter, r *http.Request) {
	sellerEmail, ok := h.parseSellerEmail(w, r)
	if !ok {
		return
	}

	var req request.UpdateSellerStoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request payload.", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateStory(r.Context(), sellerEmail, &req); err != nil {
		handleServiceError(w, h.log, err, "update seller story")
		return
	}

	utils.ResponseSuccess(w, "Seller story updated successfully.", nil)
}

// parseSellerEmail decodes the URL-escaped email path segment.
func (h *SellerHandler) parseSellerEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "email")

	sellerEmail, err := url.PathUnescape(raw)
	if err != nil || sellerEmail == "" {
		utils.ResponseBadRequest(w, "Invalid seller email.", nil)
		return "", false
	}

	return sellerEmail, true
}
