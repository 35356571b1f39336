package adaptor

import (
	"errors"
	"net/http"

	"handcrafted-haven/internal/data/repository"
	"handcrafted-haven/internal/usecase"
	"handcrafted-haven/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Seller  *SellerHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Product: NewProductHandler(service.Catalog, log),
		Seller:  NewSellerHandler(service.Seller, log),
		Health:  NewHealthHandler(service.Health, log),
	}
}

// handleServiceError maps domain errors onto HTTP statuses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, validationErr.Error(), nil)

	case errors.Is(err, repository.ErrDuplicateEmail):
		log.Warn(operation+" failed - duplicate email", zap.Error(err))
		utils.ResponseConflict(w, "An account with this email already exists.")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid email or password.")

	case errors.Is(err, usecase.ErrNotArtisan):
		log.Warn(operation+" failed - not an artisan", zap.Error(err))
		utils.ResponseForbidden(w, "Only authenticated artisan accounts can create product listings.")

	case errors.Is(err, usecase.ErrNotRegistered):
		log.Warn(operation+" failed - unregistered reviewer", zap.Error(err))
		utils.ResponseForbidden(w, "Only registered users can leave reviews.")

	case errors.Is(err, usecase.ErrNotOwnProfile):
		log.Warn(operation+" failed - not own profile", zap.Error(err))
		utils.ResponseForbidden(w, "You can only update your own seller profile.")

	case errors.Is(err, usecase.ErrProductNotFound):
		log.Warn(operation+" failed - product not found", zap.Error(err))
		utils.ResponseNotFound(w, "Product not found.")

	case errors.Is(err, usecase.ErrSellerNotFound):
		log.Warn(operation+" failed - seller not found", zap.Error(err))
		utils.ResponseNotFound(w, "Seller not found.")

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
