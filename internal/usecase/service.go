package usecase

import (
	"handcrafted-haven/internal/data/repository"
	"handcrafted-haven/pkg/database"
	"handcrafted-haven/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Seller  SellerService
	Health  HealthService
}

// NewService wires the services. db may be nil when the file backend is
// configured without a database; the health probes report that state.
func NewService(repo *repository.Repository, db database.PgxIface, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, log),
		Catalog: NewCatalogService(repo, log),
		Seller:  NewSellerService(repo, log),
		Health:  NewHealthService(db, config, log),
	}
}
