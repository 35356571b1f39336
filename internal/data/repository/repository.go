package repository

import (
	"context"

	"handcrafted-haven/internal/data/entity"
	"handcrafted-haven/pkg/database"

	"go.uber.org/zap"
)

// UserStore persists accounts. Both the Postgres and the JSON-file backend
// implement it; callers never branch on the backend.
type UserStore interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ProductFilter narrows ListProducts. Category matches case-insensitively;
// nil price bounds are open.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// CatalogStore persists products and their reviews.
type CatalogStore interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	GetProductByID(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, product *entity.Product) error
	AddReview(ctx context.Context, productID int64, review *entity.Review) error
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error)
	UpdateSellerStory(ctx context.Context, sellerEmail, story string) (bool, error)
}

type Repository struct {
	User    UserStore
	Catalog CatalogStore
}

// NewRepository wires the Postgres-backed stores. The file-backed equivalent
// lives in internal/data/filestore.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Catalog: NewCatalogRepository(db, log),
	}
}
