package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"handcrafted-haven/internal/data/entity"
	"handcrafted-haven/internal/data/repository"
	"handcrafted-haven/internal/dto/request"
	"handcrafted-haven/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error)
	GetProductByID(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error)
	AddReview(ctx context.Context, productID int64, req *request.CreateReviewRequest) (*entity.Review, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	products, err := s.repo.Catalog.ListProducts(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("failed to list products")
	}

	return products, nil
}

func (s *catalogService) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := s.repo.Catalog.GetProductByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.Int64("product_id", id))
		return nil, fmt.Errorf("failed to get product")
	}

	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

// CreateProduct snapshots the seller's identity onto the listing at creation
// time. Only artisan accounts may create listings.
func (s *catalogService) CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
	sellerEmail := utils.NormalizeEmail(req.SellerEmail)

	seller, err := s.repo.User.FindByEmail(ctx, sellerEmail)
	if err != nil {
		s.log.Error("Failed to look up seller", zap.Error(err), zap.String("seller_email", sellerEmail))
		return nil, fmt.Errorf("failed to look up seller")
	}

	if seller == nil || !seller.IsArtisan() {
		s.log.Warn("Non-artisan attempted to create product", zap.String("seller_email", sellerEmail))
		return nil, ErrNotArtisan
	}

	product := &entity.Product{
		SellerEmail:        sellerEmail,
		SellerName:         seller.FullName(),
		SellerBusinessName: seller.BusinessName,
		Name:               strings.TrimSpace(req.Name),
		Description:        strings.TrimSpace(req.Description),
		Category:           strings.ToLower(strings.TrimSpace(req.Category)),
		Price:              req.Price,
		CreatedAt:          time.Now(),
	}
	if req.ImageURL != nil {
		if imageURL := strings.TrimSpace(*req.ImageURL); imageURL != "" {
			product.ImageURL = &imageURL
		}
	}

	if err := s.repo.Catalog.CreateProduct(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("seller_email", sellerEmail))
		return nil, fmt.Errorf("failed to create product")
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("seller_email", sellerEmail),
		zap.String("category", product.Category),
	)

	return product, nil
}

// AddReview requires a registered reviewer and an existing product; a missing
// product mutates nothing.
func (s *catalogService) AddReview(ctx context.Context, productID int64, req *request.CreateReviewRequest) (*entity.Review, error) {
	reviewerEmail := utils.NormalizeEmail(req.ReviewerEmail)

	reviewer, err := s.repo.User.FindByEmail(ctx, reviewerEmail)
	if err != nil {
		s.log.Error("Failed to look up reviewer", zap.Error(err), zap.String("reviewer_email", reviewerEmail))
		return nil, fmt.Errorf("failed to look up reviewer")
	}

	if reviewer == nil {
		s.log.Warn("Unregistered reviewer", zap.String("reviewer_email", reviewerEmail))
		return nil, ErrNotRegistered
	}

	review := &entity.Review{
		ReviewerEmail: reviewerEmail,
		ReviewerName:  reviewer.FullName(),
		Rating:        req.Rating,
		Review:        strings.TrimSpace(req.Review),
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Catalog.AddReview(ctx, productID, review); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		s.log.Error("Failed to add review", zap.Error(err), zap.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to add review")
	}

	s.log.Info("Review added",
		zap.Int64("product_id", productID),
		zap.Int64("review_id", review.ID),
		zap.Int("rating", review.Rating),
	)

	return review, nil
}
