package usecase

import (
	"context"
	"fmt"
	"strings"

	"handcrafted-haven/internal/data/repository"
	"handcrafted-haven/internal/dto/request"
	"handcrafted-haven/internal/dto/response"
	"handcrafted-haven/pkg/utils"

	"go.uber.org/zap"
)

type SellerService interface {
	GetProfile(ctx context.Context, sellerEmail string) (*response.SellerProfileResponse, error)
	UpdateStory(ctx context.Context, sellerEmail string, req *request.UpdateSellerStoryRequest) error
}

type sellerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSellerService(repo *repository.Repository, log *zap.Logger) SellerService {
	return &sellerService{
		repo: repo,
		log:  log.With(zap.String("service", "seller")),
	}
}

// GetProfile derives the seller's profile from the account plus their product
// set; there is no seller table. The story falls back to the account bio
// before any product carries one.
func (s *sellerService) GetProfile(ctx context.Context, sellerEmail string) (*response.SellerProfileResponse, error) {
	email := utils.NormalizeEmail(sellerEmail)

	seller, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up seller", zap.Error(err), zap.String("seller_email", email))
		return nil, fmt.Errorf("failed to look up seller")
	}

	if seller == nil || !seller.IsArtisan() {
		return nil, ErrSellerNotFound
	}

	products, err := s.repo.Catalog.ListBySeller(ctx, email)
	if err != nil {
		s.log.Error("Failed to list seller products", zap.Error(err), zap.String("seller_email", email))
		return nil, fmt.Errorf("failed to list seller products")
	}

	story := ""
	if len(products) > 0 && products[0].SellerStory != nil {
		story = *products[0].SellerStory
	} else if seller.Bio != nil {
		story = *seller.Bio
	}

	return &response.SellerProfileResponse{
		SellerEmail:        email,
		SellerName:         seller.FullName(),
		SellerBusinessName: seller.BusinessName,
		SellerStory:        story,
		Products:           products,
	}, nil
}

// UpdateStory rewrites the story on every product the seller owns. Only the
// seller may update their own profile.
func (s *sellerService) UpdateStory(ctx context.Context, sellerEmail string, req *request.UpdateSellerStoryRequest) error {
	email := utils.NormalizeEmail(sellerEmail)
	requesterEmail := utils.NormalizeEmail(req.RequesterEmail)

	if requesterEmail != email {
		s.log.Warn("Story update for another seller's profile",
			zap.String("seller_email", email),
			zap.String("requester_email", requesterEmail),
		)
		return ErrNotOwnProfile
	}

	seller, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up seller", zap.Error(err), zap.String("seller_email", email))
		return fmt.Errorf("failed to look up seller")
	}

	if seller == nil || !seller.IsArtisan() {
		return ErrSellerNotFound
	}

	updated, err := s.repo.Catalog.UpdateSellerStory(ctx, email, strings.TrimSpace(req.Story))
	if err != nil {
		s.log.Error("Failed to update seller story", zap.Error(err), zap.String("seller_email", email))
		return fmt.Errorf("failed to update seller story")
	}

	s.log.Info("Seller story updated",
		zap.String("seller_email", email),
		zap.Bool("products_updated", updated),
	)

	return nil
}
