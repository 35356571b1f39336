package usecase

import (
	"context"
	"testing"

	"handcrafted-haven/internal/data/entity"
	"handcrafted-haven/internal/data/repository"
	"handcrafted-haven/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSellerService(users *mockUserStore, catalog *mockCatalogStore) SellerService {
	repo := &repository.Repository{User: users, Catalog: catalog}
	return NewSellerService(repo, zap.NewNop())
}

func TestSellerService_GetProfileStoryFromProducts(t *testing.T) {
	seller := registeredUser(t, "sarah@crafts.com", "Password123!", entity.AccountArtisan)
	story := "Leatherwork from family traditions."

	users := new(mockUserStore)
	users.On("FindByEmail", mock.Anything, "sarah@crafts.com").Return(seller, nil)

	catalog := new(mockCatalogStore)
	catalog.On("ListBySeller", mock.Anything, "sarah@crafts.com").Return([]*entity.Product{
		{ID: 1, SellerEmail: "sarah@crafts.com", SellerStory: &story},
	}, nil)

	svc := newSellerService(users, catalog)

	profile, err := svc.GetProfile(context.Background(), "sarah@crafts.com")
	require.NoError(t, err)
	assert.Equal(t, story, profile.SellerStory)
	assert.Len(t, profile.Products, 1)
}

func TestSellerService_GetProfileStoryFallsBackToBio(t *testing.T) {
	bio := "I make things by hand."
	seller := registeredUser(t, "sarah@crafts.com", "Password123!", entity.AccountArtisan)
	seller.Bio = &bio

	users := new(mockUserStore)
	users.On("FindByEmail", mock.Anything, "sarah@crafts.com").Return(seller, nil)

	catalog := new(mockCatalogStore)
	catalog.On("ListBySeller", mock.Anything, "sarah@crafts.com").Return([]*entity.Product{}, nil)

	svc := newSellerService(users, catalog)

	profile, err := svc.GetProfile(context.Background(), "sarah@crafts.com")
	require.NoError(t, err)
	assert.Equal(t, bio, profile.SellerStory)
	assert.Empty(t, profile.Products)
}

func TestSellerService_GetProfileNotFound(t *testing.T) {
	buyer := registeredUser(t, "emma@example.com", "Password123!", entity.AccountBuyer)

	users := new(mockUserStore)
	users.On("FindByEmail", mock.Anything, "emma@example.com").Return(buyer, nil)
	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc := newSellerService(users, new(mockCatalogStore))

	_, buyerErr := svc.GetProfile(context.Background(), "emma@example.com")
	_, unknownErr := svc.GetProfile(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, buyerErr, ErrSellerNotFound)
	assert.ErrorIs(t, unknownErr, ErrSellerNotFound)
}

func TestSellerService_UpdateStory(t *testing.T) {
	seller := registeredUser(t, "sarah@crafts.com", "Password123!", entity.AccountArtisan)

	users := new(mockUserStore)
	users.On("FindByEmail", mock.Anything, "sarah@crafts.com").Return(seller, nil)

	catalog := new(mockCatalogStore)
	catalog.On("UpdateSellerStory", mock.Anything, "sarah@crafts.com", "A new chapter.").Return(true, nil)

	svc := newSellerService(users, catalog)

	err := svc.UpdateStory(context.Background(), "sarah@crafts.com", &request.UpdateSellerStoryRequest{
		RequesterEmail: "Sarah@Crafts.com",
		Story:          "  A new chapter. ",
	})
	require.NoError(t, err)
	catalog.AssertExpectations(t)
}

func TestSellerService_UpdateStoryRejectsOtherProfiles(t *testing.T) {
	users := new(mockUserStore)
	catalog := new(mockCatalogStore)

	svc := newSellerService(users, catalog)

	err := svc.UpdateStory(context.Background(), "sarah@crafts.com", &request.UpdateSellerStoryRequest{
		RequesterEmail: "emma@example.com",
		Story:          "Not my shop.",
	})

	assert.ErrorIs(t, err, ErrNotOwnProfile)
	catalog.AssertNotCalled(t, "UpdateSellerStory", mock.Anything, mock.Anything, mock.Anything)
}
