package usecase

import (
	"context"

	"handcrafted-haven/internal/data/entity"
	"handcrafted-haven/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

type mockCatalogStore struct {
	mock.Mock
}

func (m *mockCatalogStore) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]*entity.Product)
	return products, args.Error(1)
}

func (m *mockCatalogStore) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)
	return product, args.Error(1)
}

func (m *mockCatalogStore) CreateProduct(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockCatalogStore) AddReview(ctx context.Context, productID int64, review *entity.Review) error {
	args := m.Called(ctx, productID, review)
	return args.Error(0)
}

func (m *mockCatalogStore) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	args := m.Called(ctx, sellerEmail)
	products, _ := args.Get(0).([]*entity.Product)
	return products, args.Error(1)
}

func (m *mockCatalogStore) UpdateSellerStory(ctx context.Context, sellerEmail, story string) (bool, error) {
	args := m.Called(ctx, sellerEmail, story)
	return args.Bool(0), args.Error(1)
}
