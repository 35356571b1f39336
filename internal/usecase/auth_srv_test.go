package usecase

import (
	"context"
	"testing"
	"time"

	"handcrafted-haven/internal/data/entity"
	"handcrafted-haven/internal/data/repository"
	"handcrafted-haven/internal/dto/request"
	"handcrafted-haven/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func registeredUser(t *testing.T, email, password string, accountType entity.AccountType) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	return &entity.User{
		ID:           uuid.New(),
		FirstName:    "Emma",
		LastName:     "Wilson",
		Email:        email,
		AccountType:  accountType,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestAuthService_Register(t *testing.T) {
	users := new(mockUserStore)
	users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	svc := NewAuthService(users, zap.NewNop())

	result, err := svc.Register(context.Background(), &request.RegisterRequest{
		FirstName:   "  Emma ",
		LastName:    "Wilson",
		Email:       "Emma@Example.COM ",
		Password:    "Password123!",
		AccountType: "buyer",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Emma", result.FirstName)
	assert.Equal(t, "emma@example.com", result.Email)
	assert.Equal(t, entity.AccountBuyer, result.AccountType)

	created := users.Calls[0].Arguments.Get(1).(*entity.User)
	assert.NotEqual(t, "Password123!", created.PasswordHash)
	users.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	users := new(mockUserStore)
	users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

	svc := NewAuthService(users, zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		FirstName:   "Emma",
		LastName:    "Wilson",
		Email:       "emma@example.com",
		Password:    "Password123!",
		AccountType: "buyer",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestAuthService_RegisterArtisanRequiresBusinessName(t *testing.T) {
	users := new(mockUserStore)

	svc := NewAuthService(users, zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		FirstName:    "Sarah",
		LastName:     "Crafts",
		Email:        "sarah@crafts.com",
		Password:     "Password123!",
		AccountType:  "artisan",
		BusinessName: "   ",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterRejectsBlankNames(t *testing.T) {
	users := new(mockUserStore)

	svc := NewAuthService(users, zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		FirstName:   "   ",
		LastName:    "Wilson",
		Email:       "emma@example.com",
		Password:    "Password123!",
		AccountType: "buyer",
	})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestAuthService_Login(t *testing.T) {
	user := registeredUser(t, "emma@example.com", "Password123!", entity.AccountBuyer)

	users := new(mockUserStore)
	users.On("FindByEmail", mock.Anything, "emma@example.com").Return(user, nil)

	svc := NewAuthService(users, zap.NewNop())

	result, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    " Emma@Example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "emma@example.com", result.Email)
}

func TestAuthService_LoginFailureIsGeneric(t *testing.T) {
	user := registeredUser(t, "emma@example.com", "Password123!", entity.AccountBuyer)

	users := new(mockUserStore)
	users.On("FindByEmail", mock.Anything, "emma@example.com").Return(user, nil)
	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc := NewAuthService(users, zap.NewNop())

	_, wrongPassword := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "emma@example.com",
		Password: "wrong-password",
	})
	_, unknownEmail := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
}

func TestAuthService_GetUserByEmail(t *testing.T) {
	user := registeredUser(t, "emma@example.com", "Password123!", entity.AccountBuyer)

	users := new(mockUserStore)
	users.On("FindByEmail", mock.Anything, "emma@example.com").Return(user, nil)
	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc := NewAuthService(users, zap.NewNop())

	found, err := svc.GetUserByEmail(context.Background(), "emma@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)

	missing, err := svc.GetUserByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
