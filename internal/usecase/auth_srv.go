package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"handcrafted-haven/internal/data/entity"
	"handcrafted-haven/internal/data/repository"
	"handcrafted-haven/internal/dto/request"
	"handcrafted-haven/internal/dto/response"
	"handcrafted-haven/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*response.UserResponse, error)
}

type authService struct {
	users repository.UserStore
	log   *zap.Logger
}

func NewAuthService(users repository.UserStore, log *zap.Logger) AuthService {
	return &authService{
		users: users,
		log:   log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	email := utils.NormalizeEmail(req.Email)
	businessName := strings.TrimSpace(req.BusinessName)
	bio := strings.TrimSpace(req.Bio)
	accountType := entity.AccountType(req.AccountType)

	if firstName == "" || lastName == "" {
		return nil, NewValidationError("First and last name are required.")
	}

	// Business name is a cross-field rule the struct tags cannot express.
	if accountType == entity.AccountArtisan && businessName == "" {
		return nil, NewValidationError("Business name is required for artisan accounts.")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		AccountType:  accountType,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if businessName != "" {
		user.BusinessName = &businessName
	}
	if bio != "" {
		user.Bio = &bio
	}

	if err := s.users.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicateEmail {
			s.log.Warn("Registration with existing email", zap.String("email", email))
			return nil, err
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("email", email),
		zap.String("account_type", string(accountType)),
	)

	return response.UserToResponse(user), nil
}

// Login returns the same generic failure for an unknown email and for a wrong
// password; callers can never tell which it was.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to find user")
	}

	if user == nil {
		s.log.Warn("Login with unknown email", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login with wrong password", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in", zap.String("email", email))

	return response.UserToResponse(user), nil
}

func (s *authService) GetUserByEmail(ctx context.Context, email string) (*response.UserResponse, error) {
	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to find user")
	}

	if user == nil {
		return nil, nil
	}

	return response.UserToResponse(user), nil
}
