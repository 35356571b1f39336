package filestore

import (
	"context"
	"testing"
	"time"

	"handcrafted-haven/internal/data/entity"
	"handcrafted-haven/internal/data/repository"
	"handcrafted-haven/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUser(email string) *entity.User {
	now := time.Now().UTC()
	return &entity.User{
		ID:           uuid.New(),
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		AccountType:  entity.AccountBuyer,
		PasswordHash: "irrelevant",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserStore_SeedsDemoAccounts(t *testing.T) {
	store := NewUserStore(t.TempDir(), zap.NewNop())
	ctx := context.Background()

	buyer, err := store.FindByEmail(ctx, "buyer.demo@handcraftedhaven.test")
	require.NoError(t, err)
	require.NotNil(t, buyer)
	assert.Equal(t, entity.AccountBuyer, buyer.AccountType)
	assert.True(t, utils.CheckPasswordHash("Password123!", buyer.PasswordHash))

	artisan, err := store.FindByEmail(ctx, "artisan.demo@handcraftedhaven.test")
	require.NoError(t, err)
	require.NotNil(t, artisan)
	require.NotNil(t, artisan.BusinessName)
	assert.Equal(t, "Demo Artisan Studio", *artisan.BusinessName)
}

func TestUserStore_CreateAndFind(t *testing.T) {
	store := NewUserStore(t.TempDir(), zap.NewNop())
	ctx := context.Background()

	user := newTestUser("jordan@example.com")
	require.NoError(t, store.Create(ctx, user))

	found, err := store.FindByEmail(ctx, "jordan@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
}

func TestUserStore_DuplicateEmailCaseInsensitive(t *testing.T) {
	store := NewUserStore(t.TempDir(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newTestUser("jordan@example.com")))

	err := store.Create(ctx, newTestUser("Jordan@Example.COM"))
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserStore_FindUnknownEmail(t *testing.T) {
	store := NewUserStore(t.TempDir(), zap.NewNop())

	found, err := store.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}
