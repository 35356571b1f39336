package filestore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"handcrafted-haven/internal/data/entity"
	"handcrafted-haven/internal/data/repository"
	"handcrafted-haven/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type usersDocument struct {
	Users []*entity.User `json:"users"`
}

type userStore struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

func NewUserStore(dataDir string, log *zap.Logger) repository.UserStore {
	return &userStore{
		path: filepath.Join(dataDir, usersFile),
		log:  log.With(zap.String("store", "user-file")),
	}
}

func (us *userStore) Create(ctx context.Context, user *entity.User) error {
	us.mu.Lock()
	defer us.mu.Unlock()

	doc, err := us.load()
	if err != nil {
		us.log.Error("Failed to load users document", zap.Error(err))
		return err
	}

	for _, existing := range doc.Users {
		if strings.EqualFold(existing.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}

	doc.Users = append(doc.Users, user)

	if err := writeDocument(us.path, doc); err != nil {
		us.log.Error("Failed to persist users document", zap.Error(err), zap.String("email", user.Email))
		return err
	}

	return nil
}

func (us *userStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	us.mu.Lock()
	defer us.mu.Unlock()

	doc, err := us.load()
	if err != nil {
		us.log.Error("Failed to load users document", zap.Error(err))
		return nil, err
	}

	for _, user := range doc.Users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}

	return nil, nil
}

func (us *userStore) load() (*usersDocument, error) {
	doc := &usersDocument{}
	if err := readDocument(us.path, doc, seedUsers); err != nil {
		return nil, err
	}
	if doc.Users == nil {
		doc.Users = []*entity.User{}
	}
	return doc, nil
}

// seedUsers builds the demo accounts so a fresh deployment has a buyer and an
// artisan to sign in with.
func seedUsers() ([]byte, error) {
	now := time.Now().UTC()

	buyerHash, err := utils.HashPassword("Password123!")
	if err != nil {
		return nil, err
	}
	artisanHash, err := utils.HashPassword("Password123!")
	if err != nil {
		return nil, err
	}

	businessName := "Demo Artisan Studio"
	bio := "Seeded artisan account for local testing."

	doc := usersDocument{Users: []*entity.User{
		{
			ID:           uuid.New(),
			FirstName:    "Demo",
			LastName:     "Buyer",
			Email:        "buyer.demo@handcraftedhaven.test",
			AccountType:  entity.AccountBuyer,
			PasswordHash: buyerHash,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			FirstName:    "Demo",
			LastName:     "Artisan",
			Email:        "artisan.demo@handcraftedhaven.test",
			AccountType:  entity.AccountArtisan,
			BusinessName: &businessName,
			Bio:          &bio,
			PasswordHash: artisanHash,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}}

	return json.MarshalIndent(doc, "", "  ")
}
