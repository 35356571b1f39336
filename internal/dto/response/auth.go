package response

import (
	"time"

	"handcrafted-haven/internal/data/entity"
)

// UserResponse is the public account projection. It never carries the
// password hash.
type UserResponse struct {
	FirstName    string             `json:"firstName"`
	LastName     string             `json:"lastName"`
	Email        string             `json:"email"`
	AccountType  entity.AccountType `json:"accountType"`
	BusinessName *string            `json:"businessName,omitempty"`
	Bio          *string            `json:"bio,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func UserToResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		AccountType:  user.AccountType,
		BusinessName: user.BusinessName,
		Bio:          user.Bio,
		CreatedAt:    user.CreatedAt,
	}
}
