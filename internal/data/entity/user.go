package entity

import (
	"time"

	"github.com/google/uuid"
)

type AccountType string

const (
	AccountBuyer   AccountType = "buyer"
	AccountArtisan AccountType = "artisan"
)

type User struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	FirstName    string      `db:"first_name" json:"firstName"`
	LastName     string      `db:"last_name" json:"lastName"`
	Email        string      `db:"email" json:"email"` // normalized, unique
	AccountType  AccountType `db:"account_type" json:"accountType"`
	BusinessName *string     `db:"business_name" json:"businessName,omitempty"`
	Bio          *string     `db:"bio" json:"bio,omitempty"`
	PasswordHash string      `db:"password_hash" json:"passwordHash"`
	CreatedAt    time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updatedAt"`
}

// FullName is the display name snapshotted onto products and reviews.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsArtisan() bool {
	return u.AccountType == AccountArtisan
}
