package usecase

import "errors"

// Domain errors surfaced to handlers, mapped to HTTP statuses with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotArtisan         = errors.New("only authenticated artisan accounts can create product listings")
	ErrNotRegistered      = errors.New("only registered users can leave reviews")
	ErrNotOwnProfile      = errors.New("you can only update your own seller profile")
	ErrSellerNotFound     = errors.New("seller not found")
	ErrProductNotFound    = errors.New("product not found")
)

// ValidationError carries a human-readable message for semantic checks that
// struct tags cannot express (trimmed-empty fields, cross-field rules).
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}
