package repository

import "errors"

// Sentinel errors shared by both store backends. Handlers map these to HTTP
// statuses with errors.Is instead of matching error text.
var (
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	ErrNotFound       = errors.New("not found")
)
