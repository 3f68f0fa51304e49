package core

import (
	"context"
	"errors"
)

var (
	ErrConflictedUser = errors.New("user already exists")
	ErrUserNotFound   = errors.New("user not found")
)

// UserStore is unconditional CRUD over account rows. Credential checks
// belong to AccountService; the store only guarantees username uniqueness.
type UserStore interface {
	CreateUser(ctx context.Context, username, password string) error

	// GetPassword returns the stored password for username. The second
	// return reports whether the account exists.
	GetPassword(ctx context.Context, username string) (string, bool, error)

	UpdatePassword(ctx context.Context, username, newPassword string) error

	DeleteUser(ctx context.Context, username string) error
}
