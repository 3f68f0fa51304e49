package core

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrBadCredentials     = errors.New("invalid username or password")
	ErrMissingCredentials = errors.New("username and password are required")
)

// AccountService owns the identity rules layered on free-text usernames.
// There is no session state; every request re-authenticates against the
// stored password. Passwords are stored and compared in plaintext, which
// is a known security defect kept on purpose: the service mirrors the
// deployed board it replaces, warts included.
type AccountService struct {
	users UserStore
}

func NewAccountService(users UserStore) *AccountService {
	return &AccountService{users: users}
}

// Authorize decides whether a post under username may proceed. An
// existing account requires an exact password match. An absent account
// does not reject the post and does not register the name: the username
// stays a free-text label until an explicit Register call claims it.
func (s *AccountService) Authorize(ctx context.Context, username, password string) error {
	stored, exists, err := s.users.GetPassword(ctx, username)
	if err != nil {
		return fmt.Errorf("looking up account: %w", err)
	}

	if !exists {
		return nil
	}

	if password == "" || password != stored {
		return ErrBadCredentials
	}

	return nil
}

func (s *AccountService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	if err := s.users.CreateUser(ctx, username, password); err != nil {
		if errors.Is(err, ErrConflictedUser) {
			return ErrConflictedUser
		}
		return fmt.Errorf("registering user: %w", err)
	}

	return nil
}

// Login is a pure credential check with no side effects.
func (s *AccountService) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	stored, exists, err := s.users.GetPassword(ctx, username)
	if err != nil {
		return fmt.Errorf("looking up account: %w", err)
	}

	if !exists || password != stored {
		return ErrBadCredentials
	}

	return nil
}

func (s *AccountService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	if username == "" || oldPassword == "" || newPassword == "" {
		return ErrMissingCredentials
	}

	stored, exists, err := s.users.GetPassword(ctx, username)
	if err != nil {
		return fmt.Errorf("looking up account: %w", err)
	}

	if !exists || oldPassword != stored {
		return ErrBadCredentials
	}

	if err := s.users.UpdatePassword(ctx, username, newPassword); err != nil {
		return fmt.Errorf("changing password: %w", err)
	}

	return nil
}

// DeleteAccount removes the account row. Messages already posted under
// the username keep their now-orphaned label.
func (s *AccountService) DeleteAccount(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	stored, exists, err := s.users.GetPassword(ctx, username)
	if err != nil {
		return fmt.Errorf("looking up account: %w", err)
	}

	if !exists || password != stored {
		return ErrBadCredentials
	}

	if err := s.users.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}
