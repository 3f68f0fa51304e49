package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

type SQLiteUserStore struct {
	db *sql.DB
}

func NewSQLiteUserStore(db *sql.DB) *SQLiteUserStore {
	return &SQLiteUserStore{
		db: db,
	}
}

func (s *SQLiteUserStore) CreateUser(ctx context.Context, username, password string) error {
	_, exists, err := s.GetPassword(ctx, username)
	if err != nil {
		return fmt.Errorf("checking if user exists: %w", err)
	}

	if exists {
		return ErrConflictedUser
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (@username, @password)",
		sql.Named("username", username), sql.Named("password", password))
	if err != nil {
		// The primary key constraint is the backstop when two writers
		// pass the existence check at the same time.
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
				sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique) {
			return ErrConflictedUser
		}
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *SQLiteUserStore) GetPassword(ctx context.Context, username string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT password FROM users WHERE username = @username LIMIT 1",
		sql.Named("username", username))

	var password string
	if err := row.Scan(&password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("scanning password: %w", err)
	}

	return password, true, nil
}

func (s *SQLiteUserStore) UpdatePassword(ctx context.Context, username, newPassword string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE users SET password = @password WHERE username = @username",
		sql.Named("password", newPassword), sql.Named("username", username))
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	return nil
}

func (s *SQLiteUserStore) DeleteUser(ctx context.Context, username string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM users WHERE username = @username",
		sql.Named("username", username))
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}
