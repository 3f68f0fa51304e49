package core

import (
	"context"
	"database/sql"
	"fmt"
)

type SQLiteMessageStore struct {
	db *sql.DB
}

func NewSQLiteMessageStore(db *sql.DB) *SQLiteMessageStore {
	return &SQLiteMessageStore{
		db: db,
	}
}

func (s *SQLiteMessageStore) InsertMessage(ctx context.Context, msg Message) (int64, error) {
	if msg.Body == "" {
		return 0, ErrEmptyMessage
	}

	row := s.db.QueryRowContext(ctx,
		`INSERT INTO messages (timestamp, ip, username, message)
		VALUES (@timestamp, @ip, @username, @message) RETURNING id`,
		sql.Named("timestamp", msg.Timestamp), sql.Named("ip", msg.IP),
		sql.Named("username", msg.Username), sql.Named("message", msg.Body))

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("inserting message: %w", err)
	}

	return id, nil
}

func (s *SQLiteMessageStore) RecentMessages(ctx context.Context, limit int) ([]Message, error) {
	// The newest window is selected in descending id order and reversed,
	// because the read contract is oldest first.
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timestamp, ip, username, message FROM messages
		ORDER BY id DESC LIMIT @limit`,
		sql.Named("limit", limit))
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.ID, &msg.Timestamp, &msg.IP, &msg.Username, &msg.Body); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

func (s *SQLiteMessageStore) PruneToLimit(ctx context.Context, keep int) error {
	// Equal timestamps are broken by id, so a row inserted in the same
	// second as the cut-off is never deleted ahead of an older one.
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM messages WHERE id NOT IN
		(SELECT id FROM messages ORDER BY timestamp DESC, id DESC LIMIT @keep)`,
		sql.Named("keep", keep))
	if err != nil {
		return fmt.Errorf("pruning messages: %w", err)
	}
	return nil
}
