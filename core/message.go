package core

import (
	"context"
	"errors"
)

const (
	// RetentionLimit is the maximum number of messages kept on the board.
	// Excess rows are pruned after every insert, oldest first.
	RetentionLimit = 200

	// MaxListLimit caps how many messages a single read may return.
	MaxListLimit = 50

	// MaxMessageBytes is the maximum stored message length. Longer
	// bodies are truncated, not rejected.
	MaxMessageBytes = 1024

	// AnonymousUser is the reserved username for unauthenticated
	// posters. It bypasses all password checks.
	AnonymousUser = "anonymous"

	// UnknownIP is recorded when no remote address could be resolved.
	UnknownIP = "UNKNOWN_IP"
)

type Message struct {
	ID        int64  `json:"id"`
	Timestamp int64  `json:"timestamp"`
	IP        string `json:"ip"`
	Username  string `json:"username"`
	Body      string `json:"message"`
}

var (
	ErrEmptyMessage = errors.New("message is empty")
)

type MessageStore interface {
	// InsertMessage appends one message and returns its store-assigned id.
	InsertMessage(ctx context.Context, msg Message) (int64, error)

	// RecentMessages returns up to limit of the newest messages in
	// chronological order, oldest first.
	RecentMessages(ctx context.Context, limit int) ([]Message, error)

	// PruneToLimit deletes all but the keep most recent messages.
	PruneToLimit(ctx context.Context, keep int) error
}
