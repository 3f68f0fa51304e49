package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// BoardService is the posting and reading surface of the message board.
type BoardService struct {
	messages MessageStore
	accounts *AccountService
	logger   *slog.Logger
}

func NewBoardService(messages MessageStore, accounts *AccountService, logger *slog.Logger) *BoardService {
	return &BoardService{
		messages: messages,
		accounts: accounts,
		logger:   logger,
	}
}

// PostMessage stores one message and prunes the board back to
// RetentionLimit. An empty username posts as the anonymous user. Bodies
// longer than MaxMessageBytes are truncated rather than rejected.
func (s *BoardService) PostMessage(ctx context.Context, username, password, body, remoteIP string) (int64, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return 0, ErrEmptyMessage
	}

	if len(body) > MaxMessageBytes {
		body = body[:MaxMessageBytes]
	}

	if username == "" {
		username = AnonymousUser
	}

	if username != AnonymousUser {
		if err := s.accounts.Authorize(ctx, username, password); err != nil {
			return 0, err
		}
	}

	if remoteIP == "" {
		remoteIP = UnknownIP
	}

	id, err := s.messages.InsertMessage(ctx, Message{
		Timestamp: time.Now().Unix(),
		IP:        remoteIP,
		Username:  username,
		Body:      body,
	})
	if err != nil {
		return 0, fmt.Errorf("posting message: %w", err)
	}

	// Retention is best-effort housekeeping. The post already succeeded,
	// so a prune failure is logged and swallowed.
	if err := s.messages.PruneToLimit(ctx, RetentionLimit); err != nil {
		s.logger.Error("pruning old messages failed", slog.String("error", err.Error()))
	}

	return id, nil
}

// ListRecent returns the newest messages in chronological order, oldest
// first. The limit is clamped to MaxListLimit.
func (s *BoardService) ListRecent(ctx context.Context, limit int) ([]Message, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	messages, err := s.messages.RecentMessages(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	return messages, nil
}
