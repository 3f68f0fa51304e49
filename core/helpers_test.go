package core

import (
	"context"
	"strconv"
	"testing"
)

func seedUser(ctx context.Context, t *testing.T, users UserStore, username, password string) {
	if err := users.CreateUser(ctx, username, password); err != nil {
		t.Fatal(err)
	}
}

// seedMessages inserts n messages with distinct timestamps and returns
// the assigned ids in insertion order.
func seedMessages(ctx context.Context, t *testing.T, messages MessageStore, n int) []int64 {
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		id, err := messages.InsertMessage(ctx, Message{
			Timestamp: int64(1700000000 + i),
			IP:        "127.0.0.1",
			Username:  AnonymousUser,
			Body:      "message " + strconv.Itoa(i),
		})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	return ids
}
