package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	t.Run("creates and reads back the password", func(t *testing.T) {
		f := NewBoardFixture(t)
		defer f.tearDown()

		err := f.users.CreateUser(f.ctx, "alice", "secret")
		require.Nil(t, err)

		password, exists, err := f.users.GetPassword(f.ctx, "alice")
		require.Nil(t, err)
		require.True(t, exists)
		assert.Equal(t, "secret", password)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		f := NewBoardFixture(t)
		defer f.tearDown()

		seedUser(f.ctx, t, f.users, "alice", "secret")

		err := f.users.CreateUser(f.ctx, "alice", "other")
		require.NotNil(t, err)
		assert.ErrorIs(t, err, ErrConflictedUser)

		// the original password is untouched
		password, exists, err := f.users.GetPassword(f.ctx, "alice")
		require.Nil(t, err)
		require.True(t, exists)
		assert.Equal(t, "secret", password)
	})

	t.Run("usernames are case sensitive", func(t *testing.T) {
		f := NewBoardFixture(t)
		defer f.tearDown()

		seedUser(f.ctx, t, f.users, "alice", "secret")

		err := f.users.CreateUser(f.ctx, "Alice", "other")
		require.Nil(t, err)
	})
}

func TestGetPassword(t *testing.T) {
	f := NewBoardFixture(t)
	defer f.tearDown()

	_, exists, err := f.users.GetPassword(f.ctx, "nobody")
	require.Nil(t, err)
	assert.False(t, exists)
}

func TestUpdatePassword(t *testing.T) {
	f := NewBoardFixture(t)
	defer f.tearDown()

	seedUser(f.ctx, t, f.users, "alice", "secret")

	err := f.users.UpdatePassword(f.ctx, "alice", "newsecret")
	require.Nil(t, err)

	password, exists, err := f.users.GetPassword(f.ctx, "alice")
	require.Nil(t, err)
	require.True(t, exists)
	assert.Equal(t, "newsecret", password)
}

func TestDeleteUser(t *testing.T) {
	f := NewBoardFixture(t)
	defer f.tearDown()

	seedUser(f.ctx, t, f.users, "alice", "secret")

	err := f.users.DeleteUser(f.ctx, "alice")
	require.Nil(t, err)

	_, exists, err := f.users.GetPassword(f.ctx, "alice")
	require.Nil(t, err)
	assert.False(t, exists)
}
