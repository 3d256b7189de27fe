package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeratings/authkit/core/session"
)

// storeContract exercises the behavior every Store implementation shares.
func storeContract(t *testing.T, store session.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Token(ctx)
	require.ErrorIs(t, err, session.ErrNotFound)
	_, err = store.User(ctx)
	require.ErrorIs(t, err, session.ErrNotFound)

	require.NoError(t, store.SetToken(ctx, "opaque-token"))
	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	user := &session.User{ID: 42, Name: "Nora", Email: "nora@example.com", Address: "12 Main St", Role: session.RoleNormalUser}
	require.NoError(t, store.SetUser(ctx, user))
	got, err := store.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	// Keys are independently removable.
	require.NoError(t, store.RemoveToken(ctx))
	_, err = store.Token(ctx)
	assert.ErrorIs(t, err, session.ErrNotFound)
	got, err = store.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)

	require.NoError(t, store.RemoveUser(ctx))
	_, err = store.User(ctx)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Removing absent keys is not an error.
	require.NoError(t, store.RemoveToken(ctx))
	require.NoError(t, store.RemoveUser(ctx))

	assert.ErrorIs(t, store.SetUser(ctx, nil), session.ErrInvalidUser)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	storeContract(t, session.NewMemoryStore())

	t.Run("returned user is a copy", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := session.NewMemoryStore()
		require.NoError(t, store.SetUser(ctx, &session.User{ID: 1, Name: "A", Role: session.RoleAdmin}))

		first, err := store.User(ctx)
		require.NoError(t, err)
		first.Name = "mutated"

		second, err := store.User(ctx)
		require.NoError(t, err)
		assert.Equal(t, "A", second.Name)
	})
}

func TestFileStore(t *testing.T) {
	t.Parallel()

	storeContract(t, session.NewFileStore(filepath.Join(t.TempDir(), "state.json")))

	t.Run("persists across instances", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "nested", "state.json")

		first := session.NewFileStore(path)
		require.NoError(t, first.SetToken(ctx, "tok"))
		require.NoError(t, first.SetUser(ctx, &session.User{ID: 3, Role: session.RoleStoreOwner}))

		second := session.NewFileStore(path)
		token, err := second.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", token)

		user, err := second.User(ctx)
		require.NoError(t, err)
		assert.Equal(t, session.RoleStoreOwner, user.Role)
	})

	t.Run("state file is private", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "state.json")
		store := session.NewFileStore(path)
		require.NoError(t, store.SetToken(ctx, "tok"))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("corrupt file surfaces store error", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		store := session.NewFileStore(path)
		_, err := store.Token(ctx)
		assert.ErrorIs(t, err, session.ErrStoreFailed)
	})
}
