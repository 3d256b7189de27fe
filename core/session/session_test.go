package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeratings/authkit/core/session"
)

func TestRole(t *testing.T) {
	t.Parallel()

	t.Run("closed role set", func(t *testing.T) {
		t.Parallel()

		assert.True(t, session.RoleAdmin.Valid())
		assert.True(t, session.RoleStoreOwner.Valid())
		assert.True(t, session.RoleNormalUser.Valid())
		assert.False(t, session.Role("Superuser").Valid())
		assert.False(t, session.Role("").Valid())
	})

	t.Run("membership", func(t *testing.T) {
		t.Parallel()

		assert.True(t, session.RoleStoreOwner.In(session.RoleNormalUser, session.RoleStoreOwner))
		assert.False(t, session.RoleAdmin.In(session.RoleNormalUser, session.RoleStoreOwner))
		assert.False(t, session.RoleAdmin.In())
	})
}

func TestSessionFlags(t *testing.T) {
	t.Parallel()

	owner := &session.User{ID: 7, Name: "Olive Owner", Email: "owner@example.com", Role: session.RoleStoreOwner}

	t.Run("authenticated requires both halves", func(t *testing.T) {
		t.Parallel()

		assert.False(t, session.Session{}.IsAuthenticated())
		assert.False(t, session.Session{Token: "tok"}.IsAuthenticated())
		assert.False(t, session.Session{User: owner}.IsAuthenticated())
		assert.True(t, session.Session{Token: "tok", User: owner}.IsAuthenticated())
	})

	t.Run("role flags recomputed from user", func(t *testing.T) {
		t.Parallel()

		sess := session.Session{Token: "tok", User: owner}
		assert.True(t, sess.IsStoreOwner())
		assert.False(t, sess.IsAdmin())
		assert.False(t, sess.IsNormalUser())

		assert.False(t, session.Session{}.IsStoreOwner())
	})
}

func TestClearAndHasToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore()

	assert.False(t, session.HasToken(ctx, store))

	require.NoError(t, store.SetToken(ctx, "tok"))
	require.NoError(t, store.SetUser(ctx, &session.User{ID: 1, Role: session.RoleNormalUser}))
	assert.True(t, session.HasToken(ctx, store))

	require.NoError(t, session.Clear(ctx, store))
	assert.False(t, session.HasToken(ctx, store))
	_, err := store.User(ctx)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Clearing an already-empty store is a no-op.
	require.NoError(t, session.Clear(ctx, store))
}
