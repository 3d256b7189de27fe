package session

import "context"

// Store defines the persistence medium for the client credential: exactly
// one opaque token string and one serialized user record at a time, each
// independently readable and removable. Implementations must handle
// concurrent access safely and perform no validation of the values.
type Store interface {
	// Token returns the persisted token, or ErrNotFound when absent.
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	RemoveToken(ctx context.Context) error

	// User returns the persisted user record, or ErrNotFound when absent.
	User(ctx context.Context) (*User, error)
	SetUser(ctx context.Context, user *User) error
	RemoveUser(ctx context.Context) error
}

// Clear removes both halves of the credential from the store.
// Missing keys are not an error: clearing an empty store is a no-op.
func Clear(ctx context.Context, store Store) error {
	if err := store.RemoveToken(ctx); err != nil {
		return err
	}
	return store.RemoveUser(ctx)
}

// HasToken reports whether the store currently holds a token. The check is
// re-derived from the store on every call; storage is the source of truth
// for authentication state even when a mirrored in-memory copy exists.
func HasToken(ctx context.Context, store Store) bool {
	token, err := store.Token(ctx)
	return err == nil && token != ""
}
