package session

import "context"

// Store persists per-session string key-value data.
type Store interface {
	// Get returns the value for key in the token's session. The boolean
	// reports key presence; a missing session is not an error.
	Get(ctx context.Context, token, key string) (string, bool, error)

	// Set stores a value, creating the session if needed.
	Set(ctx context.Context, token, key, value string) error

	// Delete removes the whole session.
	Delete(ctx context.Context, token string) error
}
