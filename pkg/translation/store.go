package translation

import (
	"context"
	"time"
)

// Store is the optional persistent cache tier behind the in-memory cache.
// Implementations wrap any external TTL-capable key-value store. A miss is
// reported via the boolean, not an error; errors are environmental and the
// caller degrades them to a tier miss.
type Store interface {
	Get(ctx context.Context, locale, group string) (Group, bool, error)
	Set(ctx context.Context, locale, group string, data Group, ttl time.Duration) error
	Delete(ctx context.Context, locale, group string) error
}
