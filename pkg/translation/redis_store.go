package translation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces translation entries in a shared Redis.
const DefaultKeyPrefix = "lingua:translations:"

var (
	// ErrRedisUnavailable indicates the Redis server did not answer the
	// connection ping.
	ErrRedisUnavailable = errors.New("translation: redis unavailable")
	// ErrInvalidRedisURL indicates a malformed Redis connection URL.
	ErrInvalidRedisURL = errors.New("translation: invalid redis url")
)

// RedisStore implements Store on top of a Redis client. Group data is
// stored as JSON under "<prefix><locale>:<group>" with a caller-supplied
// TTL per write.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing client. An empty prefix falls back to
// DefaultKeyPrefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// NewRedisStoreFromURL connects to Redis using a connection URL in the
// "redis://:password@host:port/db" format and verifies the connection with
// a ping before returning.
func NewRedisStoreFromURL(ctx context.Context, url, prefix string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrRedisUnavailable, err)
	}

	return NewRedisStore(client, prefix), nil
}

// Get implements Store. A missing key or a value that no longer
// unmarshals into a mapping is a miss, never a failure.
func (s *RedisStore) Get(ctx context.Context, locale, group string) (Group, bool, error) {
	payload, err := s.client.Get(ctx, s.key(locale, group)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var data Group
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, false, nil
	}

	return data, true, nil
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, locale, group string, data Group, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(locale, group), payload, ttl).Err()
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, locale, group string) error {
	return s.client.Del(ctx, s.key(locale, group)).Err()
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(locale, group string) string {
	return s.prefix + locale + ":" + group
}
