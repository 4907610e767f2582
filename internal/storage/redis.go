package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is the production Store, keeping each blob in a plain Redis string.
// Keys are namespaced by the caller (e.g. "travelog:tours"); no TTL is set —
// blobs live until overwritten.
type Redis struct {
	client *redis.Client
}

// NewRedis constructs a Store over an existing Redis client. The client is
// created and pinged in main so a bad address fails at startup, not on the
// first save.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Load returns the blob saved under key, or ErrNoBlob if the key is absent.
func (r *Redis) Load(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoBlob
	}
	if err != nil {
		return nil, fmt.Errorf("storage.Redis.Load %s: %w", key, err)
	}
	return b, nil
}

// Save overwrites the blob under key.
func (r *Redis) Save(ctx context.Context, key string, blob []byte) error {
	if err := r.client.Set(ctx, key, blob, 0).Err(); err != nil {
		return fmt.Errorf("storage.Redis.Save %s: %w", key, err)
	}
	return nil
}
