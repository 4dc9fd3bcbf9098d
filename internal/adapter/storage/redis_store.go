package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each slot as a plain string key. Useful when the till
// shares a Redis instance with other booth tooling and state should survive
// the till machine.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Load(ctx context.Context, slot string) ([]byte, error) {
	data, err := r.client.Get(ctx, slot).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RedisStore) Save(ctx context.Context, slot string, data []byte) error {
	return r.client.Set(ctx, slot, data, 0).Err()
}
