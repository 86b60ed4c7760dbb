package banner

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "banner:dismissed:"

// RedisStore implements Store on a Redis client, for deployments running
// more than one instance behind a load balancer.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an already-connected client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Dismissed(ctx context.Context, token string) (bool, error) {
	_, err := r.client.Get(ctx, redisKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisStore) Dismiss(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return ErrInvalidToken
	}
	return r.client.Set(ctx, redisKeyPrefix+token, "1", ttl).Err()
}

func (r *RedisStore) Restore(ctx context.Context, token string) error {
	return r.client.Del(ctx, redisKeyPrefix+token).Err()
}
