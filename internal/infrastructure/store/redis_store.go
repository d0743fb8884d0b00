package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
)

// RedisStore keeps preference blobs in Redis without expiry; they live until
// cleared externally.
type RedisStore struct {
	rdb *redis.Client
}

var _ contract.IKeyValueStore = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}
