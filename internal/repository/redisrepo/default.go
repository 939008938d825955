package redisrepo

import (
	"context"
	"errors"

	"github.com/BloggingApp/story-service/internal/repository"
	"github.com/redis/go-redis/v9"
)

type defaultRepo struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) repository.Storage {
	return &defaultRepo{
		rdb: rdb,
	}
}

func (r *defaultRepo) Get(ctx context.Context, key string) (string, error) {
	value, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrKeyNotFound
	}
	return value, err
}

// Set stores value without expiry: the storage is meant to survive restarts.
func (r *defaultRepo) Set(ctx context.Context, key string, value string) error {
	return r.rdb.Set(ctx, key, value, 0).Err()
}

func (r *defaultRepo) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.rdb.Del(ctx, keys...).Err()
}
