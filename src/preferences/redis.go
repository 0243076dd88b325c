package preferences

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/diogovalentte/tukangkomik/src/util"
)

// redisHashKey is the redis hash holding every preference
const redisHashKey = "tukangkomik:preferences"

// RedisStore is a Store backed by a redis hash
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the redis server at address
func NewRedisStore(address, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, util.AddErrorContext("error pinging redis", err)
	}

	return &RedisStore{client: client}, nil
}

// Get implements Store
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.HGet(ctx, redisHashKey, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, util.AddErrorContext("error getting preference from redis", err)
	}

	return value, true, nil
}

// Set implements Store
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.HSet(ctx, redisHashKey, key, value).Err(); err != nil {
		return util.AddErrorContext("error saving preference to redis", err)
	}

	return nil
}

// Delete implements Store
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.HDel(ctx, redisHashKey, key).Err(); err != nil {
		return util.AddErrorContext("error deleting preference from redis", err)
	}

	return nil
}

// All implements Store
func (s *RedisStore) All(ctx context.Context) (map[string]string, error) {
	all, err := s.client.HGetAll(ctx, redisHashKey).Result()
	if err != nil {
		return nil, util.AddErrorContext("error getting preferences from redis", err)
	}

	return all, nil
}

// Close implements Store
func (s *RedisStore) Close() error {
	return s.client.Close()
}
