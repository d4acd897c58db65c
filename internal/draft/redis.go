package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sessions are kept long enough that a user can resume a half-finished
// wizard days later.
const sessionTTL = 30 * 24 * time.Hour

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr, password string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func redisKey(sessionID, key string) string {
	return "wizard:" + sessionID + ":" + key
}

func (s *RedisStore) Save(ctx context.Context, sessionID, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode draft %s: %w", key, err)
	}
	return s.rdb.Set(ctx, redisKey(sessionID, key), b, sessionTTL).Err()
}

func (s *RedisStore) Load(ctx context.Context, sessionID, key string, dest any) error {
	b, err := s.rdb.Get(ctx, redisKey(sessionID, key)).Bytes()
	if err == redis.Nil {
		return ErrMissingKey
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dest)
}

func (s *RedisStore) Delete(ctx context.Context, sessionID, key string) error {
	return s.rdb.Del(ctx, redisKey(sessionID, key)).Err()
}
