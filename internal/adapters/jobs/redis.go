// Package jobs reads results written by the background-job runtime into Redis.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DefaultPrefix = "bull"

// RedisStore reads the completed-children hash the job runtime keeps for
// every parent job. Field names are child job keys ("bull:<queue>:<id>"),
// values are the JSON-encoded child return values.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(addr string, password string, db int) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: rdb, prefix: DefaultPrefix}
}

// WithPrefix overrides the runtime's key prefix.
func (s *RedisStore) WithPrefix(prefix string) *RedisStore {
	s.prefix = prefix
	return s
}

func (s *RedisStore) processedKey(queue, jobID string) string {
	return fmt.Sprintf("%s:%s:%s:processed", s.prefix, queue, jobID)
}

// ChildValues returns every completed child result of the given parent job.
// A parent with no completed children yields an empty map.
func (s *RedisStore) ChildValues(ctx context.Context, queue, jobID string) (map[string]json.RawMessage, error) {
	raw, err := s.client.HGetAll(ctx, s.processedKey(queue, jobID)).Result()
	if err != nil {
		return nil, err
	}

	values := make(map[string]json.RawMessage, len(raw))
	for key, v := range raw {
		if !json.Valid([]byte(v)) {
			return nil, fmt.Errorf("child %s: result is not valid JSON", key)
		}
		values[key] = json.RawMessage(v)
	}
	return values, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
