package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "exam:session:"

// RedisStore keeps identities server-side under random tokens.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Issue(ctx context.Context, id Identity) (string, error) {
	data, err := json.Marshal(id)
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, data, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (*Identity, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, nil
	}
	data, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, nil
	}
	return &id, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, keyPrefix+token).Err()
}
