package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"todolist_api/internal/domain"

	redis "github.com/redis/go-redis/v9"
)

const keyPrefix = "sess:"

// RedisStore keeps sessions in Redis with a 24h TTL, so sessions
// survive process restarts and can be shared across instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Create(ctx context.Context, user domain.SessionUser) (string, error) {
	token := newToken()
	b, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, keyPrefix+token, b, TTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (*domain.SessionUser, error) {
	b, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	var u domain.SessionUser
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}
