package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the credential pair in Redis under two keys derived
// from a prefix. Intended for headless clients whose state medium is shared
// across processes (kiosks, daemons behind a supervisor).
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed store. The prefix namespaces the
// token and user keys; pass something like "authkit:default".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "authkit:session"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) tokenKey() string { return s.prefix + ":token" }
func (s *RedisStore) userKey() string  { return s.prefix + ":user" }

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.tokenKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", errors.Join(ErrStoreFailed, err)
	}
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.tokenKey(), token, 0).Err(); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

func (s *RedisStore) RemoveToken(ctx context.Context) error {
	if err := s.client.Del(ctx, s.tokenKey()).Err(); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

func (s *RedisStore) User(ctx context.Context) (*User, error) {
	data, err := s.client.Get(ctx, s.userKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStoreFailed, err)
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, errors.Join(ErrStoreFailed, err)
	}
	return &user, nil
}

func (s *RedisStore) SetUser(ctx context.Context, user *User) error {
	if user == nil {
		return ErrInvalidUser
	}

	data, err := json.Marshal(user)
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	if err := s.client.Set(ctx, s.userKey(), data, 0).Err(); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

func (s *RedisStore) RemoveUser(ctx context.Context) error {
	if err := s.client.Del(ctx, s.userKey()).Err(); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}
