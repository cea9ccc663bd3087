package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const opTimeout = 5 * time.Second

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func newRedisStore(addr string, ttl time.Duration) (*redisStore, error) {
	opt, err := redis.ParseURL(addr)
	if err != nil {
		opt = &redis.Options{
			Addr: addr,
		}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &redisStore{
		client: client,
		ttl:    ttl,
	}, nil
}

func (r *redisStore) Get(ctx context.Context, userID string) (Session, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	var s Session
	if err = json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return s, nil
}

func (r *redisStore) Put(ctx context.Context, userID string, s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err = r.client.Set(ctx, sessionKey(userID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}

func (r *redisStore) Delete(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// single DEL so session and prompt disappear together
	if err := r.client.Del(ctx, sessionKey(userID), promptKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (r *redisStore) GetLastPrompt(ctx context.Context, userID string) (*LastPrompt, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, promptKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read last prompt: %w", err)
	}

	var p LastPrompt
	if err = json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal last prompt: %w", err)
	}

	return &p, nil
}

func (r *redisStore) PutLastPrompt(ctx context.Context, userID string, p LastPrompt) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal last prompt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err = r.client.Set(ctx, promptKey(userID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write last prompt: %w", err)
	}

	return nil
}
