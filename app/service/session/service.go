package session

import (
	"chatthinker/app/config"
	"context"
	"log/slog"
	"time"

	"github.com/samber/do"
)

// Store holds one Session and one LastPrompt per user key. Both records
// expire a fixed TTL after their last write; every write is a full
// overwrite and resets the clock.
type Store interface {
	// Get returns the stored session, or a zero Session if absent or expired.
	Get(ctx context.Context, userID string) (Session, error)
	Put(ctx context.Context, userID string, s Session) error
	// Delete removes both the session and the last prompt for the user.
	Delete(ctx context.Context, userID string) error
	GetLastPrompt(ctx context.Context, userID string) (*LastPrompt, error)
	PutLastPrompt(ctx context.Context, userID string, p LastPrompt) error
}

func New(di *do.Injector) (Store, error) {
	cfg := do.MustInvoke[*config.Config](di)

	ttl := time.Duration(cfg.Session.TTLHours) * time.Hour

	if cfg.Redis.Addr == "" {
		slog.Info("Using in-memory session store")
		return NewMemoryStore(ttl), nil
	}

	return newRedisStore(cfg.Redis.Addr, ttl)
}
