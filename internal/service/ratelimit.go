package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// loginThrottle enforces a short lockout between failed login attempts for
// the same email, to slow brute forcing. A nil client disables it.
type loginThrottle struct {
	rdb     *redis.Client
	lockout time.Duration
}

func (t *loginThrottle) key(email string) string {
	return fmt.Sprintf("login_lock:%s", strings.ToLower(email))
}

// Allowed reports whether the email may attempt a login right now.
func (t *loginThrottle) Allowed(ctx context.Context, email string) (bool, error) {
	if t == nil || t.rdb == nil {
		return true, nil
	}

	n, err := t.rdb.Exists(ctx, t.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check login lock in redis: %w", err)
	}
	return n == 0, nil
}

// RegisterFailure arms the lock after a failed attempt.
func (t *loginThrottle) RegisterFailure(ctx context.Context, email string) error {
	if t == nil || t.rdb == nil {
		return nil
	}

	if _, err := t.rdb.SetNX(ctx, t.key(email), "locked", t.lockout).Result(); err != nil {
		return fmt.Errorf("failed to set login lock in redis: %w", err)
	}
	return nil
}
