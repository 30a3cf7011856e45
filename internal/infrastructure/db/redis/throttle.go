package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxFailures   = 5
	failureWindow = 15 * time.Minute
)

// throttleCommands is the slice of the Redis API the throttle needs. A
// *redis.Client satisfies it; tests substitute a fake.
type throttleCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// LoginThrottle counts consecutive failed logins per email in Redis.
// Key format: login_failures:<email>
type LoginThrottle struct {
	client throttleCommands
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// TooManyFailures reports whether the email has exhausted the failure budget
// within the current window. A missing counter means no recent failures.
func (t *LoginThrottle) TooManyFailures(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= maxFailures, nil
}

// RecordFailure increments the failure counter and refreshes its expiry, so
// the window slides from the most recent failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)
	if err := t.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return t.client.Expire(ctx, key, failureWindow).Err()
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return "login_failures:" + email
}
