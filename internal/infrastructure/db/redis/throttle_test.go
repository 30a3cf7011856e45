package redis

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeCommands keeps counters in a map and records the expiries the
// throttle sets.
type fakeCommands struct {
	counters map[string]int64
	expiries map[string]time.Duration
	err      error
}

func newFakeCommands() *fakeCommands {
	return &fakeCommands{
		counters: make(map[string]int64),
		expiries: make(map[string]time.Duration),
	}
}

func (f *fakeCommands) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	n, ok := f.counters[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(strconv.FormatInt(n, 10), nil)
}

func (f *fakeCommands) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.counters[key]++
	return redis.NewIntResult(f.counters[key], nil)
}

func (f *fakeCommands) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.expiries[key] = expiration
	return redis.NewBoolResult(true, f.err)
}

func (f *fakeCommands) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.counters, key)
		delete(f.expiries, key)
	}
	return redis.NewIntResult(int64(len(keys)), f.err)
}

func TestLoginThrottle_TripsAtMaxFailures(t *testing.T) {
	fake := newFakeCommands()
	throttle := &LoginThrottle{client: fake}
	ctx := context.Background()

	for i := 0; i < maxFailures-1; i++ {
		if err := throttle.RecordFailure(ctx, "alice@example.com"); err != nil {
			t.Fatalf("RecordFailure returned error: %v", err)
		}
		locked, err := throttle.TooManyFailures(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("TooManyFailures returned error: %v", err)
		}
		if locked {
			t.Fatalf("locked after %d failures, budget is %d", i+1, maxFailures)
		}
	}

	if err := throttle.RecordFailure(ctx, "alice@example.com"); err != nil {
		t.Fatalf("RecordFailure returned error: %v", err)
	}
	locked, err := throttle.TooManyFailures(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("TooManyFailures returned error: %v", err)
	}
	if !locked {
		t.Fatalf("expected lock at %d failures", maxFailures)
	}
}

func TestLoginThrottle_NoCounterMeansNotLocked(t *testing.T) {
	throttle := &LoginThrottle{client: newFakeCommands()}

	locked, err := throttle.TooManyFailures(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("TooManyFailures returned error: %v", err)
	}
	if locked {
		t.Fatalf("missing counter must not lock")
	}
}

func TestLoginThrottle_FailureRefreshesWindow(t *testing.T) {
	fake := newFakeCommands()
	throttle := &LoginThrottle{client: fake}

	if err := throttle.RecordFailure(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("RecordFailure returned error: %v", err)
	}

	ttl, ok := fake.expiries["login_failures:alice@example.com"]
	if !ok {
		t.Fatalf("expiry not set on failure")
	}
	if ttl != failureWindow {
		t.Fatalf("expected window %v, got %v", failureWindow, ttl)
	}
}

func TestLoginThrottle_ResetClearsCounter(t *testing.T) {
	fake := newFakeCommands()
	throttle := &LoginThrottle{client: fake}
	ctx := context.Background()

	for i := 0; i < maxFailures; i++ {
		_ = throttle.RecordFailure(ctx, "alice@example.com")
	}
	if err := throttle.Reset(ctx, "alice@example.com"); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}

	locked, err := throttle.TooManyFailures(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("TooManyFailures returned error: %v", err)
	}
	if locked {
		t.Fatalf("still locked after reset")
	}
}

func TestLoginThrottle_CountersArePerEmail(t *testing.T) {
	fake := newFakeCommands()
	throttle := &LoginThrottle{client: fake}
	ctx := context.Background()

	for i := 0; i < maxFailures; i++ {
		_ = throttle.RecordFailure(ctx, "alice@example.com")
	}

	locked, err := throttle.TooManyFailures(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("TooManyFailures returned error: %v", err)
	}
	if locked {
		t.Fatalf("failures for one email must not lock another")
	}
}

func TestLoginThrottle_CheckErrorSurfaces(t *testing.T) {
	fake := newFakeCommands()
	fake.err = errors.New("connection refused")
	throttle := &LoginThrottle{client: fake}

	if _, err := throttle.TooManyFailures(context.Background(), "alice@example.com"); err == nil {
		t.Fatalf("expected error to surface for the caller to swallow")
	}
}
