package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/apptask/backend/config"
)

func TestMemoryStoreAllow(t *testing.T) {
	store := NewMemoryStore(2, time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	steps := []struct {
		name    string
		key     string
		advance time.Duration
		want    bool
	}{
		{name: "first request", key: "a", want: true},
		{name: "second request", key: "a", want: true},
		{name: "over the limit", key: "a", want: false},
		{name: "other key has its own window", key: "b", want: true},
		{name: "window expired", key: "a", advance: 61 * time.Second, want: true},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			now = now.Add(step.advance)
			got, err := store.Allow(ctx, step.key)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != step.want {
				t.Errorf("expected %v, got %v", step.want, got)
			}
		})
	}
}

func TestMemoryStoreCleanup(t *testing.T) {
	store := NewMemoryStore(1, time.Second)
	now := time.Now()
	store.now = func() time.Time { return now }

	if _, err := store.Allow(context.Background(), "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now = now.Add(2 * time.Second)
	store.Cleanup()

	if len(store.entries) != 0 {
		t.Errorf("expected expired entries to be removed, got %d", len(store.entries))
	}
}

func TestRedisStoreAllow(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, 2, time.Minute)
	ctx := context.Background()

	for i, want := range []bool{true, true, false} {
		got, err := store.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("request %d: unexpected error: %v", i, err)
		}
		if got != want {
			t.Errorf("request %d: expected %v, got %v", i, want, got)
		}
	}

	if ttl := server.TTL(keyPrefix + "10.0.0.1"); ttl != time.Minute {
		t.Errorf("expected window TTL of 1m, got %v", ttl)
	}

	server.FastForward(time.Minute + time.Second)

	got, err := store.Allow(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("expected a new window after expiry")
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	server.Close()

	if _, err := NewRedisStore(client, 1, time.Minute).Allow(context.Background(), "k"); err == nil {
		t.Error("expected an error when redis is down")
	}
}

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), &config.RedisConfig{URL: "redis://" + server.Addr() + "/0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = client.Close()

	if _, err := NewRedisClient(context.Background(), &config.RedisConfig{URL: "://bad"}); err == nil {
		t.Error("expected an error for an invalid url")
	}
}
