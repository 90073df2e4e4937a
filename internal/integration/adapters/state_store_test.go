// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/profitpulse/backend/internal/domain/error"
)

func newTestStateStore(t *testing.T) (*miniredis.Miniredis, *redisStateStore) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, &redisStateStore{client: client}
}

func TestRedisStateStore(t *testing.T) {
	ctx := context.Background()

	t.Run("saved state resolves to its user", func(t *testing.T) {
		_, store := newTestStateStore(t)
		userID := uuid.New()

		if err := store.SaveState(ctx, "token-1", userID, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resolved, err := store.ConsumeState(ctx, "token-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved != userID {
			t.Errorf("expected %s, got %s", userID, resolved)
		}
	})

	t.Run("a state token can be consumed only once", func(t *testing.T) {
		_, store := newTestStateStore(t)
		userID := uuid.New()

		if err := store.SaveState(ctx, "token-once", userID, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := store.ConsumeState(ctx, "token-once"); err != nil {
			t.Fatalf("unexpected error on first consume: %v", err)
		}

		_, err := store.ConsumeState(ctx, "token-once")
		if !errors.Is(err, domainerror.ErrInvalidOAuthState) {
			t.Errorf("expected ErrInvalidOAuthState on replay, got %v", err)
		}
	})

	t.Run("unknown state tokens are rejected", func(t *testing.T) {
		_, store := newTestStateStore(t)

		_, err := store.ConsumeState(ctx, "never-saved")
		if !errors.Is(err, domainerror.ErrInvalidOAuthState) {
			t.Errorf("expected ErrInvalidOAuthState, got %v", err)
		}
	})

	t.Run("expired state tokens are rejected", func(t *testing.T) {
		server, store := newTestStateStore(t)
		userID := uuid.New()

		if err := store.SaveState(ctx, "token-ttl", userID, 10*time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		server.FastForward(11 * time.Minute)

		_, err := store.ConsumeState(ctx, "token-ttl")
		if !errors.Is(err, domainerror.ErrInvalidOAuthState) {
			t.Errorf("expected ErrInvalidOAuthState after expiry, got %v", err)
		}
	})

	t.Run("tokens for different users stay independent", func(t *testing.T) {
		_, store := newTestStateStore(t)
		userA, userB := uuid.New(), uuid.New()

		if err := store.SaveState(ctx, "token-a", userA, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.SaveState(ctx, "token-b", userB, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resolvedB, err := store.ConsumeState(ctx, "token-b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolvedB != userB {
			t.Errorf("expected %s, got %s", userB, resolvedB)
		}

		resolvedA, err := store.ConsumeState(ctx, "token-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolvedA != userA {
			t.Errorf("expected %s, got %s", userA, resolvedA)
		}
	})
}
