// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/profitpulse/backend/internal/application/adapter"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
)

// stateKeyPrefix namespaces OAuth state tokens in redis.
const stateKeyPrefix = "oauth:state:"

// redisStateStore implements the adapter.OAuthStateStore interface on redis.
// TTL-based expiry means abandoned handshakes clean themselves up.
type redisStateStore struct {
	client *redis.Client
}

// NewRedisStateStore creates a new redis-backed OAuth state store.
func NewRedisStateStore(client *redis.Client) adapter.OAuthStateStore {
	return &redisStateStore{
		client: client,
	}
}

// SaveState stores a state token for the user with the given TTL.
func (s *redisStateStore) SaveState(ctx context.Context, state string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, stateKeyPrefix+state, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save state token: %w", err)
	}
	return nil
}

// ConsumeState resolves a state token to its user and deletes it.
func (s *redisStateStore) ConsumeState(ctx context.Context, state string) (uuid.UUID, error) {
	value, err := s.client.GetDel(ctx, stateKeyPrefix+state).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, domainerror.ErrInvalidOAuthState
		}
		return uuid.Nil, fmt.Errorf("failed to consume state token: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt state token payload: %w", err)
	}
	return userID, nil
}
