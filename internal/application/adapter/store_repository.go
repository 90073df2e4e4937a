// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/profitpulse/backend/internal/domain/entity"
)

// StoreRepository defines the interface for store persistence.
type StoreRepository interface {
	// FindByOwner retrieves the store owned by the given user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)

	// Create creates a new store.
	Create(ctx context.Context, store *entity.Store) error

	// Update updates an existing store.
	Update(ctx context.Context, store *entity.Store) error
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create creates a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// IntegrationRepository defines the interface for integration persistence.
type IntegrationRepository interface {
	// FindByStore retrieves all integrations of a store.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Integration, error)

	// FindByStoreAndProvider retrieves a store's integration for one provider.
	FindByStoreAndProvider(ctx context.Context, storeID uuid.UUID, provider entity.IntegrationProvider) (*entity.Integration, error)

	// Create creates a new integration.
	Create(ctx context.Context, integration *entity.Integration) error

	// Update updates an existing integration.
	Update(ctx context.Context, integration *entity.Integration) error

	// Delete removes an integration.
	Delete(ctx context.Context, id uuid.UUID) error
}
