// Package integration contains ad-platform and storefront integration use cases.
package integration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/profitpulse/backend/internal/application/adapter"
	"github.com/profitpulse/backend/internal/domain/entity"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
)

// ToggleIntegrationInput represents the input for toggling an ad-platform integration.
type ToggleIntegrationInput struct {
	UserID   uuid.UUID
	Provider string
}

// ToggleIntegrationOutput represents the output of toggling an integration.
type ToggleIntegrationOutput struct {
	Provider    entity.IntegrationProvider
	IsConnected bool
}

// ToggleIntegrationUseCase connects or disconnects an ad-platform
// integration. Connecting stores demo credentials; real ad-platform OAuth
// follows the same state-token flow as Shopify once those platforms are wired.
type ToggleIntegrationUseCase struct {
	storeRepo       adapter.StoreRepository
	integrationRepo adapter.IntegrationRepository
}

// NewToggleIntegrationUseCase creates a new ToggleIntegrationUseCase instance.
func NewToggleIntegrationUseCase(
	storeRepo adapter.StoreRepository,
	integrationRepo adapter.IntegrationRepository,
) *ToggleIntegrationUseCase {
	return &ToggleIntegrationUseCase{
		storeRepo:       storeRepo,
		integrationRepo: integrationRepo,
	}
}

// Execute flips the connection state of the given provider for the user's store.
func (uc *ToggleIntegrationUseCase) Execute(ctx context.Context, input ToggleIntegrationInput) (*ToggleIntegrationOutput, error) {
	provider, err := parseProvider(input.Provider)
	if err != nil {
		return nil, err
	}

	store, err := uc.findOrCreateStore(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.integrationRepo.FindByStoreAndProvider(ctx, store.ID, provider)
	switch {
	case err == nil:
		if err := uc.integrationRepo.Delete(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to disconnect integration: %w", err)
		}
		return &ToggleIntegrationOutput{Provider: provider, IsConnected: false}, nil
	case errors.Is(err, domainerror.ErrIntegrationNotFound):
		created := entity.NewIntegration(store.ID, provider, string(provider)+" Account", "demo-token")
		if err := uc.integrationRepo.Create(ctx, created); err != nil {
			return nil, fmt.Errorf("failed to connect integration: %w", err)
		}
		return &ToggleIntegrationOutput{Provider: provider, IsConnected: true}, nil
	default:
		return nil, fmt.Errorf("failed to look up integration: %w", err)
	}
}

// findOrCreateStore returns the user's store, creating a demo store when the
// user has not connected a storefront yet.
func (uc *ToggleIntegrationUseCase) findOrCreateStore(ctx context.Context, userID uuid.UUID) (*entity.Store, error) {
	store, err := uc.storeRepo.FindByOwner(ctx, userID)
	if err == nil {
		return store, nil
	}
	if !errors.Is(err, domainerror.ErrStoreNotFound) {
		return nil, fmt.Errorf("failed to look up store: %w", err)
	}

	store = entity.NewStore(userID, "My Demo Store", fmt.Sprintf("demo-%s.myshopify.com", userID), "demo-token")
	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return store, nil
}

// parseProvider validates a user-supplied provider token.
func parseProvider(raw string) (entity.IntegrationProvider, error) {
	provider := entity.IntegrationProvider(strings.ToUpper(strings.TrimSpace(raw)))
	switch provider {
	case entity.IntegrationProviderShopify,
		entity.IntegrationProviderMeta,
		entity.IntegrationProviderTikTok,
		entity.IntegrationProviderGoogle:
		return provider, nil
	}
	return "", domainerror.NewIntegrationError(
		domainerror.ErrCodeUnknownProvider,
		fmt.Sprintf("unknown provider %q", raw),
		domainerror.ErrUnknownProvider,
	)
}
