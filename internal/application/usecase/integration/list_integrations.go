// Package integration contains ad-platform and storefront integration use cases.
package integration

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/profitpulse/backend/internal/application/adapter"
	"github.com/profitpulse/backend/internal/domain/entity"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
)

// ListIntegrationsInput represents the input for listing integrations.
type ListIntegrationsInput struct {
	UserID uuid.UUID
}

// ListIntegrationsOutput maps each provider to whether it is connected.
type ListIntegrationsOutput struct {
	Connected map[entity.IntegrationProvider]bool
}

// ListIntegrationsUseCase reports the connection status per provider.
type ListIntegrationsUseCase struct {
	storeRepo       adapter.StoreRepository
	integrationRepo adapter.IntegrationRepository
}

// NewListIntegrationsUseCase creates a new ListIntegrationsUseCase instance.
func NewListIntegrationsUseCase(
	storeRepo adapter.StoreRepository,
	integrationRepo adapter.IntegrationRepository,
) *ListIntegrationsUseCase {
	return &ListIntegrationsUseCase{
		storeRepo:       storeRepo,
		integrationRepo: integrationRepo,
	}
}

// Execute returns connection status for every known provider.
func (uc *ListIntegrationsUseCase) Execute(ctx context.Context, input ListIntegrationsInput) (*ListIntegrationsOutput, error) {
	connected := map[entity.IntegrationProvider]bool{
		entity.IntegrationProviderShopify: false,
		entity.IntegrationProviderMeta:    false,
		entity.IntegrationProviderTikTok:  false,
		entity.IntegrationProviderGoogle:  false,
	}

	store, err := uc.storeRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrStoreNotFound) {
			// Nothing connected yet.
			return &ListIntegrationsOutput{Connected: connected}, nil
		}
		return nil, fmt.Errorf("failed to look up store: %w", err)
	}

	integrations, err := uc.integrationRepo.FindByStore(ctx, store.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list integrations: %w", err)
	}

	for _, integration := range integrations {
		if integration.Status == entity.IntegrationStatusActive {
			connected[integration.Provider] = true
		}
	}

	return &ListIntegrationsOutput{Connected: connected}, nil
}
