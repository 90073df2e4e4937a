// Package integration contains ad-platform and storefront integration use cases.
package integration

import (
	"context"
	"errors"
	"fmt"

	"github.com/profitpulse/backend/internal/application/adapter"
	"github.com/profitpulse/backend/internal/domain/entity"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
)

// CompleteShopifyInput represents the Shopify OAuth callback parameters.
type CompleteShopifyInput struct {
	Shop  string
	Code  string
	State string
	// Params holds every callback query parameter, needed for HMAC
	// verification over the full parameter set.
	Params map[string]string
}

// CompleteShopifyOutput represents the output of completing the OAuth flow.
type CompleteShopifyOutput struct {
	Store *entity.Store
}

// CompleteShopifyUseCase finishes the Shopify OAuth handshake: it redeems
// the state token to identify the initiating user, verifies the callback
// signature, exchanges the temporary code for a permanent access token, and
// upserts that user's store.
type CompleteShopifyUseCase struct {
	stateStore      adapter.OAuthStateStore
	shopifyClient   adapter.ShopifyClient
	storeRepo       adapter.StoreRepository
	integrationRepo adapter.IntegrationRepository
}

// NewCompleteShopifyUseCase creates a new CompleteShopifyUseCase instance.
func NewCompleteShopifyUseCase(
	stateStore adapter.OAuthStateStore,
	shopifyClient adapter.ShopifyClient,
	storeRepo adapter.StoreRepository,
	integrationRepo adapter.IntegrationRepository,
) *CompleteShopifyUseCase {
	return &CompleteShopifyUseCase{
		stateStore:      stateStore,
		shopifyClient:   shopifyClient,
		storeRepo:       storeRepo,
		integrationRepo: integrationRepo,
	}
}

// Execute completes the handshake and persists the connected store.
func (uc *CompleteShopifyUseCase) Execute(ctx context.Context, input CompleteShopifyInput) (*CompleteShopifyOutput, error) {
	if input.Shop == "" || input.Code == "" || input.State == "" {
		return nil, domainerror.NewIntegrationError(
			domainerror.ErrCodeInvalidOAuthState,
			"missing required callback parameters",
			domainerror.ErrInvalidOAuthState,
		)
	}

	if !uc.shopifyClient.VerifyCallbackHMAC(input.Params) {
		return nil, domainerror.NewIntegrationError(
			domainerror.ErrCodeInvalidHMAC,
			"callback signature mismatch",
			domainerror.ErrInvalidHMAC,
		)
	}

	// The state token is single-use: redeeming it both authenticates the
	// callback and resolves which user started the handshake.
	userID, err := uc.stateStore.ConsumeState(ctx, input.State)
	if err != nil {
		return nil, domainerror.NewIntegrationError(
			domainerror.ErrCodeInvalidOAuthState,
			"state token not recognized",
			domainerror.ErrInvalidOAuthState,
		)
	}

	accessToken, err := uc.shopifyClient.ExchangeAccessToken(ctx, input.Shop, input.Code)
	if err != nil {
		return nil, domainerror.NewIntegrationError(
			domainerror.ErrCodeTokenExchange,
			"failed to exchange authorization code",
			err,
		)
	}

	store, err := uc.storeRepo.FindByOwner(ctx, userID)
	switch {
	case err == nil:
		store.Domain = input.Shop
		store.AccessToken = accessToken
		store.IsActive = true
		if err := uc.storeRepo.Update(ctx, store); err != nil {
			return nil, fmt.Errorf("failed to update store: %w", err)
		}
	case errors.Is(err, domainerror.ErrStoreNotFound):
		store = entity.NewStore(userID, input.Shop, input.Shop, accessToken)
		if err := uc.storeRepo.Create(ctx, store); err != nil {
			return nil, fmt.Errorf("failed to create store: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up store: %w", err)
	}

	if err := uc.upsertIntegration(ctx, store, accessToken); err != nil {
		return nil, err
	}

	return &CompleteShopifyOutput{Store: store}, nil
}

// upsertIntegration records the active Shopify connection for the store.
func (uc *CompleteShopifyUseCase) upsertIntegration(ctx context.Context, store *entity.Store, accessToken string) error {
	existing, err := uc.integrationRepo.FindByStoreAndProvider(ctx, store.ID, entity.IntegrationProviderShopify)
	switch {
	case err == nil:
		existing.AccessToken = accessToken
		existing.Status = entity.IntegrationStatusActive
		if err := uc.integrationRepo.Update(ctx, existing); err != nil {
			return fmt.Errorf("failed to update integration: %w", err)
		}
	case errors.Is(err, domainerror.ErrIntegrationNotFound):
		created := entity.NewIntegration(store.ID, entity.IntegrationProviderShopify, "Shopify Store", accessToken)
		if err := uc.integrationRepo.Create(ctx, created); err != nil {
			return fmt.Errorf("failed to create integration: %w", err)
		}
	default:
		return fmt.Errorf("failed to look up integration: %w", err)
	}
	return nil
}
