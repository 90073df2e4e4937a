// Package integration contains ad-platform and storefront integration use cases.
package integration

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/profitpulse/backend/internal/application/adapter"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
)

// stateTokenTTL bounds how long a pending OAuth handshake stays redeemable.
const stateTokenTTL = 10 * time.Minute

// ConnectShopifyInput represents the input for starting the Shopify OAuth flow.
type ConnectShopifyInput struct {
	UserID     uuid.UUID
	ShopDomain string
}

// ConnectShopifyOutput represents the output of starting the Shopify OAuth flow.
type ConnectShopifyOutput struct {
	AuthorizeURL string
}

// ConnectShopifyUseCase starts the Shopify OAuth handshake. The generated
// state token is bound to the initiating user in the state store, so the
// callback can be attributed to that user without relying on session headers
// that Shopify's redirect does not carry.
type ConnectShopifyUseCase struct {
	stateStore    adapter.OAuthStateStore
	shopifyClient adapter.ShopifyClient
}

// NewConnectShopifyUseCase creates a new ConnectShopifyUseCase instance.
func NewConnectShopifyUseCase(
	stateStore adapter.OAuthStateStore,
	shopifyClient adapter.ShopifyClient,
) *ConnectShopifyUseCase {
	return &ConnectShopifyUseCase{
		stateStore:    stateStore,
		shopifyClient: shopifyClient,
	}
}

// Execute generates the merchant-facing authorize URL for the shop.
func (uc *ConnectShopifyUseCase) Execute(ctx context.Context, input ConnectShopifyInput) (*ConnectShopifyOutput, error) {
	shop := normalizeShopDomain(input.ShopDomain)
	if shop == "" {
		return nil, domainerror.NewIntegrationError(
			domainerror.ErrCodeMissingShopDomain,
			"shop domain is required",
			domainerror.ErrMissingShopDomain,
		)
	}

	state, err := generateStateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state token: %w", err)
	}

	if err := uc.stateStore.SaveState(ctx, state, input.UserID, stateTokenTTL); err != nil {
		return nil, fmt.Errorf("failed to save state token: %w", err)
	}

	return &ConnectShopifyOutput{
		AuthorizeURL: uc.shopifyClient.AuthorizeURL(shop, state),
	}, nil
}

// normalizeShopDomain strips scheme and trailing slashes from a user-entered
// shop domain like "https://my-store.myshopify.com/".
func normalizeShopDomain(shop string) string {
	shop = strings.TrimSpace(shop)
	shop = strings.TrimPrefix(shop, "https://")
	shop = strings.TrimPrefix(shop, "http://")
	return strings.TrimSuffix(shop, "/")
}

// generateStateToken returns a 32-hex-char random token.
func generateStateToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
