// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OAuthStateStore binds short-lived OAuth state tokens to the user who
// initiated the handshake, so the callback can be attributed to the right
// account instead of whichever user happens to exist.
type OAuthStateStore interface {
	// SaveState stores a state token for the user with the given TTL.
	SaveState(ctx context.Context, state string, userID uuid.UUID, ttl time.Duration) error

	// ConsumeState resolves a state token to its user and deletes it, so a
	// token can be redeemed at most once.
	ConsumeState(ctx context.Context, state string) (uuid.UUID, error)
}

// ShopifyClient defines the interface for the Shopify OAuth exchange.
type ShopifyClient interface {
	// AuthorizeURL builds the merchant-facing install URL for the shop,
	// embedding the state token.
	AuthorizeURL(shop, state string) string

	// ExchangeAccessToken exchanges a temporary authorization code for a
	// permanent access token.
	ExchangeAccessToken(ctx context.Context, shop, code string) (string, error)

	// VerifyCallbackHMAC reports whether the callback query parameters carry
	// a valid signature.
	VerifyCallbackHMAC(params map[string]string) bool
}
