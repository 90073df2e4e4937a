package dto

import (
	"github.com/profitpulse/backend/internal/application/usecase/integration"
	"github.com/profitpulse/backend/internal/domain/entity"
)

// ConnectShopifyRequest represents the request body for starting the
// Shopify OAuth flow.
type ConnectShopifyRequest struct {
	Shop string `json:"shop" binding:"required"`
}

// ConnectShopifyResponse carries the merchant-facing authorize URL.
type ConnectShopifyResponse struct {
	AuthorizeURL string `json:"authorizeUrl"`
}

// ToggleIntegrationRequest represents the request body for toggling an
// ad-platform integration.
type ToggleIntegrationRequest struct {
	Provider string `json:"provider" binding:"required"`
}

// ToggleIntegrationResponse reports the new connection state.
type ToggleIntegrationResponse struct {
	Provider    string `json:"provider"`
	IsConnected bool   `json:"isConnected"`
}

// IntegrationsResponse maps each provider to its connection status.
type IntegrationsResponse struct {
	Shopify bool `json:"shopify"`
	Meta    bool `json:"meta"`
	TikTok  bool `json:"tiktok"`
	Google  bool `json:"google"`
}

// ToIntegrationsResponse converts the listing output to its DTO.
func ToIntegrationsResponse(output *integration.ListIntegrationsOutput) IntegrationsResponse {
	return IntegrationsResponse{
		Shopify: output.Connected[entity.IntegrationProviderShopify],
		Meta:    output.Connected[entity.IntegrationProviderMeta],
		TikTok:  output.Connected[entity.IntegrationProviderTikTok],
		Google:  output.Connected[entity.IntegrationProviderGoogle],
	}
}
