// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// IntegrationProvider identifies an external platform a store connects to.
type IntegrationProvider string

const (
	IntegrationProviderShopify IntegrationProvider = "SHOPIFY"
	IntegrationProviderMeta    IntegrationProvider = "META"
	IntegrationProviderTikTok  IntegrationProvider = "TIKTOK"
	IntegrationProviderGoogle  IntegrationProvider = "GOOGLE"
)

// IntegrationStatus represents the connection state of an integration.
type IntegrationStatus string

const (
	IntegrationStatusActive  IntegrationStatus = "ACTIVE"
	IntegrationStatusExpired IntegrationStatus = "EXPIRED"
	IntegrationStatusError   IntegrationStatus = "ERROR"
)

// Integration represents a store's connection to an external ad or commerce
// platform, together with the credentials used to pull records from it.
type Integration struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	Provider    IntegrationProvider
	Name        string
	AccessToken string
	AdAccountID string
	Status      IntegrationStatus
	LastSync    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIntegration creates a new active Integration.
func NewIntegration(storeID uuid.UUID, provider IntegrationProvider, name, accessToken string) *Integration {
	now := time.Now().UTC()
	return &Integration{
		ID:          uuid.New(),
		StoreID:     storeID,
		Provider:    provider,
		Name:        name,
		AccessToken: accessToken,
		Status:      IntegrationStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
