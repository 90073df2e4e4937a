// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a connected storefront owned by a user. Each report is
// computed for exactly one store.
type Store struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Domain      string // e.g. "my-brand.myshopify.com"
	AccessToken string
	Currency    string
	Timezone    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewStore creates a new Store with default values.
func NewStore(ownerID uuid.UUID, name, domain, accessToken string) *Store {
	now := time.Now().UTC()
	return &Store{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Domain:      domain,
		AccessToken: accessToken,
		Currency:    "USD",
		Timezone:    "UTC",
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
