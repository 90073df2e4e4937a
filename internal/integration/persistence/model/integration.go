// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/profitpulse/backend/internal/domain/entity"
)

// IntegrationModel represents the integrations table in the database.
type IntegrationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_integrations_store_provider,unique"`
	Provider    string     `gorm:"type:varchar(16);not null;index:idx_integrations_store_provider,unique"`
	Name        string     `gorm:"type:varchar(255)"`
	AccessToken string     `gorm:"type:text"`
	AdAccountID string     `gorm:"type:varchar(64)"`
	Status      string     `gorm:"type:varchar(16);default:ACTIVE"`
	LastSync    *time.Time `gorm:"type:timestamp"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`

	Store *StoreModel `gorm:"foreignKey:StoreID;references:ID"`
}

// TableName returns the table name for the IntegrationModel.
func (IntegrationModel) TableName() string {
	return "integrations"
}

// ToEntity converts an IntegrationModel to a domain Integration entity.
func (m *IntegrationModel) ToEntity() *entity.Integration {
	return &entity.Integration{
		ID:          m.ID,
		StoreID:     m.StoreID,
		Provider:    entity.IntegrationProvider(m.Provider),
		Name:        m.Name,
		AccessToken: m.AccessToken,
		AdAccountID: m.AdAccountID,
		Status:      entity.IntegrationStatus(m.Status),
		LastSync:    m.LastSync,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// IntegrationFromEntity creates an IntegrationModel from a domain Integration entity.
func IntegrationFromEntity(integration *entity.Integration) *IntegrationModel {
	return &IntegrationModel{
		ID:          integration.ID,
		StoreID:     integration.StoreID,
		Provider:    string(integration.Provider),
		Name:        integration.Name,
		AccessToken: integration.AccessToken,
		AdAccountID: integration.AdAccountID,
		Status:      string(integration.Status),
		LastSync:    integration.LastSync,
		CreatedAt:   integration.CreatedAt,
		UpdatedAt:   integration.UpdatedAt,
	}
}
