// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/profitpulse/backend/internal/domain/entity"
)

// StoreModel represents the stores table in the database.
type StoreModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Domain      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	AccessToken string    `gorm:"type:text;not null"`
	Currency    string    `gorm:"type:varchar(3);default:USD"`
	Timezone    string    `gorm:"type:varchar(64);default:UTC"`
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Owner *UserModel `gorm:"foreignKey:OwnerID;references:ID"`
}

// TableName returns the table name for the StoreModel.
func (StoreModel) TableName() string {
	return "stores"
}

// ToEntity converts a StoreModel to a domain Store entity.
func (m *StoreModel) ToEntity() *entity.Store {
	return &entity.Store{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Domain:      m.Domain,
		AccessToken: m.AccessToken,
		Currency:    m.Currency,
		Timezone:    m.Timezone,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// StoreFromEntity creates a StoreModel from a domain Store entity.
func StoreFromEntity(store *entity.Store) *StoreModel {
	return &StoreModel{
		ID:          store.ID,
		OwnerID:     store.OwnerID,
		Name:        store.Name,
		Domain:      store.Domain,
		AccessToken: store.AccessToken,
		Currency:    store.Currency,
		Timezone:    store.Timezone,
		IsActive:    store.IsActive,
		CreatedAt:   store.CreatedAt,
		UpdatedAt:   store.UpdatedAt,
	}
}
