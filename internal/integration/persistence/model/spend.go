// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profitpulse/backend/internal/domain/entity"
)

// SpendModel represents the ad_spends table in the database.
type SpendModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Channel      string          `gorm:"type:varchar(16);not null;index"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Impressions  int             `gorm:"default:0"`
	Clicks       int             `gorm:"default:0"`
	CampaignName string          `gorm:"type:varchar(255)"`
	Currency     string          `gorm:"type:varchar(3);default:USD"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`

	Store *StoreModel `gorm:"foreignKey:StoreID;references:ID"`
}

// TableName returns the table name for the SpendModel.
func (SpendModel) TableName() string {
	return "ad_spends"
}

// ToEntity converts a SpendModel to a domain SpendRecord entity.
func (m *SpendModel) ToEntity() *entity.SpendRecord {
	return &entity.SpendRecord{
		ID:           m.ID,
		StoreID:      m.StoreID,
		Channel:      entity.SpendChannel(m.Channel),
		Date:         m.Date,
		Amount:       m.Amount,
		Impressions:  m.Impressions,
		Clicks:       m.Clicks,
		CampaignName: m.CampaignName,
		Currency:     m.Currency,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SpendFromEntity creates a SpendModel from a domain SpendRecord entity.
func SpendFromEntity(spend *entity.SpendRecord) *SpendModel {
	return &SpendModel{
		ID:           spend.ID,
		StoreID:      spend.StoreID,
		Channel:      string(spend.Channel),
		Date:         spend.Date,
		Amount:       spend.Amount,
		Impressions:  spend.Impressions,
		Clicks:       spend.Clicks,
		CampaignName: spend.CampaignName,
		Currency:     spend.Currency,
		CreatedAt:    spend.CreatedAt,
		UpdatedAt:    spend.UpdatedAt,
	}
}
