// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profitpulse/backend/internal/domain/entity"
)

// OrderModel represents the orders table in the database.
type OrderModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	ExternalID        string          `gorm:"type:varchar(64);not null;index"`
	OrderName         string          `gorm:"type:varchar(32)"`
	TotalSales        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	NetSales          decimal.Decimal `gorm:"type:decimal(15,2)"`
	ShippingCost      decimal.Decimal `gorm:"type:decimal(15,2)"`
	HandlingCost      decimal.Decimal `gorm:"type:decimal(15,2)"`
	COGS              decimal.Decimal `gorm:"type:decimal(15,2)"`
	PaymentGatewayFee decimal.Decimal `gorm:"type:decimal(15,2)"`
	Currency          string          `gorm:"type:varchar(3);default:USD"`
	FinancialStatus   string          `gorm:"type:varchar(16);index"`
	ProcessedAt       time.Time       `gorm:"not null;index"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`

	Store *StoreModel `gorm:"foreignKey:StoreID;references:ID"`
}

// TableName returns the table name for the OrderModel.
func (OrderModel) TableName() string {
	return "orders"
}

// ToEntity converts an OrderModel to a domain OrderRecord entity.
func (m *OrderModel) ToEntity() *entity.OrderRecord {
	return &entity.OrderRecord{
		ID:                m.ID,
		StoreID:           m.StoreID,
		ExternalID:        m.ExternalID,
		OrderName:         m.OrderName,
		TotalSales:        m.TotalSales,
		NetSales:          m.NetSales,
		ShippingCost:      m.ShippingCost,
		HandlingCost:      m.HandlingCost,
		COGS:              m.COGS,
		PaymentGatewayFee: m.PaymentGatewayFee,
		Currency:          m.Currency,
		FinancialStatus:   entity.FinancialStatus(m.FinancialStatus),
		ProcessedAt:       m.ProcessedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// OrderFromEntity creates an OrderModel from a domain OrderRecord entity.
func OrderFromEntity(order *entity.OrderRecord) *OrderModel {
	return &OrderModel{
		ID:                order.ID,
		StoreID:           order.StoreID,
		ExternalID:        order.ExternalID,
		OrderName:         order.OrderName,
		TotalSales:        order.TotalSales,
		NetSales:          order.NetSales,
		ShippingCost:      order.ShippingCost,
		HandlingCost:      order.HandlingCost,
		COGS:              order.COGS,
		PaymentGatewayFee: order.PaymentGatewayFee,
		Currency:          order.Currency,
		FinancialStatus:   string(order.FinancialStatus),
		ProcessedAt:       order.ProcessedAt,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}
