// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialStatus represents the settlement state of an order.
type FinancialStatus string

const (
	FinancialStatusPaid     FinancialStatus = "paid"
	FinancialStatusRefunded FinancialStatus = "refunded"
	FinancialStatusVoided   FinancialStatus = "voided"
)

// OrderRecord represents a single order imported from the storefront.
// Records are immutable once ingested: the reporting engine treats their
// fields as given and never validates individual amounts.
type OrderRecord struct {
	ID                uuid.UUID
	StoreID           uuid.UUID
	ExternalID        string // storefront order ID
	OrderName         string // display name, e.g. "#1024"
	TotalSales        decimal.Decimal
	NetSales          decimal.Decimal
	ShippingCost      decimal.Decimal
	HandlingCost      decimal.Decimal
	COGS              decimal.Decimal
	PaymentGatewayFee decimal.Decimal
	Currency          string
	FinancialStatus   FinancialStatus
	ProcessedAt       time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsPaid reports whether the order participates in revenue aggregation.
func (o *OrderRecord) IsPaid() bool {
	return o.FinancialStatus == FinancialStatusPaid
}
