// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendChannel identifies the source of an advertising expense.
type SpendChannel string

const (
	SpendChannelMeta         SpendChannel = "META"
	SpendChannelTikTok       SpendChannel = "TIKTOK"
	SpendChannelGoogle       SpendChannel = "GOOGLE"
	SpendChannelCustom       SpendChannel = "CUSTOM"
	SpendChannelSubscription SpendChannel = "SUBSCRIPTION"
)

// SpendRecord represents one day of advertising spend on a single channel.
// Dates carry day granularity only; intra-day time is never recorded.
type SpendRecord struct {
	ID           uuid.UUID
	StoreID      uuid.UUID
	Channel      SpendChannel
	Date         time.Time
	Amount       decimal.Decimal
	Impressions  int
	Clicks       int
	CampaignName string
	Currency     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
