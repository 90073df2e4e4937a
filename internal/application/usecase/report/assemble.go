// Package report implements the profit-and-loss reporting engine.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/profitpulse/backend/internal/domain/entity"
)

// Cost category display names and their stable chart colors.
const (
	CategoryCOGS     = "COGS"
	CategoryAdSpend  = "Ad Spend"
	CategoryShipping = "Shipping"
	CategoryFees     = "Transaction Fees"
	CategoryHandling = "Handling"
)

var costCategoryColors = map[string]string{
	CategoryCOGS:     "#3b82f6",
	CategoryAdSpend:  "#f97316",
	CategoryShipping: "#64748b",
	CategoryFees:     "#eab308",
	CategoryHandling: "#10b981",
}

var channelColors = map[entity.SpendChannel]string{
	entity.SpendChannelMeta:   "#3b82f6",
	entity.SpendChannelTikTok: "#ec4899",
}

// channelColorFallback is used for channels without a dedicated color.
const channelColorFallback = "#eab308"

// CostSlice is one entry of the cost-breakdown list.
type CostSlice struct {
	Category string
	Value    decimal.Decimal
	Color    string
}

// ChannelRank is one entry of the channel-spend ranking.
type ChannelRank struct {
	Channel entity.SpendChannel
	Value   decimal.Decimal
	Color   string
}

// CardSummary holds the headline card totals.
type CardSummary struct {
	TotalRevenue decimal.Decimal
	TotalAdSpend decimal.Decimal
	NetProfit    decimal.Decimal
	ProfitMargin float64
	TotalOrders  int
}

// AdMetrics holds ad-performance metrics for the whole range.
type AdMetrics struct {
	BlendedROAS  float64
	POAS         float64
	TotalAdSpend decimal.Decimal
}

// OrderMetrics holds per-order averages for the whole range.
type OrderMetrics struct {
	AvgOrderValue     float64
	AdSpendPerOrder   float64
	AvgOrderProfit    float64
	AvgOrderCost      float64
	PurchaseFrequency float64
}

// CustomerSummary holds customer-level metrics. No real customer identity is
// tracked yet: counts are approximated by order count and CAC inherits that
// proxy, so these numbers are provisional rather than true customer analytics.
type CustomerSummary struct {
	TotalCustomers int
	NewCustomers   int
	RepurchaseRate float64
	CAC            float64
}

// OtherFinancials holds secondary financial figures surfaced on the dashboard.
type OtherFinancials struct {
	ShippingCharged decimal.Decimal
	TaxesCollected  decimal.Decimal
	Tips            decimal.Decimal
	GiftCardSales   decimal.Decimal
	Returns         decimal.Decimal
}

// Report is the complete response shape consumed by the presentation layer.
// Field meaning and naming are a stable contract.
type Report struct {
	Cards           CardSummary
	CostBreakdown   []CostSlice
	ChannelSpend    []ChannelRank
	AdMetrics       AdMetrics
	OrderMetrics    OrderMetrics
	CustomerSummary CustomerSummary
	Others          OtherFinancials
	TotalCosts      decimal.Decimal
	Rows            []MergedRow
}

// Assemble packages finalized rows, totals, and the channel ranking into the
// report shape. Pure data shaping: no computation beyond structuring, and it
// never fails on well-formed inputs.
func Assemble(rows []MergedRow, totals Totals, channels []ChannelSlice) *Report {
	costBreakdown := make([]CostSlice, 0, len(costCategoryColors))
	for _, slice := range []CostSlice{
		{Category: CategoryCOGS, Value: totals.COGS},
		{Category: CategoryAdSpend, Value: totals.AdSpend},
		{Category: CategoryShipping, Value: totals.Shipping},
		{Category: CategoryFees, Value: totals.Fees},
		{Category: CategoryHandling, Value: totals.Handling},
	} {
		if !slice.Value.IsPositive() {
			continue
		}
		slice.Color = costCategoryColors[slice.Category]
		costBreakdown = append(costBreakdown, slice)
	}

	ranking := make([]ChannelRank, 0, len(channels))
	for _, slice := range channels {
		color, ok := channelColors[slice.Channel]
		if !ok {
			color = channelColorFallback
		}
		ranking = append(ranking, ChannelRank{
			Channel: slice.Channel,
			Value:   slice.Total,
			Color:   color,
		})
	}

	return &Report{
		Cards: CardSummary{
			TotalRevenue: totals.Revenue,
			TotalAdSpend: totals.AdSpend,
			NetProfit:    totals.NetProfit,
			ProfitMargin: totals.ProfitMargin,
			TotalOrders:  totals.Orders,
		},
		CostBreakdown: costBreakdown,
		ChannelSpend:  ranking,
		AdMetrics: AdMetrics{
			BlendedROAS:  totals.BlendedROAS,
			POAS:         totals.POAS,
			TotalAdSpend: totals.AdSpend,
		},
		OrderMetrics: OrderMetrics{
			AvgOrderValue:     totals.AvgOrderValue,
			AdSpendPerOrder:   totals.AdSpendPerOrder,
			AvgOrderProfit:    totals.AvgOrderProfit,
			AvgOrderCost:      totals.AvgOrderCost,
			PurchaseFrequency: 1,
		},
		CustomerSummary: CustomerSummary{
			TotalCustomers: totals.Orders,
			NewCustomers:   totals.Orders,
			RepurchaseRate: 0,
			CAC:            totals.CAC,
		},
		Others: OtherFinancials{
			ShippingCharged: totals.Shipping,
		},
		TotalCosts: totals.TotalCosts,
		Rows:       rows,
	}
}
