// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/profitpulse/backend/internal/application/usecase/report"
)

// DashboardStatsResponse represents the response for the dashboard stats API.
// Field names are a stable contract with the presentation layer; renaming any
// of them is a breaking change.
type DashboardStatsResponse struct {
	Data    DashboardStatsData `json:"data"`
	Message string             `json:"message"`
}

// DashboardStatsData represents the data section of the dashboard stats response.
type DashboardStatsData struct {
	Cards           CardsResponse           `json:"cards"`
	CostBreakdown   []CostSliceResponse     `json:"costBreakdown"`
	ChannelData     []ChannelSliceResponse  `json:"channelData"`
	AdMetrics       AdMetricsResponse       `json:"adMetrics"`
	OrderMetrics    OrderMetricsResponse    `json:"orderMetrics"`
	CustomerSummary CustomerSummaryResponse `json:"customerSummary"`
	Others          OthersResponse          `json:"others"`
	TotalCosts      float64                 `json:"totalCosts"`
	GraphData       []GraphRowResponse      `json:"graphData"`
}

// CardsResponse represents the headline card totals.
type CardsResponse struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalAdSpend float64 `json:"totalAdSpend"`
	NetProfit    float64 `json:"netProfit"`
	ProfitMargin float64 `json:"profitMargin"`
	TotalOrders  int     `json:"totalOrders"`
}

// CostSliceResponse represents one cost-breakdown entry.
type CostSliceResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// ChannelSliceResponse represents one channel-spend ranking entry.
type ChannelSliceResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// AdMetricsResponse represents ad-performance metrics.
type AdMetricsResponse struct {
	BlendedROAS  float64 `json:"blendedROAS"`
	POAS         float64 `json:"poas"`
	TotalAdSpend float64 `json:"totalAdSpend"`
}

// OrderMetricsResponse represents per-order averages.
type OrderMetricsResponse struct {
	AvgOrderValue     float64 `json:"avgOrderValue"`
	AdSpendPerOrder   float64 `json:"adSpendPerOrder"`
	AvgOrderProfit    float64 `json:"avgOrderProfit"`
	AvgOrderCost      float64 `json:"avgOrderCost"`
	PurchaseFrequency float64 `json:"purchaseFrequency"`
}

// CustomerSummaryResponse represents customer-level metrics. Counts are an
// order-count approximation until customer identity is tracked.
type CustomerSummaryResponse struct {
	TotalCustomers int     `json:"totalCustomers"`
	NewCustomers   int     `json:"newCustomers"`
	RepurchaseRate float64 `json:"repurchaseRate"`
	CAC            float64 `json:"cac"`
}

// OthersResponse represents secondary financial figures.
type OthersResponse struct {
	ShippingCharged float64 `json:"shippingCharged"`
	TaxesCollected  float64 `json:"taxesCollected"`
	Tips            float64 `json:"tips"`
	GiftCardSales   float64 `json:"giftCardSales"`
	Returns         float64 `json:"returns"`
}

// GraphRowResponse represents one bucket of the reconciled series.
type GraphRowResponse struct {
	Date            string  `json:"date"`
	Revenue         float64 `json:"revenue"`
	COGS            float64 `json:"cogs"`
	Shipping        float64 `json:"shipping"`
	Fees            float64 `json:"fees"`
	Handling        float64 `json:"handling"`
	Orders          int     `json:"orders"`
	AdSpend         float64 `json:"adSpend"`
	TotalCosts      float64 `json:"totalCosts"`
	NetProfit       float64 `json:"netProfit"`
	Margin          float64 `json:"margin"`
	AdSpendPerOrder float64 `json:"adSpendPerOrder"`
}

// ToDashboardStatsResponse converts a report to the dashboard stats DTO.
func ToDashboardStatsResponse(rpt *report.Report) DashboardStatsResponse {
	costBreakdown := make([]CostSliceResponse, len(rpt.CostBreakdown))
	for i, slice := range rpt.CostBreakdown {
		value, _ := slice.Value.Float64()
		costBreakdown[i] = CostSliceResponse{
			Name:  slice.Category,
			Value: value,
			Color: slice.Color,
		}
	}

	channelData := make([]ChannelSliceResponse, len(rpt.ChannelSpend))
	for i, rank := range rpt.ChannelSpend {
		value, _ := rank.Value.Float64()
		channelData[i] = ChannelSliceResponse{
			Name:  string(rank.Channel),
			Value: value,
			Color: rank.Color,
		}
	}

	graphData := make([]GraphRowResponse, len(rpt.Rows))
	for i, row := range rpt.Rows {
		revenue, _ := row.Revenue.Float64()
		cogs, _ := row.COGS.Float64()
		shipping, _ := row.Shipping.Float64()
		fees, _ := row.Fees.Float64()
		handling, _ := row.Handling.Float64()
		adSpend, _ := row.AdSpend.Float64()
		totalCosts, _ := row.TotalCosts.Float64()
		netProfit, _ := row.NetProfit.Float64()
		graphData[i] = GraphRowResponse{
			Date:            row.Bucket,
			Revenue:         revenue,
			COGS:            cogs,
			Shipping:        shipping,
			Fees:            fees,
			Handling:        handling,
			Orders:          row.Orders,
			AdSpend:         adSpend,
			TotalCosts:      totalCosts,
			NetProfit:       netProfit,
			Margin:          row.Margin,
			AdSpendPerOrder: row.AdSpendPerOrder,
		}
	}

	totalRevenue, _ := rpt.Cards.TotalRevenue.Float64()
	totalAdSpend, _ := rpt.Cards.TotalAdSpend.Float64()
	netProfit, _ := rpt.Cards.NetProfit.Float64()
	adTotalSpend, _ := rpt.AdMetrics.TotalAdSpend.Float64()
	totalCosts, _ := rpt.TotalCosts.Float64()
	shippingCharged, _ := rpt.Others.ShippingCharged.Float64()
	taxesCollected, _ := rpt.Others.TaxesCollected.Float64()
	tips, _ := rpt.Others.Tips.Float64()
	giftCardSales, _ := rpt.Others.GiftCardSales.Float64()
	returns, _ := rpt.Others.Returns.Float64()

	return DashboardStatsResponse{
		Data: DashboardStatsData{
			Cards: CardsResponse{
				TotalRevenue: totalRevenue,
				TotalAdSpend: totalAdSpend,
				NetProfit:    netProfit,
				ProfitMargin: rpt.Cards.ProfitMargin,
				TotalOrders:  rpt.Cards.TotalOrders,
			},
			CostBreakdown: costBreakdown,
			ChannelData:   channelData,
			AdMetrics: AdMetricsResponse{
				BlendedROAS:  rpt.AdMetrics.BlendedROAS,
				POAS:         rpt.AdMetrics.POAS,
				TotalAdSpend: adTotalSpend,
			},
			OrderMetrics: OrderMetricsResponse{
				AvgOrderValue:     rpt.OrderMetrics.AvgOrderValue,
				AdSpendPerOrder:   rpt.OrderMetrics.AdSpendPerOrder,
				AvgOrderProfit:    rpt.OrderMetrics.AvgOrderProfit,
				AvgOrderCost:      rpt.OrderMetrics.AvgOrderCost,
				PurchaseFrequency: rpt.OrderMetrics.PurchaseFrequency,
			},
			CustomerSummary: CustomerSummaryResponse{
				TotalCustomers: rpt.CustomerSummary.TotalCustomers,
				NewCustomers:   rpt.CustomerSummary.NewCustomers,
				RepurchaseRate: rpt.CustomerSummary.RepurchaseRate,
				CAC:            rpt.CustomerSummary.CAC,
			},
			Others: OthersResponse{
				ShippingCharged: shippingCharged,
				TaxesCollected:  taxesCollected,
				Tips:            tips,
				GiftCardSales:   giftCardSales,
				Returns:         returns,
			},
			TotalCosts: totalCosts,
			GraphData:  graphData,
		},
		Message: "Stats fetched",
	}
}
