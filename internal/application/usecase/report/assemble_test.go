// Package report implements the profit-and-loss reporting engine.
package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/profitpulse/backend/internal/domain/entity"
)

func TestAssemble(t *testing.T) {
	t.Run("cost breakdown skips zero-valued categories", func(t *testing.T) {
		totals := Totals{
			COGS:    decimal.NewFromInt(100),
			AdSpend: decimal.NewFromInt(50),
			// Shipping, Fees, Handling stay zero.
		}

		rpt := Assemble(nil, totals, nil)

		if len(rpt.CostBreakdown) != 2 {
			t.Fatalf("expected 2 cost slices, got %d", len(rpt.CostBreakdown))
		}
		if rpt.CostBreakdown[0].Category != CategoryCOGS {
			t.Errorf("expected COGS first, got %s", rpt.CostBreakdown[0].Category)
		}
		if rpt.CostBreakdown[1].Category != CategoryAdSpend {
			t.Errorf("expected Ad Spend second, got %s", rpt.CostBreakdown[1].Category)
		}
	})

	t.Run("cost slices carry their stable colors", func(t *testing.T) {
		totals := Totals{
			COGS:     decimal.NewFromInt(1),
			AdSpend:  decimal.NewFromInt(1),
			Shipping: decimal.NewFromInt(1),
			Fees:     decimal.NewFromInt(1),
			Handling: decimal.NewFromInt(1),
		}

		rpt := Assemble(nil, totals, nil)

		want := map[string]string{
			CategoryCOGS:     "#3b82f6",
			CategoryAdSpend:  "#f97316",
			CategoryShipping: "#64748b",
			CategoryFees:     "#eab308",
			CategoryHandling: "#10b981",
		}
		for _, slice := range rpt.CostBreakdown {
			if slice.Color != want[slice.Category] {
				t.Errorf("%s: expected color %s, got %s", slice.Category, want[slice.Category], slice.Color)
			}
		}
	})

	t.Run("channel ranking keeps order and assigns colors", func(t *testing.T) {
		channels := []ChannelSlice{
			{Channel: entity.SpendChannelMeta, Total: decimal.NewFromInt(70)},
			{Channel: entity.SpendChannelTikTok, Total: decimal.NewFromInt(30)},
			{Channel: entity.SpendChannelGoogle, Total: decimal.NewFromInt(10)},
		}

		rpt := Assemble(nil, Totals{}, channels)

		if len(rpt.ChannelSpend) != 3 {
			t.Fatalf("expected 3 channels, got %d", len(rpt.ChannelSpend))
		}
		if rpt.ChannelSpend[0].Color != "#3b82f6" {
			t.Errorf("expected META blue, got %s", rpt.ChannelSpend[0].Color)
		}
		if rpt.ChannelSpend[1].Color != "#ec4899" {
			t.Errorf("expected TIKTOK pink, got %s", rpt.ChannelSpend[1].Color)
		}
		// Channels without a dedicated color fall back.
		if rpt.ChannelSpend[2].Color != "#eab308" {
			t.Errorf("expected fallback color, got %s", rpt.ChannelSpend[2].Color)
		}
	})

	t.Run("cards and customer summary reflect the totals", func(t *testing.T) {
		totals := Totals{
			Revenue:      decimal.NewFromInt(1000),
			AdSpend:      decimal.NewFromInt(200),
			NetProfit:    decimal.NewFromInt(300),
			ProfitMargin: 30,
			Orders:       10,
			CAC:          20,
		}

		rpt := Assemble(nil, totals, nil)

		if !rpt.Cards.TotalRevenue.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected revenue 1000, got %s", rpt.Cards.TotalRevenue)
		}
		if rpt.Cards.TotalOrders != 10 {
			t.Errorf("expected 10 orders, got %d", rpt.Cards.TotalOrders)
		}
		// Customer counts are an order-count proxy.
		if rpt.CustomerSummary.TotalCustomers != 10 || rpt.CustomerSummary.NewCustomers != 10 {
			t.Errorf("expected customer counts to mirror orders, got %+v", rpt.CustomerSummary)
		}
		if rpt.CustomerSummary.RepurchaseRate != 0 {
			t.Errorf("expected repurchase rate 0, got %v", rpt.CustomerSummary.RepurchaseRate)
		}
		if rpt.CustomerSummary.CAC != 20 {
			t.Errorf("expected CAC 20, got %v", rpt.CustomerSummary.CAC)
		}
		if rpt.OrderMetrics.PurchaseFrequency != 1 {
			t.Errorf("expected purchase frequency 1, got %v", rpt.OrderMetrics.PurchaseFrequency)
		}
	})

	t.Run("empty inputs produce an empty but complete report", func(t *testing.T) {
		rpt := Assemble(nil, Totals{}, nil)

		if len(rpt.CostBreakdown) != 0 {
			t.Errorf("expected no cost slices, got %d", len(rpt.CostBreakdown))
		}
		if len(rpt.ChannelSpend) != 0 {
			t.Errorf("expected no channels, got %d", len(rpt.ChannelSpend))
		}
		if len(rpt.Rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rpt.Rows))
		}
		if !rpt.TotalCosts.IsZero() {
			t.Errorf("expected zero total costs, got %s", rpt.TotalCosts)
		}
	})
}
