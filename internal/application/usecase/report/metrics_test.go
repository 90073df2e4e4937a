// Package report implements the profit-and-loss reporting engine.
package report

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDerive(t *testing.T) {
	t.Run("computes per-row derived fields", func(t *testing.T) {
		rows := []MergedRow{{
			Bucket:   "2025-01-10",
			Revenue:  decimal.NewFromInt(200),
			COGS:     decimal.NewFromInt(60),
			Shipping: decimal.NewFromInt(20),
			Fees:     decimal.NewFromInt(6),
			Handling: decimal.NewFromInt(4),
			AdSpend:  decimal.NewFromInt(50),
			Orders:   4,
		}}

		derived, _ := Derive(rows)
		row := derived[0]

		if !row.TotalCosts.Equal(decimal.NewFromInt(140)) {
			t.Errorf("expected total costs 140, got %s", row.TotalCosts)
		}
		if !row.NetProfit.Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected net profit 60, got %s", row.NetProfit)
		}
		if row.Margin != 30 {
			t.Errorf("expected margin 30, got %v", row.Margin)
		}
		if row.AdSpendPerOrder != 12.5 {
			t.Errorf("expected ad spend per order 12.5, got %v", row.AdSpendPerOrder)
		}
	})

	t.Run("computes whole-range totals and ratios", func(t *testing.T) {
		rows := []MergedRow{
			{Revenue: decimal.NewFromInt(100), COGS: decimal.NewFromInt(30), AdSpend: decimal.NewFromInt(20), Orders: 2},
			{Revenue: decimal.NewFromInt(300), COGS: decimal.NewFromInt(90), AdSpend: decimal.NewFromInt(60), Orders: 6},
		}

		_, totals := Derive(rows)

		if !totals.Revenue.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected revenue 400, got %s", totals.Revenue)
		}
		if !totals.TotalCosts.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected total costs 200, got %s", totals.TotalCosts)
		}
		if !totals.NetProfit.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected net profit 200, got %s", totals.NetProfit)
		}
		if totals.Orders != 8 {
			t.Errorf("expected 8 orders, got %d", totals.Orders)
		}
		if totals.ProfitMargin != 50 {
			t.Errorf("expected profit margin 50, got %v", totals.ProfitMargin)
		}
		if totals.BlendedROAS != 5 {
			t.Errorf("expected blended ROAS 5, got %v", totals.BlendedROAS)
		}
		if totals.POAS != 2.5 {
			t.Errorf("expected POAS 2.5, got %v", totals.POAS)
		}
		if totals.AvgOrderValue != 50 {
			t.Errorf("expected avg order value 50, got %v", totals.AvgOrderValue)
		}
		if totals.AdSpendPerOrder != 10 {
			t.Errorf("expected ad spend per order 10, got %v", totals.AdSpendPerOrder)
		}
		if totals.AvgOrderProfit != 25 {
			t.Errorf("expected avg order profit 25, got %v", totals.AvgOrderProfit)
		}
		if totals.AvgOrderCost != 25 {
			t.Errorf("expected avg order cost 25, got %v", totals.AvgOrderCost)
		}
		if totals.CAC != 10 {
			t.Errorf("expected CAC 10, got %v", totals.CAC)
		}
	})

	t.Run("spend with no revenue yields zero ratios, not errors", func(t *testing.T) {
		rows := []MergedRow{{AdSpend: decimal.NewFromInt(120)}}

		derived, totals := Derive(rows)

		if derived[0].Margin != 0 {
			t.Errorf("expected margin 0, got %v", derived[0].Margin)
		}
		if derived[0].AdSpendPerOrder != 0 {
			t.Errorf("expected ad spend per order 0, got %v", derived[0].AdSpendPerOrder)
		}
		if !derived[0].NetProfit.Equal(decimal.NewFromInt(-120)) {
			t.Errorf("expected net profit -120, got %s", derived[0].NetProfit)
		}
		if totals.ProfitMargin != 0 || totals.AvgOrderValue != 0 ||
			totals.CAC != 0 || totals.AvgOrderProfit != 0 {
			t.Errorf("expected zero per-order ratios, got %+v", totals)
		}
		// Spend is positive, so spend-denominated ratios still compute.
		if totals.BlendedROAS != 0 {
			t.Errorf("expected blended ROAS 0, got %v", totals.BlendedROAS)
		}
		if totals.POAS != -1 {
			t.Errorf("expected POAS -1, got %v", totals.POAS)
		}
	})

	t.Run("revenue with no spend yields zero spend ratios", func(t *testing.T) {
		rows := []MergedRow{{Revenue: decimal.NewFromInt(500), Orders: 5}}

		_, totals := Derive(rows)

		if totals.BlendedROAS != 0 {
			t.Errorf("expected blended ROAS 0, got %v", totals.BlendedROAS)
		}
		if totals.POAS != 0 {
			t.Errorf("expected POAS 0, got %v", totals.POAS)
		}
		if totals.ProfitMargin != 100 {
			t.Errorf("expected profit margin 100, got %v", totals.ProfitMargin)
		}
		if totals.AvgOrderValue != 100 {
			t.Errorf("expected avg order value 100, got %v", totals.AvgOrderValue)
		}
	})

	t.Run("ratios round to two decimals half away from zero", func(t *testing.T) {
		rows := []MergedRow{{
			Revenue: decimal.NewFromInt(100),
			AdSpend: decimal.NewFromInt(3),
			Orders:  3,
		}}

		_, totals := Derive(rows)

		// 100/3 = 33.333... -> 33.33
		if totals.BlendedROAS != 33.33 {
			t.Errorf("expected blended ROAS 33.33, got %v", totals.BlendedROAS)
		}
		if totals.AvgOrderValue != 33.33 {
			t.Errorf("expected avg order value 33.33, got %v", totals.AvgOrderValue)
		}
		// 3/3*... ad spend per order 1
		if totals.AdSpendPerOrder != 1 {
			t.Errorf("expected ad spend per order 1, got %v", totals.AdSpendPerOrder)
		}
	})

	t.Run("row math is conserved: revenue minus costs equals profit", func(t *testing.T) {
		rows := []MergedRow{
			{Revenue: decimal.NewFromFloat(123.45), COGS: decimal.NewFromFloat(37.04), Shipping: decimal.NewFromFloat(9.99), Fees: decimal.NewFromFloat(3.88), Handling: decimal.NewFromFloat(1.5), AdSpend: decimal.NewFromFloat(41.13), Orders: 2},
			{Revenue: decimal.NewFromFloat(98.10), AdSpend: decimal.NewFromFloat(55.01), Orders: 1},
		}

		derived, totals := Derive(rows)

		for _, row := range derived {
			if !row.Revenue.Sub(row.TotalCosts).Equal(row.NetProfit) {
				t.Errorf("bucket %s: profit %s != revenue %s - costs %s",
					row.Bucket, row.NetProfit, row.Revenue, row.TotalCosts)
			}
		}
		if !totals.Revenue.Sub(totals.TotalCosts).Equal(totals.NetProfit) {
			t.Errorf("totals: profit %s != revenue %s - costs %s",
				totals.NetProfit, totals.Revenue, totals.TotalCosts)
		}
	})
}
