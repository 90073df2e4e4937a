// Package report implements the profit-and-loss reporting engine.
package report

import "github.com/shopspring/decimal"

// Totals holds the whole-range sums and derived ratios of a report.
type Totals struct {
	Revenue    decimal.Decimal
	COGS       decimal.Decimal
	Shipping   decimal.Decimal
	Fees       decimal.Decimal
	Handling   decimal.Decimal
	AdSpend    decimal.Decimal
	TotalCosts decimal.Decimal
	NetProfit  decimal.Decimal
	Orders     int

	ProfitMargin    float64
	BlendedROAS     float64
	POAS            float64
	AvgOrderValue   float64
	AdSpendPerOrder float64
	AvgOrderProfit  float64
	AvgOrderCost    float64
	CAC             float64
}

var hundred = decimal.NewFromInt(100)

// Derive computes the derived fields of every row and the whole-range totals.
//
// Raw currency sums stay at full precision; only ratio metrics are rounded,
// to 2 decimal places half-away-from-zero. Every division whose divisor is
// zero resolves to the literal 0 — never an error, never NaN or Inf. A brand
// new store with spend but no sales (or sales but no spend) is a steady
// state, not an exception.
func Derive(rows []MergedRow) ([]MergedRow, Totals) {
	var totals Totals

	for i := range rows {
		row := &rows[i]
		row.TotalCosts = row.COGS.Add(row.AdSpend).Add(row.Shipping).Add(row.Fees).Add(row.Handling)
		row.NetProfit = row.Revenue.Sub(row.TotalCosts)
		row.Margin = percentOf(row.NetProfit, row.Revenue)
		row.AdSpendPerOrder = perCount(row.AdSpend, row.Orders)

		totals.Revenue = totals.Revenue.Add(row.Revenue)
		totals.COGS = totals.COGS.Add(row.COGS)
		totals.Shipping = totals.Shipping.Add(row.Shipping)
		totals.Fees = totals.Fees.Add(row.Fees)
		totals.Handling = totals.Handling.Add(row.Handling)
		totals.AdSpend = totals.AdSpend.Add(row.AdSpend)
		totals.Orders += row.Orders
	}

	totals.TotalCosts = totals.COGS.Add(totals.AdSpend).Add(totals.Shipping).Add(totals.Fees).Add(totals.Handling)
	totals.NetProfit = totals.Revenue.Sub(totals.TotalCosts)

	totals.ProfitMargin = percentOf(totals.NetProfit, totals.Revenue)
	totals.BlendedROAS = ratioOf(totals.Revenue, totals.AdSpend)
	totals.POAS = ratioOf(totals.NetProfit, totals.AdSpend)
	totals.AvgOrderValue = perCount(totals.Revenue, totals.Orders)
	totals.AdSpendPerOrder = perCount(totals.AdSpend, totals.Orders)
	totals.AvgOrderProfit = perCount(totals.NetProfit, totals.Orders)
	totals.AvgOrderCost = perCount(totals.TotalCosts, totals.Orders)
	// Customer count is approximated by order count; CAC inherits that proxy.
	totals.CAC = perCount(totals.AdSpend, totals.Orders)

	return rows, totals
}

// percentOf returns numerator/denominator*100 rounded to 2 decimals, or 0
// when the denominator is not positive.
func percentOf(numerator, denominator decimal.Decimal) float64 {
	if !denominator.IsPositive() {
		return 0
	}
	result, _ := numerator.Mul(hundred).Div(denominator).Round(2).Float64()
	return result
}

// ratioOf returns numerator/denominator rounded to 2 decimals, or 0 when the
// denominator is not positive.
func ratioOf(numerator, denominator decimal.Decimal) float64 {
	if !denominator.IsPositive() {
		return 0
	}
	result, _ := numerator.Div(denominator).Round(2).Float64()
	return result
}

// perCount returns amount/count rounded to 2 decimals, or 0 when count is 0.
func perCount(amount decimal.Decimal, count int) float64 {
	if count <= 0 {
		return 0
	}
	result, _ := amount.Div(decimal.NewFromInt(int64(count))).Round(2).Float64()
	return result
}
