// Package report implements the profit-and-loss reporting engine.
package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MergedRow is one bucket of the reconciled series. The merger creates it
// zero-initialized, the aggregators' sums populate each side, and Derive
// fills the derived fields. After that the row is read-only.
type MergedRow struct {
	Bucket   string
	Revenue  decimal.Decimal
	COGS     decimal.Decimal
	Shipping decimal.Decimal
	Fees     decimal.Decimal
	Handling decimal.Decimal
	Orders   int
	AdSpend  decimal.Decimal

	// Derived fields, computed by Derive.
	TotalCosts      decimal.Decimal
	NetProfit       decimal.Decimal
	Margin          float64
	AdSpendPerOrder float64
}

// Merge outer-joins revenue buckets and spend buckets on bucket key.
//
// Every key present on either side yields exactly one row, with the absent
// side's fields left at zero: a bucket with ads but no sales and a bucket
// with organic sales but no ads both appear. The union is sorted explicitly
// rather than relying on map iteration order; bucket keys sort
// chronologically as plain strings.
func Merge(
	revenue map[string]RevenueAccumulator,
	spend map[string]decimal.Decimal,
) []MergedRow {
	keys := make([]string, 0, len(revenue)+len(spend))
	seen := make(map[string]struct{}, len(revenue)+len(spend))
	for key := range revenue {
		keys = append(keys, key)
		seen[key] = struct{}{}
	}
	for key := range spend {
		if _, ok := seen[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	rows := make([]MergedRow, 0, len(keys))
	for _, key := range keys {
		row := MergedRow{Bucket: key}
		if acc, ok := revenue[key]; ok {
			row.Revenue = acc.Revenue
			row.COGS = acc.COGS
			row.Shipping = acc.Shipping
			row.Fees = acc.Fees
			row.Handling = acc.Handling
			row.Orders = acc.Orders
		}
		if amount, ok := spend[key]; ok {
			row.AdSpend = amount
		}
		rows = append(rows, row)
	}

	return rows
}
