// Package report implements the profit-and-loss reporting engine.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/profitpulse/backend/internal/domain/entity"
)

// RevenueAccumulator holds the revenue-side sums for one bucket.
type RevenueAccumulator struct {
	Revenue  decimal.Decimal
	COGS     decimal.Decimal
	Shipping decimal.Decimal
	Fees     decimal.Decimal
	Handling decimal.Decimal
	Orders   int
}

// AggregateRevenue folds order records into per-bucket revenue-side sums.
//
// Only orders with financial status "paid" and a processed-at timestamp
// inside [rangeStart, rangeEnd] (inclusive) participate; this filter lives
// here, not upstream. Buckets with no matching orders are absent from the
// result — gap filling is the merger's job. Plain sums keep the fold
// associative and commutative, so input order never changes the output.
func AggregateRevenue(
	orders []entity.OrderRecord,
	granularity Granularity,
	rangeStart, rangeEnd time.Time,
) (map[string]RevenueAccumulator, error) {
	buckets := make(map[string]RevenueAccumulator)

	for _, order := range orders {
		if !order.IsPaid() {
			continue
		}
		if order.ProcessedAt.Before(rangeStart) || order.ProcessedAt.After(rangeEnd) {
			continue
		}

		key, err := BucketKey(order.ProcessedAt, granularity)
		if err != nil {
			return nil, err
		}

		acc := buckets[key]
		acc.Revenue = acc.Revenue.Add(order.TotalSales)
		acc.COGS = acc.COGS.Add(order.COGS)
		acc.Shipping = acc.Shipping.Add(order.ShippingCost)
		acc.Fees = acc.Fees.Add(order.PaymentGatewayFee)
		acc.Handling = acc.Handling.Add(order.HandlingCost)
		acc.Orders++
		buckets[key] = acc
	}

	return buckets, nil
}
