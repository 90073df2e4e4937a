// Package report implements the profit-and-loss reporting engine.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/profitpulse/backend/internal/domain/entity"
)

// ChannelSlice holds one channel's total ad spend over the whole range.
type ChannelSlice struct {
	Channel entity.SpendChannel
	Total   decimal.Decimal
}

// AggregateSpend folds spend records into per-bucket cost-side sums.
//
// The per-bucket map is channel-agnostic and feeds the series merger. The
// channel slices are a whole-range breakdown computed independently of
// bucketing, sorted by total spend descending with ties broken by channel
// identifier ascending so the ranking is deterministic.
func AggregateSpend(
	spends []entity.SpendRecord,
	granularity Granularity,
	rangeStart, rangeEnd time.Time,
) (map[string]decimal.Decimal, []ChannelSlice, error) {
	buckets := make(map[string]decimal.Decimal)
	byChannel := make(map[entity.SpendChannel]decimal.Decimal)

	for _, spend := range spends {
		if spend.Date.Before(rangeStart) || spend.Date.After(rangeEnd) {
			continue
		}

		key, err := BucketKey(spend.Date, granularity)
		if err != nil {
			return nil, nil, err
		}

		buckets[key] = buckets[key].Add(spend.Amount)
		byChannel[spend.Channel] = byChannel[spend.Channel].Add(spend.Amount)
	}

	slices := make([]ChannelSlice, 0, len(byChannel))
	for channel, total := range byChannel {
		slices = append(slices, ChannelSlice{Channel: channel, Total: total})
	}
	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].Total.Equal(slices[j].Total) {
			return slices[i].Total.GreaterThan(slices[j].Total)
		}
		return slices[i].Channel < slices[j].Channel
	})

	return buckets, slices, nil
}
