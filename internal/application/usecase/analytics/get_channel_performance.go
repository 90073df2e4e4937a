// Package analytics contains ad-platform analytics use cases.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profitpulse/backend/internal/application/adapter"
	"github.com/profitpulse/backend/internal/domain/entity"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
)

// GetChannelPerformanceInput represents the input for channel performance.
type GetChannelPerformanceInput struct {
	UserID uuid.UUID
}

// PlatformTotal is one channel's total spend over the store's history.
type PlatformTotal struct {
	Channel    entity.SpendChannel
	TotalSpend decimal.Decimal
}

// DailyChannelSpend is one day's spend broken down by channel, shaped for a
// stacked bar chart: one point per date, one amount per channel present.
type DailyChannelSpend struct {
	Date    string
	Amounts []ChannelAmount
}

// ChannelAmount is the spend of a single channel on a single day.
type ChannelAmount struct {
	Channel entity.SpendChannel
	Amount  decimal.Decimal
}

// GetChannelPerformanceOutput represents the output of channel performance.
type GetChannelPerformanceOutput struct {
	PlatformBreakdown []PlatformTotal
	DailyTrend        []DailyChannelSpend
}

// GetChannelPerformanceUseCase computes per-platform spend totals and the
// per-day per-channel spend matrix for the ad analytics page.
type GetChannelPerformanceUseCase struct {
	storeRepo adapter.StoreRepository
	spendRepo adapter.SpendRepository
}

// NewGetChannelPerformanceUseCase creates a new GetChannelPerformanceUseCase instance.
func NewGetChannelPerformanceUseCase(
	storeRepo adapter.StoreRepository,
	spendRepo adapter.SpendRepository,
) *GetChannelPerformanceUseCase {
	return &GetChannelPerformanceUseCase{
		storeRepo: storeRepo,
		spendRepo: spendRepo,
	}
}

// Execute computes channel performance over the store's full spend history.
func (uc *GetChannelPerformanceUseCase) Execute(
	ctx context.Context,
	input GetChannelPerformanceInput,
) (*GetChannelPerformanceOutput, error) {
	store, err := uc.storeRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeStoreNotFound,
			"no store found",
			domainerror.ErrStoreNotFound,
		)
	}

	spends, err := uc.spendRepo.ByStore(ctx, store.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ad spend: %w", err)
	}

	totals := make(map[entity.SpendChannel]decimal.Decimal)
	daily := make(map[string]map[entity.SpendChannel]decimal.Decimal)
	for _, spend := range spends {
		totals[spend.Channel] = totals[spend.Channel].Add(spend.Amount)

		date := spend.Date.Format("2006-01-02")
		if daily[date] == nil {
			daily[date] = make(map[entity.SpendChannel]decimal.Decimal)
		}
		daily[date][spend.Channel] = daily[date][spend.Channel].Add(spend.Amount)
	}

	breakdown := make([]PlatformTotal, 0, len(totals))
	for channel, total := range totals {
		breakdown = append(breakdown, PlatformTotal{Channel: channel, TotalSpend: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].TotalSpend.Equal(breakdown[j].TotalSpend) {
			return breakdown[i].TotalSpend.GreaterThan(breakdown[j].TotalSpend)
		}
		return breakdown[i].Channel < breakdown[j].Channel
	})

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	trend := make([]DailyChannelSpend, 0, len(dates))
	for _, date := range dates {
		amounts := make([]ChannelAmount, 0, len(daily[date]))
		for channel, amount := range daily[date] {
			amounts = append(amounts, ChannelAmount{Channel: channel, Amount: amount})
		}
		sort.Slice(amounts, func(i, j int) bool {
			return amounts[i].Channel < amounts[j].Channel
		})
		trend = append(trend, DailyChannelSpend{Date: date, Amounts: amounts})
	}

	return &GetChannelPerformanceOutput{
		PlatformBreakdown: breakdown,
		DailyTrend:        trend,
	}, nil
}
