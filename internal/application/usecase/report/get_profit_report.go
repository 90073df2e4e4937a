// Package report implements the profit-and-loss reporting engine.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/profitpulse/backend/internal/application/adapter"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
)

// GetProfitReportInput represents the input for computing a profit report.
type GetProfitReportInput struct {
	UserID      uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
}

// GetProfitReportUseCase computes the reconciled profit-and-loss report for
// one store and date range. Each invocation is a stateless, single-pass
// computation over its own fetched slices: concurrent executions share
// nothing and need no coordination.
type GetProfitReportUseCase struct {
	storeRepo adapter.StoreRepository
	orderRepo adapter.OrderRepository
	spendRepo adapter.SpendRepository
}

// NewGetProfitReportUseCase creates a new GetProfitReportUseCase instance.
func NewGetProfitReportUseCase(
	storeRepo adapter.StoreRepository,
	orderRepo adapter.OrderRepository,
	spendRepo adapter.SpendRepository,
) *GetProfitReportUseCase {
	return &GetProfitReportUseCase{
		storeRepo: storeRepo,
		orderRepo: orderRepo,
		spendRepo: spendRepo,
	}
}

// Execute validates the input, fetches the store's records, and runs the
// aggregation pipeline leaf to root. Callers get either a complete report or
// one of the fatal validation errors; there is no partial report.
func (uc *GetProfitReportUseCase) Execute(
	ctx context.Context,
	input GetProfitReportInput,
) (*Report, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	store, err := uc.storeRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeStoreNotFound,
			"no store found",
			domainerror.ErrStoreNotFound,
		)
	}

	orders, err := uc.orderRepo.OrdersInRange(ctx, store.ID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	spends, err := uc.spendRepo.SpendInRange(ctx, store.ID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ad spend: %w", err)
	}

	revenueBuckets, err := AggregateRevenue(orders, input.Granularity, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	spendBuckets, channelSlices, err := AggregateSpend(spends, input.Granularity, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	rows := Merge(revenueBuckets, spendBuckets)
	rows, totals := Derive(rows)

	return Assemble(rows, totals, channelSlices), nil
}

// validateInput validates the input parameters.
func (uc *GetProfitReportUseCase) validateInput(input GetProfitReportInput) error {
	if !input.Granularity.IsValid() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidGranularity,
			fmt.Sprintf("unrecognized granularity %q", input.Granularity),
			domainerror.ErrInvalidGranularity,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"endDate must not be before startDate",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}
