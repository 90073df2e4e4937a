// Package order contains order-listing use cases.
package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/profitpulse/backend/internal/application/adapter"
	"github.com/profitpulse/backend/internal/domain/entity"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
)

// ListOrdersInput represents the input for listing orders.
type ListOrdersInput struct {
	UserID uuid.UUID
	Search string
	Page   int
	Limit  int
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page        int
	Limit       int
	Total       int64
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// ListOrdersOutput represents the output of listing orders.
type ListOrdersOutput struct {
	Orders     []entity.OrderRecord
	Pagination PaginationOutput
}

// ListOrdersUseCase handles paginated order listing.
type ListOrdersUseCase struct {
	storeRepo adapter.StoreRepository
	orderRepo adapter.OrderRepository
}

// NewListOrdersUseCase creates a new ListOrdersUseCase instance.
func NewListOrdersUseCase(
	storeRepo adapter.StoreRepository,
	orderRepo adapter.OrderRepository,
) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		storeRepo: storeRepo,
		orderRepo: orderRepo,
	}
}

// Execute performs the order listing, newest first.
func (uc *ListOrdersUseCase) Execute(ctx context.Context, input ListOrdersInput) (*ListOrdersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	store, err := uc.storeRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeStoreNotFound,
			"no store found",
			domainerror.ErrStoreNotFound,
		)
	}

	orders, total, err := uc.orderRepo.List(
		ctx,
		store.ID,
		adapter.OrderListFilter{Search: input.Search},
		adapter.OrderPagination{Page: page, Limit: limit},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ListOrdersOutput{
		Orders: orders,
		Pagination: PaginationOutput{
			Page:        page,
			Limit:       limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	}, nil
}
