// Package order contains order-listing use cases.
package order

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/profitpulse/backend/internal/application/adapter"
	"github.com/profitpulse/backend/internal/domain/entity"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
)

type fakeStoreRepo struct {
	store *entity.Store
	err   error
}

func (f *fakeStoreRepo) FindByOwner(_ context.Context, _ uuid.UUID) (*entity.Store, error) {
	return f.store, f.err
}
func (f *fakeStoreRepo) Create(_ context.Context, _ *entity.Store) error { return nil }
func (f *fakeStoreRepo) Update(_ context.Context, _ *entity.Store) error { return nil }

// fakeOrderRepo pages over an in-memory slice, newest first like the real
// repository.
type fakeOrderRepo struct {
	orders []entity.OrderRecord

	lastFilter     adapter.OrderListFilter
	lastPagination adapter.OrderPagination
}

func (f *fakeOrderRepo) OrdersInRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]entity.OrderRecord, error) {
	return nil, nil
}

func (f *fakeOrderRepo) List(_ context.Context, _ uuid.UUID, filter adapter.OrderListFilter, pagination adapter.OrderPagination) ([]entity.OrderRecord, int64, error) {
	f.lastFilter = filter
	f.lastPagination = pagination

	var matched []entity.OrderRecord
	for _, order := range f.orders {
		if filter.Search == "" || strings.Contains(order.OrderName, filter.Search) {
			matched = append(matched, order)
		}
	}

	offset := (pagination.Page - 1) * pagination.Limit
	if offset >= len(matched) {
		return nil, int64(len(matched)), nil
	}
	end := offset + pagination.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], int64(len(matched)), nil
}

func (f *fakeOrderRepo) CreateBatch(_ context.Context, _ []entity.OrderRecord) error { return nil }
func (f *fakeOrderRepo) DeleteByStore(_ context.Context, _ uuid.UUID) error          { return nil }

func demoOrders(n int) []entity.OrderRecord {
	orders := make([]entity.OrderRecord, n)
	for i := range orders {
		orders[i] = entity.OrderRecord{
			ID:        uuid.New(),
			OrderName: "#10" + string(rune('0'+i%10)),
		}
	}
	return orders
}

func TestListOrdersUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	store := entity.NewStore(userID, "Store", "s.myshopify.com", "token")

	t.Run("applies pagination defaults", func(t *testing.T) {
		orderRepo := &fakeOrderRepo{orders: demoOrders(25)}
		uc := NewListOrdersUseCase(&fakeStoreRepo{store: store}, orderRepo)

		output, err := uc.Execute(context.Background(), ListOrdersInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if orderRepo.lastPagination.Page != 1 || orderRepo.lastPagination.Limit != 10 {
			t.Errorf("expected page 1 limit 10, got %+v", orderRepo.lastPagination)
		}
		if len(output.Orders) != 10 {
			t.Errorf("expected 10 orders, got %d", len(output.Orders))
		}
		if output.Pagination.Total != 25 || output.Pagination.TotalPages != 3 {
			t.Errorf("unexpected pagination: %+v", output.Pagination)
		}
		if !output.Pagination.HasNextPage || output.Pagination.HasPrevPage {
			t.Errorf("expected next page only, got %+v", output.Pagination)
		}
	})

	t.Run("caps the page size at 100", func(t *testing.T) {
		orderRepo := &fakeOrderRepo{orders: demoOrders(5)}
		uc := NewListOrdersUseCase(&fakeStoreRepo{store: store}, orderRepo)

		if _, err := uc.Execute(context.Background(), ListOrdersInput{UserID: userID, Limit: 5000}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orderRepo.lastPagination.Limit != 100 {
			t.Errorf("expected limit capped at 100, got %d", orderRepo.lastPagination.Limit)
		}
	})

	t.Run("last page has a previous page but no next", func(t *testing.T) {
		orderRepo := &fakeOrderRepo{orders: demoOrders(25)}
		uc := NewListOrdersUseCase(&fakeStoreRepo{store: store}, orderRepo)

		output, err := uc.Execute(context.Background(), ListOrdersInput{UserID: userID, Page: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Orders) != 5 {
			t.Errorf("expected 5 orders on the last page, got %d", len(output.Orders))
		}
		if output.Pagination.HasNextPage || !output.Pagination.HasPrevPage {
			t.Errorf("expected previous page only, got %+v", output.Pagination)
		}
	})

	t.Run("passes the search filter through", func(t *testing.T) {
		orderRepo := &fakeOrderRepo{orders: demoOrders(10)}
		uc := NewListOrdersUseCase(&fakeStoreRepo{store: store}, orderRepo)

		if _, err := uc.Execute(context.Background(), ListOrdersInput{UserID: userID, Search: "#104"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orderRepo.lastFilter.Search != "#104" {
			t.Errorf("expected search filter to pass through, got %q", orderRepo.lastFilter.Search)
		}
	})

	t.Run("missing store surfaces as store not found", func(t *testing.T) {
		uc := NewListOrdersUseCase(&fakeStoreRepo{err: domainerror.ErrStoreNotFound}, &fakeOrderRepo{})

		_, err := uc.Execute(context.Background(), ListOrdersInput{UserID: userID})
		if !errors.Is(err, domainerror.ErrStoreNotFound) {
			t.Errorf("expected ErrStoreNotFound, got %v", err)
		}
	})
}
