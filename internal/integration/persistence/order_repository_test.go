package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profitpulse/backend/internal/application/adapter"
	"github.com/profitpulse/backend/internal/domain/entity"
)

func newOrder(storeID uuid.UUID, name string, processedAt time.Time, total float64) entity.OrderRecord {
	now := time.Now().UTC()
	return entity.OrderRecord{
		ID:              uuid.New(),
		StoreID:         storeID,
		ExternalID:      uuid.New().String(),
		OrderName:       name,
		TotalSales:      decimal.NewFromFloat(total),
		NetSales:        decimal.NewFromFloat(total),
		Currency:        "USD",
		FinancialStatus: entity.FinancialStatusPaid,
		ProcessedAt:     processedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestOrderRepositoryOrdersInRange(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	otherStoreID := uuid.New()
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC)

	t.Run("should return orders inside the range sorted by processed_at", func(t *testing.T) {
		repo := NewOrderRepository(newTestDB(t))
		err := repo.CreateBatch(ctx, []entity.OrderRecord{
			newOrder(storeID, "#1002", start.Add(36*time.Hour), 80),
			newOrder(storeID, "#1001", start.Add(2*time.Hour), 50),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		orders, err := repo.OrdersInRange(ctx, storeID, start, end)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(orders) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(orders))
		}
		if orders[0].OrderName != "#1001" || orders[1].OrderName != "#1002" {
			t.Errorf("expected chronological order, got %s then %s", orders[0].OrderName, orders[1].OrderName)
		}
		if !orders[0].TotalSales.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected total 50, got %s", orders[0].TotalSales)
		}
	})

	t.Run("should include orders exactly on the range bounds", func(t *testing.T) {
		repo := NewOrderRepository(newTestDB(t))
		err := repo.CreateBatch(ctx, []entity.OrderRecord{
			newOrder(storeID, "#first", start, 10),
			newOrder(storeID, "#last", end, 20),
			newOrder(storeID, "#before", start.Add(-time.Second), 30),
			newOrder(storeID, "#after", end.Add(time.Second), 40),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		orders, err := repo.OrdersInRange(ctx, storeID, start, end)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(orders) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(orders))
		}
		if orders[0].OrderName != "#first" || orders[1].OrderName != "#last" {
			t.Errorf("expected boundary orders, got %s and %s", orders[0].OrderName, orders[1].OrderName)
		}
	})

	t.Run("should not return orders of another store", func(t *testing.T) {
		repo := NewOrderRepository(newTestDB(t))
		err := repo.CreateBatch(ctx, []entity.OrderRecord{
			newOrder(otherStoreID, "#other", start.Add(time.Hour), 99),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		orders, err := repo.OrdersInRange(ctx, storeID, start, end)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(orders) != 0 {
			t.Errorf("expected no orders, got %d", len(orders))
		}
	})
}

func TestOrderRepositoryList(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	base := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	seed := func(t *testing.T, repo adapter.OrderRepository, count int) {
		t.Helper()
		orders := make([]entity.OrderRecord, 0, count)
		for i := 0; i < count; i++ {
			orders = append(orders, newOrder(storeID, fmt.Sprintf("#%04d", i+1), base.Add(time.Duration(i)*time.Hour), 25))
		}
		if err := repo.CreateBatch(ctx, orders); err != nil {
			t.Fatalf("failed to seed orders: %v", err)
		}
	}

	t.Run("should return the first page newest first with total count", func(t *testing.T) {
		repo := NewOrderRepository(newTestDB(t))
		seed(t, repo, 15)

		orders, total, err := repo.List(ctx, storeID, adapter.OrderListFilter{}, adapter.OrderPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if total != 15 {
			t.Errorf("expected total 15, got %d", total)
		}
		if len(orders) != 10 {
			t.Fatalf("expected 10 orders, got %d", len(orders))
		}
		if orders[0].OrderName != "#0015" {
			t.Errorf("expected newest order first, got %s", orders[0].OrderName)
		}
	})

	t.Run("should return the remaining orders on the second page", func(t *testing.T) {
		repo := NewOrderRepository(newTestDB(t))
		seed(t, repo, 15)

		orders, total, err := repo.List(ctx, storeID, adapter.OrderListFilter{}, adapter.OrderPagination{Page: 2, Limit: 10})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if total != 15 {
			t.Errorf("expected total 15, got %d", total)
		}
		if len(orders) != 5 {
			t.Fatalf("expected 5 orders, got %d", len(orders))
		}
		if orders[len(orders)-1].OrderName != "#0001" {
			t.Errorf("expected oldest order last, got %s", orders[len(orders)-1].OrderName)
		}
	})

	t.Run("should filter orders by name search", func(t *testing.T) {
		repo := NewOrderRepository(newTestDB(t))
		seed(t, repo, 12)

		orders, total, err := repo.List(ctx, storeID, adapter.OrderListFilter{Search: "001"}, adapter.OrderPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		// #0010, #0011, #0012 and #0001 contain "001".
		if total != 4 {
			t.Errorf("expected total 4, got %d", total)
		}
		if len(orders) != 4 {
			t.Errorf("expected 4 orders, got %d", len(orders))
		}
	})
}

func TestOrderRepositoryDeleteByStore(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	otherStoreID := uuid.New()
	base := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should delete only the orders of the given store", func(t *testing.T) {
		repo := NewOrderRepository(newTestDB(t))
		err := repo.CreateBatch(ctx, []entity.OrderRecord{
			newOrder(storeID, "#mine", base, 10),
			newOrder(otherStoreID, "#theirs", base, 20),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if err := repo.DeleteByStore(ctx, storeID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		_, total, err := repo.List(ctx, storeID, adapter.OrderListFilter{}, adapter.OrderPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if total != 0 {
			t.Errorf("expected store orders gone, got %d", total)
		}

		_, otherTotal, err := repo.List(ctx, otherStoreID, adapter.OrderListFilter{}, adapter.OrderPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if otherTotal != 1 {
			t.Errorf("expected other store untouched, got %d", otherTotal)
		}
	})

	t.Run("should accept an empty batch", func(t *testing.T) {
		repo := NewOrderRepository(newTestDB(t))
		if err := repo.CreateBatch(ctx, nil); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}
