// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/profitpulse/backend/internal/domain/entity"
)

// OrderListFilter holds optional filters for listing orders.
type OrderListFilter struct {
	// Search matches against the display order name, e.g. "#1024".
	Search string
}

// OrderPagination holds pagination parameters for listing orders.
type OrderPagination struct {
	Page  int
	Limit int
}

// OrderRepository defines the interface for order record persistence.
type OrderRepository interface {
	// OrdersInRange retrieves all order records of a store whose processed-at
	// timestamp falls inside [start, end], any financial status.
	OrdersInRange(ctx context.Context, storeID uuid.UUID, start, end time.Time) ([]entity.OrderRecord, error)

	// List retrieves a page of a store's orders, newest first, and the total
	// count matching the filter.
	List(ctx context.Context, storeID uuid.UUID, filter OrderListFilter, pagination OrderPagination) ([]entity.OrderRecord, int64, error)

	// CreateBatch inserts a batch of order records.
	CreateBatch(ctx context.Context, orders []entity.OrderRecord) error

	// DeleteByStore removes all order records of a store.
	DeleteByStore(ctx context.Context, storeID uuid.UUID) error
}
