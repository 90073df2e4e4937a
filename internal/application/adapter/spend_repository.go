// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/profitpulse/backend/internal/domain/entity"
)

// SpendRepository defines the interface for ad-spend record persistence.
type SpendRepository interface {
	// SpendInRange retrieves all spend records of a store whose date falls
	// inside [start, end], all channels.
	SpendInRange(ctx context.Context, storeID uuid.UUID, start, end time.Time) ([]entity.SpendRecord, error)

	// ByStore retrieves the full spend history of a store, oldest first.
	ByStore(ctx context.Context, storeID uuid.UUID) ([]entity.SpendRecord, error)

	// CreateBatch inserts a batch of spend records.
	CreateBatch(ctx context.Context, spends []entity.SpendRecord) error

	// DeleteByStore removes all spend records of a store.
	DeleteByStore(ctx context.Context, storeID uuid.UUID) error
}
