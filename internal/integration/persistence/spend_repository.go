// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/profitpulse/backend/internal/application/adapter"
	"github.com/profitpulse/backend/internal/domain/entity"
	"github.com/profitpulse/backend/internal/integration/persistence/model"
)

// spendRepository implements the adapter.SpendRepository interface.
type spendRepository struct {
	db *gorm.DB
}

// NewSpendRepository creates a new spend repository instance.
func NewSpendRepository(db *gorm.DB) adapter.SpendRepository {
	return &spendRepository{
		db: db,
	}
}

// SpendInRange retrieves all spend records of a store inside [start, end].
func (r *spendRepository) SpendInRange(
	ctx context.Context,
	storeID uuid.UUID,
	start, end time.Time,
) ([]entity.SpendRecord, error) {
	var models []model.SpendModel
	result := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query ad spend: %w", result.Error)
	}

	return toSpendEntities(models), nil
}

// ByStore retrieves the full spend history of a store, oldest first.
func (r *spendRepository) ByStore(ctx context.Context, storeID uuid.UUID) ([]entity.SpendRecord, error) {
	var models []model.SpendModel
	result := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query ad spend: %w", result.Error)
	}

	return toSpendEntities(models), nil
}

// CreateBatch inserts a batch of spend records.
func (r *spendRepository) CreateBatch(ctx context.Context, spends []entity.SpendRecord) error {
	if len(spends) == 0 {
		return nil
	}

	models := make([]model.SpendModel, len(spends))
	for i := range spends {
		models[i] = *model.SpendFromEntity(&spends[i])
	}

	if err := r.db.WithContext(ctx).CreateInBatches(models, 200).Error; err != nil {
		return fmt.Errorf("failed to insert ad spend: %w", err)
	}
	return nil
}

// DeleteByStore removes all spend records of a store.
func (r *spendRepository) DeleteByStore(ctx context.Context, storeID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.SpendModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete ad spend: %w", result.Error)
	}
	return nil
}

// toSpendEntities converts spend models to domain entities.
func toSpendEntities(models []model.SpendModel) []entity.SpendRecord {
	spends := make([]entity.SpendRecord, len(models))
	for i := range models {
		spends[i] = *models[i].ToEntity()
	}
	return spends
}
