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

// orderRepository implements the adapter.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance.
func NewOrderRepository(db *gorm.DB) adapter.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// OrdersInRange retrieves all order records of a store inside [start, end].
func (r *orderRepository) OrdersInRange(
	ctx context.Context,
	storeID uuid.UUID,
	start, end time.Time,
) ([]entity.OrderRecord, error) {
	var models []model.OrderModel
	result := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Where("processed_at >= ? AND processed_at <= ?", start, end).
		Order("processed_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query orders: %w", result.Error)
	}

	orders := make([]entity.OrderRecord, len(models))
	for i := range models {
		orders[i] = *models[i].ToEntity()
	}
	return orders, nil
}

// List retrieves a page of a store's orders, newest first.
func (r *orderRepository) List(
	ctx context.Context,
	storeID uuid.UUID,
	filter adapter.OrderListFilter,
	pagination adapter.OrderPagination,
) ([]entity.OrderRecord, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("store_id = ?", storeID)

	if filter.Search != "" {
		query = query.Where("order_name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var models []model.OrderModel
	offset := (pagination.Page - 1) * pagination.Limit
	result := query.
		Order("processed_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&models)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", result.Error)
	}

	orders := make([]entity.OrderRecord, len(models))
	for i := range models {
		orders[i] = *models[i].ToEntity()
	}
	return orders, total, nil
}

// CreateBatch inserts a batch of order records.
func (r *orderRepository) CreateBatch(ctx context.Context, orders []entity.OrderRecord) error {
	if len(orders) == 0 {
		return nil
	}

	models := make([]model.OrderModel, len(orders))
	for i := range orders {
		models[i] = *model.OrderFromEntity(&orders[i])
	}

	if err := r.db.WithContext(ctx).CreateInBatches(models, 200).Error; err != nil {
		return fmt.Errorf("failed to insert orders: %w", err)
	}
	return nil
}

// DeleteByStore removes all order records of a store.
func (r *orderRepository) DeleteByStore(ctx context.Context, storeID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.OrderModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete orders: %w", result.Error)
	}
	return nil
}
