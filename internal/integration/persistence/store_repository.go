// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/profitpulse/backend/internal/application/adapter"
	"github.com/profitpulse/backend/internal/domain/entity"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
	"github.com/profitpulse/backend/internal/integration/persistence/model"
)

// storeRepository implements the adapter.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository instance.
func NewStoreRepository(db *gorm.DB) adapter.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// FindByOwner retrieves the store owned by the given user.
func (r *storeRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	var storeModel model.StoreModel
	result := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&storeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrStoreNotFound
		}
		return nil, result.Error
	}
	return storeModel.ToEntity(), nil
}

// Create creates a new store.
func (r *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeModel := model.StoreFromEntity(store)
	if err := r.db.WithContext(ctx).Create(storeModel).Error; err != nil {
		return err
	}
	return nil
}

// Update updates an existing store.
func (r *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	storeModel := model.StoreFromEntity(store)
	if err := r.db.WithContext(ctx).Save(storeModel).Error; err != nil {
		return err
	}
	return nil
}
