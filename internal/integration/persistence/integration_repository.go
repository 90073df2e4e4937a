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

// integrationRepository implements the adapter.IntegrationRepository interface.
type integrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository creates a new integration repository instance.
func NewIntegrationRepository(db *gorm.DB) adapter.IntegrationRepository {
	return &integrationRepository{
		db: db,
	}
}

// FindByStore retrieves all integrations of a store.
func (r *integrationRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Integration, error) {
	var models []model.IntegrationModel
	result := r.db.WithContext(ctx).Where("store_id = ?", storeID).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	integrations := make([]entity.Integration, len(models))
	for i := range models {
		integrations[i] = *models[i].ToEntity()
	}
	return integrations, nil
}

// FindByStoreAndProvider retrieves a store's integration for one provider.
func (r *integrationRepository) FindByStoreAndProvider(
	ctx context.Context,
	storeID uuid.UUID,
	provider entity.IntegrationProvider,
) (*entity.Integration, error) {
	var integrationModel model.IntegrationModel
	result := r.db.WithContext(ctx).
		Where("store_id = ? AND provider = ?", storeID, string(provider)).
		First(&integrationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIntegrationNotFound
		}
		return nil, result.Error
	}
	return integrationModel.ToEntity(), nil
}

// Create creates a new integration.
func (r *integrationRepository) Create(ctx context.Context, integration *entity.Integration) error {
	integrationModel := model.IntegrationFromEntity(integration)
	if err := r.db.WithContext(ctx).Create(integrationModel).Error; err != nil {
		return err
	}
	return nil
}

// Update updates an existing integration.
func (r *integrationRepository) Update(ctx context.Context, integration *entity.Integration) error {
	integrationModel := model.IntegrationFromEntity(integration)
	if err := r.db.WithContext(ctx).Save(integrationModel).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes an integration.
func (r *integrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IntegrationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
