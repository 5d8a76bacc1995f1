package repository

import (
	"context"
	"errors"

	"github.com/gmwtech/corporate-site/models"
	"gorm.io/gorm"
)

// SiteConfigurationRepositoryImpl implements SiteConfigurationRepository interface.
type SiteConfigurationRepositoryImpl struct {
	*BaseRepository[models.SiteConfiguration, models.SiteConfigurationFilter]
}

// NewSiteConfigurationRepository creates a new site configuration repository.
func NewSiteConfigurationRepository(db *gorm.DB) SiteConfigurationRepository {
	return &SiteConfigurationRepositoryImpl{
		BaseRepository: NewBaseRepository[models.SiteConfiguration, models.SiteConfigurationFilter](db),
	}
}

// ByKey retrieves a setting by its unique key.
func (r *SiteConfigurationRepositoryImpl) ByKey(ctx context.Context, key string) (*models.SiteConfiguration, error) {
	db := r.getDB(ctx)
	var row models.SiteConfiguration
	if err := db.Where("key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListPublic retrieves all settings exposable to the frontend.
func (r *SiteConfigurationRepositoryImpl) ListPublic(ctx context.Context) ([]*models.SiteConfiguration, error) {
	db := r.getDB(ctx)
	var rows []*models.SiteConfiguration
	err := db.Where("is_public = ?", true).Order("key ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update persists changes to an existing setting.
func (r *SiteConfigurationRepositoryImpl) Update(ctx context.Context, setting *models.SiteConfiguration) error {
	return r.updateEntity(ctx, setting)
}

// Delete removes a setting by ID.
func (r *SiteConfigurationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, id)
}

// applyFilter applies filter criteria to a GORM query.
func (r *SiteConfigurationRepositoryImpl) applyFilter(query *gorm.DB, filter models.SiteConfigurationFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Key != nil {
		query = query.Where("key = ?", *filter.Key)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}
	return query
}

// ByFilter retrieves settings based on filter criteria.
func (r *SiteConfigurationRepositoryImpl) ByFilter(ctx context.Context, filter models.SiteConfigurationFilter, orderBy string, limit, offset int) ([]*models.SiteConfiguration, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.SiteConfiguration{}), filter)

	if orderBy == "" {
		orderBy = "key ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.SiteConfiguration
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of settings matching the filter.
func (r *SiteConfigurationRepositoryImpl) Count(ctx context.Context, filter models.SiteConfigurationFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.SiteConfiguration{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any setting matches the filter.
func (r *SiteConfigurationRepositoryImpl) Exists(ctx context.Context, filter models.SiteConfigurationFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
