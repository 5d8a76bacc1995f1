package repository

import (
	"context"
	"errors"

	"github.com/gmwtech/corporate-site/models"
	"gorm.io/gorm"
)

// ServiceRepositoryImpl implements ServiceRepository interface.
type ServiceRepositoryImpl struct {
	*BaseRepository[models.Service, models.ServiceFilter]
}

// NewServiceRepository creates a new service repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Service, models.ServiceFilter](db),
	}
}

// BySlug retrieves a service by its slug.
func (r *ServiceRepositoryImpl) BySlug(ctx context.Context, slug string) (*models.Service, error) {
	db := r.getDB(ctx)
	var row models.Service
	if err := db.Where("slug = ?", slug).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Update persists changes to an existing service.
func (r *ServiceRepositoryImpl) Update(ctx context.Context, service *models.Service) error {
	return r.updateEntity(ctx, service)
}

// Delete removes a service by ID.
func (r *ServiceRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, id)
}

// applyFilter applies filter criteria to a GORM query.
func (r *ServiceRepositoryImpl) applyFilter(query *gorm.DB, filter models.ServiceFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Slug != nil {
		query = query.Where("slug = ?", *filter.Slug)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.IsFeatured != nil {
		query = query.Where("is_featured = ?", *filter.IsFeatured)
	}
	return query
}

// ByFilter retrieves services based on filter criteria.
func (r *ServiceRepositoryImpl) ByFilter(ctx context.Context, filter models.ServiceFilter, orderBy string, limit, offset int) ([]*models.Service, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Service{}), filter)

	if orderBy == "" {
		orderBy = "sort_order ASC, id ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.Service
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of services matching the filter.
func (r *ServiceRepositoryImpl) Count(ctx context.Context, filter models.ServiceFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Service{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any service matches the filter.
func (r *ServiceRepositoryImpl) Exists(ctx context.Context, filter models.ServiceFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
