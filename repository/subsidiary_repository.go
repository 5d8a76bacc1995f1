package repository

import (
	"context"
	"errors"

	"github.com/gmwtech/corporate-site/models"
	"gorm.io/gorm"
)

// SubsidiaryRepositoryImpl implements SubsidiaryRepository interface.
type SubsidiaryRepositoryImpl struct {
	*BaseRepository[models.Subsidiary, models.SubsidiaryFilter]
}

// NewSubsidiaryRepository creates a new subsidiary repository.
func NewSubsidiaryRepository(db *gorm.DB) SubsidiaryRepository {
	return &SubsidiaryRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Subsidiary, models.SubsidiaryFilter](db),
	}
}

// BySlug retrieves a subsidiary by its slug.
func (r *SubsidiaryRepositoryImpl) BySlug(ctx context.Context, slug string) (*models.Subsidiary, error) {
	db := r.getDB(ctx)
	var row models.Subsidiary
	if err := db.Where("slug = ?", slug).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Update persists changes to an existing subsidiary.
func (r *SubsidiaryRepositoryImpl) Update(ctx context.Context, subsidiary *models.Subsidiary) error {
	return r.updateEntity(ctx, subsidiary)
}

// Delete removes a subsidiary by ID.
func (r *SubsidiaryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, id)
}

// applyFilter applies filter criteria to a GORM query.
func (r *SubsidiaryRepositoryImpl) applyFilter(query *gorm.DB, filter models.SubsidiaryFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Slug != nil {
		query = query.Where("slug = ?", *filter.Slug)
	}
	if filter.SubsidiaryType != nil {
		query = query.Where("subsidiary_type = ?", *filter.SubsidiaryType)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	return query
}

// ByFilter retrieves subsidiaries based on filter criteria.
func (r *SubsidiaryRepositoryImpl) ByFilter(ctx context.Context, filter models.SubsidiaryFilter, orderBy string, limit, offset int) ([]*models.Subsidiary, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Subsidiary{}), filter)

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

	var rows []*models.Subsidiary
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of subsidiaries matching the filter.
func (r *SubsidiaryRepositoryImpl) Count(ctx context.Context, filter models.SubsidiaryFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Subsidiary{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any subsidiary matches the filter.
func (r *SubsidiaryRepositoryImpl) Exists(ctx context.Context, filter models.SubsidiaryFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
