package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gmwtech/corporate-site/models"
	"gorm.io/gorm"
)

// PageRepositoryImpl implements PageRepository interface.
type PageRepositoryImpl struct {
	*BaseRepository[models.Page, models.PageFilter]
}

// NewPageRepository creates a new page repository.
func NewPageRepository(db *gorm.DB) PageRepository {
	return &PageRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Page, models.PageFilter](db),
	}
}

// BySlug retrieves a page by its slug.
func (r *PageRepositoryImpl) BySlug(ctx context.Context, slug string) (*models.Page, error) {
	db := r.getDB(ctx)
	var row models.Page
	if err := db.Where("slug = ?", slug).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Homepage retrieves the page currently flagged as homepage, if any.
func (r *PageRepositoryImpl) Homepage(ctx context.Context) (*models.Page, error) {
	db := r.getDB(ctx)
	var row models.Page
	if err := db.Where("is_homepage = ?", true).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ClearHomepage drops the homepage flag everywhere. Called inside the same
// transaction that sets the flag on a new page, keeping the one-homepage
// invariant without a schema-level constraint.
func (r *PageRepositoryImpl) ClearHomepage(ctx context.Context) error {
	db := r.getDB(ctx)
	err := db.Model(&models.Page{}).Where("is_homepage = ?", true).Update("is_homepage", false).Error
	if err != nil {
		return fmt.Errorf("failed to clear homepage flag: %w", err)
	}
	return nil
}

// Update persists changes to an existing page.
func (r *PageRepositoryImpl) Update(ctx context.Context, page *models.Page) error {
	return r.updateEntity(ctx, page)
}

// Delete removes a page by ID.
func (r *PageRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, id)
}

// applyFilter applies filter criteria to a GORM query.
func (r *PageRepositoryImpl) applyFilter(query *gorm.DB, filter models.PageFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Slug != nil {
		query = query.Where("slug = ?", *filter.Slug)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.IsHomepage != nil {
		query = query.Where("is_homepage = ?", *filter.IsHomepage)
	}
	return query
}

// ByFilter retrieves pages based on filter criteria.
func (r *PageRepositoryImpl) ByFilter(ctx context.Context, filter models.PageFilter, orderBy string, limit, offset int) ([]*models.Page, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Page{}), filter)

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

	var rows []*models.Page
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of pages matching the filter.
func (r *PageRepositoryImpl) Count(ctx context.Context, filter models.PageFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Page{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any page matches the filter.
func (r *PageRepositoryImpl) Exists(ctx context.Context, filter models.PageFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
