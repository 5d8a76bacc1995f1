package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gmwtech/corporate-site/models"
	"gorm.io/gorm"
)

// SiteAnalyticsRepositoryImpl implements SiteAnalyticsRepository interface.
type SiteAnalyticsRepositoryImpl struct {
	*BaseRepository[models.SiteAnalytics, models.SiteAnalyticsFilter]
}

// NewSiteAnalyticsRepository creates a new site analytics repository.
func NewSiteAnalyticsRepository(db *gorm.DB) SiteAnalyticsRepository {
	return &SiteAnalyticsRepositoryImpl{
		BaseRepository: NewBaseRepository[models.SiteAnalytics, models.SiteAnalyticsFilter](db),
	}
}

// ByDate retrieves the snapshot for a calendar date.
func (r *SiteAnalyticsRepositoryImpl) ByDate(ctx context.Context, date time.Time) (*models.SiteAnalytics, error) {
	db := r.getDB(ctx)
	var row models.SiteAnalytics
	day := date.UTC().Truncate(24 * time.Hour)
	if err := db.Where("date = ?", day).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// UpsertByDate writes the snapshot for its date, replacing any previous row.
// One row per date is kept by the flow; there is no schema-level uniqueness.
func (r *SiteAnalyticsRepositoryImpl) UpsertByDate(ctx context.Context, snapshot *models.SiteAnalytics) error {
	snapshot.Date = snapshot.Date.UTC().Truncate(24 * time.Hour)

	existing, err := r.ByDate(ctx, snapshot.Date)
	if err != nil {
		return err
	}
	if existing != nil {
		snapshot.ID = existing.ID
		snapshot.CreatedAt = existing.CreatedAt
		return r.updateEntity(ctx, snapshot)
	}
	return r.Save(ctx, snapshot)
}

// applyFilter applies filter criteria to a GORM query.
func (r *SiteAnalyticsRepositoryImpl) applyFilter(query *gorm.DB, filter models.SiteAnalyticsFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Date != nil {
		query = query.Where("date = ?", filter.Date.UTC().Truncate(24*time.Hour))
	}
	if filter.DateAfter != nil {
		query = query.Where("date > ?", *filter.DateAfter)
	}
	if filter.DateBefore != nil {
		query = query.Where("date < ?", *filter.DateBefore)
	}
	return query
}

// ByFilter retrieves snapshots based on filter criteria.
func (r *SiteAnalyticsRepositoryImpl) ByFilter(ctx context.Context, filter models.SiteAnalyticsFilter, orderBy string, limit, offset int) ([]*models.SiteAnalytics, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.SiteAnalytics{}), filter)

	if orderBy == "" {
		orderBy = "date DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.SiteAnalytics
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of snapshots matching the filter.
func (r *SiteAnalyticsRepositoryImpl) Count(ctx context.Context, filter models.SiteAnalyticsFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.SiteAnalytics{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any snapshot matches the filter.
func (r *SiteAnalyticsRepositoryImpl) Exists(ctx context.Context, filter models.SiteAnalyticsFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
