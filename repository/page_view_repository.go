package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gmwtech/corporate-site/models"
	"gorm.io/gorm"
)

// PageViewRepositoryImpl implements PageViewRepository interface.
type PageViewRepositoryImpl struct {
	*BaseRepository[models.PageView, models.PageViewFilter]
}

// NewPageViewRepository creates a new page view repository.
func NewPageViewRepository(db *gorm.DB) PageViewRepository {
	return &PageViewRepositoryImpl{
		BaseRepository: NewBaseRepository[models.PageView, models.PageViewFilter](db),
	}
}

// CountUniqueSessions returns the number of distinct sessions matching the filter.
func (r *PageViewRepositoryImpl) CountUniqueSessions(ctx context.Context, filter models.PageViewFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.PageView{}), filter)
	var count int64
	err := query.Where("session_id <> ''").Distinct("session_id").Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unique sessions: %w", err)
	}
	return count, nil
}

// PathStats aggregates view rows for a single path since the given time.
func (r *PageViewRepositoryImpl) PathStats(ctx context.Context, pagePath string, since time.Time) (*PathStats, error) {
	db := r.getDB(ctx)

	stats := PathStats{PagePath: pagePath}
	row := db.Model(&models.PageView{}).
		Select(
			"COUNT(*) AS views",
			"COUNT(DISTINCT NULLIF(session_id, '')) AS unique_visitors",
			"COALESCE(SUM(time_on_page), 0) AS total_seconds",
			"COUNT(time_on_page) AS timed_views",
			"COUNT(*) FILTER (WHERE bounce) AS bounces",
			"COUNT(*) FILTER (WHERE conversion) AS conversions",
		).
		Where("page_path = ? AND viewed_at >= ?", pagePath, since).
		Row()
	err := row.Scan(&stats.Views, &stats.UniqueVisitors, &stats.TotalSeconds,
		&stats.TimedViews, &stats.Bounces, &stats.Conversions)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate views for %s: %w", pagePath, err)
	}

	return &stats, nil
}

// TopPaths returns the most viewed paths since the given time.
func (r *PageViewRepositoryImpl) TopPaths(ctx context.Context, since time.Time, limit int) ([]PathCount, error) {
	db := r.getDB(ctx)

	var rows []PathCount
	err := db.Model(&models.PageView{}).
		Select("page_path", "COUNT(*) AS views").
		Where("viewed_at >= ?", since).
		Group("page_path").
		Order("views DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank page paths: %w", err)
	}
	return rows, nil
}

// applyFilter applies filter criteria to a GORM query.
func (r *PageViewRepositoryImpl) applyFilter(query *gorm.DB, filter models.PageViewFilter) *gorm.DB {
	if filter.PagePath != nil {
		query = query.Where("page_path = ?", *filter.PagePath)
	}
	if filter.SessionID != nil {
		query = query.Where("session_id = ?", *filter.SessionID)
	}
	if filter.DeviceType != nil {
		query = query.Where("device_type = ?", *filter.DeviceType)
	}
	if filter.Country != nil {
		query = query.Where("country = ?", *filter.Country)
	}
	if filter.ViewedAfter != nil {
		query = query.Where("viewed_at >= ?", *filter.ViewedAfter)
	}
	if filter.ViewedBefore != nil {
		query = query.Where("viewed_at < ?", *filter.ViewedBefore)
	}
	if filter.Bounce != nil {
		query = query.Where("bounce = ?", *filter.Bounce)
	}
	if filter.Conversion != nil {
		query = query.Where("conversion = ?", *filter.Conversion)
	}
	return query
}

// ByFilter retrieves page views based on filter criteria.
func (r *PageViewRepositoryImpl) ByFilter(ctx context.Context, filter models.PageViewFilter, orderBy string, limit, offset int) ([]*models.PageView, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.PageView{}), filter)

	if orderBy == "" {
		orderBy = "viewed_at DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.PageView
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of page views matching the filter.
func (r *PageViewRepositoryImpl) Count(ctx context.Context, filter models.PageViewFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.PageView{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any page view matches the filter.
func (r *PageViewRepositoryImpl) Exists(ctx context.Context, filter models.PageViewFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
