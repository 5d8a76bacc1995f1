package repository

import (
	"context"
	"time"

	"github.com/gmwtech/corporate-site/models"
	"gorm.io/gorm"
)

// ContactInquiryRepositoryImpl implements ContactInquiryRepository interface.
type ContactInquiryRepositoryImpl struct {
	*BaseRepository[models.ContactInquiry, models.ContactInquiryFilter]
}

// NewContactInquiryRepository creates a new contact inquiry repository.
func NewContactInquiryRepository(db *gorm.DB) ContactInquiryRepository {
	return &ContactInquiryRepositoryImpl{
		BaseRepository: NewBaseRepository[models.ContactInquiry, models.ContactInquiryFilter](db),
	}
}

// Update persists changes to an existing inquiry.
func (r *ContactInquiryRepositoryImpl) Update(ctx context.Context, inquiry *models.ContactInquiry) error {
	return r.updateEntity(ctx, inquiry)
}

// CountCreatedSince returns the number of inquiries received at or after the given time.
func (r *ContactInquiryRepositoryImpl) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	err := db.Model(&models.ContactInquiry{}).Where("created_at >= ?", since).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter criteria to a GORM query.
func (r *ContactInquiryRepositoryImpl) applyFilter(query *gorm.DB, filter models.ContactInquiryFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.Source != nil {
		query = query.Where("source = ?", *filter.Source)
	}
	if filter.ServiceInterest != nil {
		query = query.Where("service_interest = ?", *filter.ServiceInterest)
	}
	if filter.SubsidiaryInterest != nil {
		query = query.Where("subsidiary_interest = ?", *filter.SubsidiaryInterest)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves inquiries based on filter criteria.
func (r *ContactInquiryRepositoryImpl) ByFilter(ctx context.Context, filter models.ContactInquiryFilter, orderBy string, limit, offset int) ([]*models.ContactInquiry, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.ContactInquiry{}), filter)

	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.ContactInquiry
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of inquiries matching the filter.
func (r *ContactInquiryRepositoryImpl) Count(ctx context.Context, filter models.ContactInquiryFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.ContactInquiry{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any inquiry matches the filter.
func (r *ContactInquiryRepositoryImpl) Exists(ctx context.Context, filter models.ContactInquiryFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
