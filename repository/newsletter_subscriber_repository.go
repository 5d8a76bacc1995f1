package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gmwtech/corporate-site/models"
	"gorm.io/gorm"
)

// NewsletterSubscriberRepositoryImpl implements NewsletterSubscriberRepository interface.
type NewsletterSubscriberRepositoryImpl struct {
	*BaseRepository[models.NewsletterSubscriber, models.NewsletterSubscriberFilter]
}

// NewNewsletterSubscriberRepository creates a new newsletter subscriber repository.
func NewNewsletterSubscriberRepository(db *gorm.DB) NewsletterSubscriberRepository {
	return &NewsletterSubscriberRepositoryImpl{
		BaseRepository: NewBaseRepository[models.NewsletterSubscriber, models.NewsletterSubscriberFilter](db),
	}
}

// ByEmail retrieves a subscriber by email.
func (r *NewsletterSubscriberRepositoryImpl) ByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	db := r.getDB(ctx)
	var row models.NewsletterSubscriber
	if err := db.Where("email = ?", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ByVerificationToken retrieves a subscriber by its verification token.
func (r *NewsletterSubscriberRepositoryImpl) ByVerificationToken(ctx context.Context, token string) (*models.NewsletterSubscriber, error) {
	if token == "" {
		return nil, fmt.Errorf("verification token is empty")
	}
	db := r.getDB(ctx)
	var row models.NewsletterSubscriber
	if err := db.Where("verification_token = ?", token).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Update persists changes to an existing subscriber.
func (r *NewsletterSubscriberRepositoryImpl) Update(ctx context.Context, subscriber *models.NewsletterSubscriber) error {
	return r.updateEntity(ctx, subscriber)
}

// applyFilter applies filter criteria to a GORM query.
func (r *NewsletterSubscriberRepositoryImpl) applyFilter(query *gorm.DB, filter models.NewsletterSubscriberFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}
	if filter.Interest != nil {
		query = query.Where("interests @> ?", fmt.Sprintf(`["%s"]`, *filter.Interest))
	}
	if filter.SubscribedAfter != nil {
		query = query.Where("subscribed_at > ?", *filter.SubscribedAfter)
	}
	if filter.SubscribedBefore != nil {
		query = query.Where("subscribed_at < ?", *filter.SubscribedBefore)
	}
	return query
}

// ByFilter retrieves subscribers based on filter criteria.
func (r *NewsletterSubscriberRepositoryImpl) ByFilter(ctx context.Context, filter models.NewsletterSubscriberFilter, orderBy string, limit, offset int) ([]*models.NewsletterSubscriber, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.NewsletterSubscriber{}), filter)

	if orderBy == "" {
		orderBy = "subscribed_at DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.NewsletterSubscriber
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of subscribers matching the filter.
func (r *NewsletterSubscriberRepositoryImpl) Count(ctx context.Context, filter models.NewsletterSubscriberFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.NewsletterSubscriber{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any subscriber matches the filter.
func (r *NewsletterSubscriberRepositoryImpl) Exists(ctx context.Context, filter models.NewsletterSubscriberFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
