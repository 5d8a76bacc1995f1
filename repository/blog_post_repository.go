package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gmwtech/corporate-site/models"
	"gorm.io/gorm"
)

// BlogPostRepositoryImpl implements BlogPostRepository interface.
type BlogPostRepositoryImpl struct {
	*BaseRepository[models.BlogPost, models.BlogPostFilter]
}

// NewBlogPostRepository creates a new blog post repository.
func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &BlogPostRepositoryImpl{
		BaseRepository: NewBaseRepository[models.BlogPost, models.BlogPostFilter](db),
	}
}

// BySlug retrieves a blog post by its slug.
func (r *BlogPostRepositoryImpl) BySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	db := r.getDB(ctx)
	var row models.BlogPost
	if err := db.Where("slug = ?", slug).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// IncrementViewCount bumps the view counter without touching updated_at.
func (r *BlogPostRepositoryImpl) IncrementViewCount(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	err := db.Model(&models.BlogPost{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment view count for post %d: %w", id, err)
	}
	return nil
}

// Update persists changes to an existing blog post.
func (r *BlogPostRepositoryImpl) Update(ctx context.Context, post *models.BlogPost) error {
	return r.updateEntity(ctx, post)
}

// Delete removes a blog post by ID.
func (r *BlogPostRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, id)
}

// applyFilter applies filter criteria to a GORM query.
func (r *BlogPostRepositoryImpl) applyFilter(query *gorm.DB, filter models.BlogPostFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Slug != nil {
		query = query.Where("slug = ?", *filter.Slug)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
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
	if filter.Tag != nil {
		query = query.Where("tags @> ?", fmt.Sprintf(`["%s"]`, *filter.Tag))
	}
	if filter.PublishedAfter != nil {
		query = query.Where("published_at > ?", *filter.PublishedAfter)
	}
	if filter.PublishedBefore != nil {
		query = query.Where("published_at < ?", *filter.PublishedBefore)
	}
	return query
}

// ByFilter retrieves blog posts based on filter criteria.
func (r *BlogPostRepositoryImpl) ByFilter(ctx context.Context, filter models.BlogPostFilter, orderBy string, limit, offset int) ([]*models.BlogPost, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.BlogPost{}), filter)

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

	var rows []*models.BlogPost
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of blog posts matching the filter.
func (r *BlogPostRepositoryImpl) Count(ctx context.Context, filter models.BlogPostFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.BlogPost{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any blog post matches the filter.
func (r *BlogPostRepositoryImpl) Exists(ctx context.Context, filter models.BlogPostFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
