package repository

import (
	"context"
	"errors"

	"github.com/gmwtech/corporate-site/models"
	"gorm.io/gorm"
)

// UserRepositoryImpl implements UserRepository interface.
type UserRepositoryImpl struct {
	*BaseRepository[models.User, models.UserFilter]
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{
		BaseRepository: NewBaseRepository[models.User, models.UserFilter](db),
	}
}

// ByUsername retrieves a user by username.
func (r *UserRepositoryImpl) ByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.firstWhere(ctx, "username = ?", username)
}

// ByEmail retrieves a user by email.
func (r *UserRepositoryImpl) ByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.firstWhere(ctx, "email = ?", email)
}

// ByUsernameOrEmail retrieves a user whose username or email matches identifier.
func (r *UserRepositoryImpl) ByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	return r.firstWhere(ctx, "username = ? OR email = ?", identifier, identifier)
}

func (r *UserRepositoryImpl) firstWhere(ctx context.Context, query string, args ...any) (*models.User, error) {
	db := r.getDB(ctx)
	var row models.User
	if err := db.Where(query, args...).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Update persists changes to an existing user.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *models.User) error {
	return r.updateEntity(ctx, user)
}

// applyFilter applies filter criteria to a GORM query.
func (r *UserRepositoryImpl) applyFilter(query *gorm.DB, filter models.UserFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Username != nil {
		query = query.Where("username = ?", *filter.Username)
	}
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsAdmin != nil {
		query = query.Where("is_admin = ?", *filter.IsAdmin)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves users based on filter criteria.
func (r *UserRepositoryImpl) ByFilter(ctx context.Context, filter models.UserFilter, orderBy string, limit, offset int) ([]*models.User, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.User{}), filter)

	if orderBy == "" {
		orderBy = "id DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.User
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of users matching the filter.
func (r *UserRepositoryImpl) Count(ctx context.Context, filter models.UserFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.User{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any user matches the filter.
func (r *UserRepositoryImpl) Exists(ctx context.Context, filter models.UserFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
