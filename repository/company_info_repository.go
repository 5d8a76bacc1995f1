package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// CompanyInfoRepositoryImpl implements CompanyInfoRepository interface.
// The profile is an explicitly keyed singleton: all reads and writes target
// the row with utils.CompanyInfoID.
type CompanyInfoRepositoryImpl struct {
	db *gorm.DB
}

// NewCompanyInfoRepository creates a new company info repository.
func NewCompanyInfoRepository(db *gorm.DB) CompanyInfoRepository {
	return &CompanyInfoRepositoryImpl{db: db}
}

func (r *CompanyInfoRepositoryImpl) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(TxContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db
}

// Get retrieves the singleton company profile, or nil if it was never written.
func (r *CompanyInfoRepositoryImpl) Get(ctx context.Context) (*models.CompanyInfo, error) {
	db := r.getDB(ctx)
	var row models.CompanyInfo
	if err := db.First(&row, utils.CompanyInfoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Upsert writes the singleton company profile under the fixed identifier.
func (r *CompanyInfoRepositoryImpl) Upsert(ctx context.Context, info *models.CompanyInfo) error {
	db := r.getDB(ctx)
	info.ID = utils.CompanyInfoID
	if err := db.Save(info).Error; err != nil {
		return fmt.Errorf("failed to upsert company info: %w", err)
	}
	return nil
}
