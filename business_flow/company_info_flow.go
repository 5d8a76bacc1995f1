package businessflow

import (
	"context"

	"github.com/gmwtech/corporate-site/app/dto"
	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	maxLatitude  = decimal.New(90, 0)
	maxLongitude = decimal.New(180, 0)
)

// CompanyInfoFlow defines operations for the singleton company profile
type CompanyInfoFlow interface {
	GetCompanyInfo(ctx context.Context) (*dto.CompanyInfoResponse, error)
	UpdateCompanyInfo(ctx context.Context, req *dto.CompanyInfoUpdate, metadata *ClientMetadata) (*dto.CompanyInfoResponse, error)
}

// CompanyInfoFlowImpl implements CompanyInfoFlow
type CompanyInfoFlowImpl struct {
	companyRepo repository.CompanyInfoRepository
	db          *gorm.DB
}

// NewCompanyInfoFlow creates a new company info flow
func NewCompanyInfoFlow(companyRepo repository.CompanyInfoRepository, db *gorm.DB) CompanyInfoFlow {
	return &CompanyInfoFlowImpl{
		companyRepo: companyRepo,
		db:          db,
	}
}

func (f *CompanyInfoFlowImpl) GetCompanyInfo(ctx context.Context) (*dto.CompanyInfoResponse, error) {
	info, err := f.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, NewNotFoundError("company profile not found", ErrCompanyProfileNotFound)
	}

	return &dto.CompanyInfoResponse{
		Message: "Company profile retrieved",
		Info:    *ToCompanyInfoItem(info),
	}, nil
}

func (f *CompanyInfoFlowImpl) UpdateCompanyInfo(ctx context.Context, req *dto.CompanyInfoUpdate, metadata *ClientMetadata) (*dto.CompanyInfoResponse, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	latitude, err := parseCoordinate(req.Latitude, maxLatitude)
	if err != nil {
		return nil, err
	}
	longitude, err := parseCoordinate(req.Longitude, maxLongitude)
	if err != nil {
		return nil, err
	}

	return runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.CompanyInfoResponse, error) {
		info, err := f.companyRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		if info == nil {
			info = &models.CompanyInfo{ID: utils.CompanyInfoID}
		}

		if req.CompanyName != nil {
			info.CompanyName = *req.CompanyName
		}
		if req.Tagline != nil {
			info.Tagline = *req.Tagline
		}
		if req.Mission != nil {
			info.Mission = *req.Mission
		}
		if req.Vision != nil {
			info.Vision = *req.Vision
		}
		if req.Description != nil {
			info.Description = *req.Description
		}
		if req.FoundedYear != nil {
			info.FoundedYear = req.FoundedYear
		}
		if req.PrimaryEmail != nil {
			info.PrimaryEmail = *req.PrimaryEmail
		}
		if req.PrimaryPhone != nil {
			info.PrimaryPhone = *req.PrimaryPhone
		}
		if req.SecondaryPhone != nil {
			info.SecondaryPhone = *req.SecondaryPhone
		}
		if req.AddressLine1 != nil {
			info.AddressLine1 = *req.AddressLine1
		}
		if req.AddressLine2 != nil {
			info.AddressLine2 = *req.AddressLine2
		}
		if req.City != nil {
			info.City = *req.City
		}
		if req.State != nil {
			info.State = *req.State
		}
		if req.Country != nil {
			info.Country = *req.Country
		}
		if req.PostalCode != nil {
			info.PostalCode = *req.PostalCode
		}
		if latitude != nil {
			info.Latitude = latitude
		}
		if longitude != nil {
			info.Longitude = longitude
		}
		if req.SocialLinks != nil {
			info.SocialLinks = models.StringMap(req.SocialLinks)
		}
		if req.BusinessHours != nil {
			info.BusinessHours = models.StringMap(req.BusinessHours)
		}
		if req.Certifications != nil {
			info.Certifications = models.StringList(req.Certifications)
		}
		if req.Awards != nil {
			info.Awards = models.StringList(req.Awards)
		}

		if err := f.companyRepo.Upsert(ctx, info); err != nil {
			return nil, err
		}

		return &dto.CompanyInfoResponse{
			Message: "Company profile updated",
			Info:    *ToCompanyInfoItem(info),
		}, nil
	})
}

// parseCoordinate parses a decimal-string coordinate and checks |value| <= bound
func parseCoordinate(raw *string, bound decimal.Decimal) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	value, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, NewValidationError("coordinate is not a valid decimal", ErrInvalidCoordinates)
	}
	if value.Abs().GreaterThan(bound) {
		return nil, NewValidationError("latitude or longitude is out of range", ErrInvalidCoordinates)
	}
	return &value, nil
}

// ToCompanyInfoItem converts the company profile model to its API representation
func ToCompanyInfoItem(info *models.CompanyInfo) *dto.CompanyInfoItem {
	return &dto.CompanyInfoItem{
		CompanyName:    info.CompanyName,
		Tagline:        info.Tagline,
		Mission:        info.Mission,
		Vision:         info.Vision,
		Description:    info.Description,
		FoundedYear:    info.FoundedYear,
		PrimaryEmail:   info.PrimaryEmail,
		PrimaryPhone:   info.PrimaryPhone,
		SecondaryPhone: info.SecondaryPhone,
		AddressLine1:   info.AddressLine1,
		AddressLine2:   info.AddressLine2,
		City:           info.City,
		State:          info.State,
		Country:        info.Country,
		PostalCode:     info.PostalCode,
		Latitude:       decimalPtrString(info.Latitude),
		Longitude:      decimalPtrString(info.Longitude),
		SocialLinks:    info.SocialLinks,
		BusinessHours:  info.BusinessHours,
		Certifications: info.Certifications,
		Awards:         info.Awards,
		UpdatedAt:      formatTime(info.UpdatedAt),
	}
}
