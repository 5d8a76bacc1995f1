package businessflow

import (
	"context"

	"github.com/gmwtech/corporate-site/app/dto"
	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// SubsidiaryFlow defines operations for business unit profiles
type SubsidiaryFlow interface {
	CreateSubsidiary(ctx context.Context, req *dto.SubsidiaryCreate, metadata *ClientMetadata) (*dto.SubsidiaryItem, error)
	UpdateSubsidiary(ctx context.Context, id uint, req *dto.SubsidiaryUpdate, metadata *ClientMetadata) (*dto.SubsidiaryItem, error)
	GetSubsidiary(ctx context.Context, id uint) (*dto.SubsidiaryItem, error)
	GetSubsidiaryBySlug(ctx context.Context, slug string, activeOnly bool) (*dto.SubsidiaryItem, error)
	ListSubsidiaries(ctx context.Context, req *dto.ListSubsidiariesRequest, activeOnly bool) (*dto.ListSubsidiariesResponse, error)
	DeleteSubsidiary(ctx context.Context, id uint) error
}

// SubsidiaryFlowImpl implements SubsidiaryFlow
type SubsidiaryFlowImpl struct {
	subsidiaryRepo repository.SubsidiaryRepository
	db             *gorm.DB
}

// NewSubsidiaryFlow creates a new subsidiary flow
func NewSubsidiaryFlow(subsidiaryRepo repository.SubsidiaryRepository, db *gorm.DB) SubsidiaryFlow {
	return &SubsidiaryFlowImpl{
		subsidiaryRepo: subsidiaryRepo,
		db:             db,
	}
}

func (f *SubsidiaryFlowImpl) CreateSubsidiary(ctx context.Context, req *dto.SubsidiaryCreate, metadata *ClientMetadata) (*dto.SubsidiaryItem, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	subType := models.SubsidiaryType(req.SubsidiaryType)
	if !subType.Valid() {
		return nil, NewValidationError("invalid subsidiary type", ErrInvalidSubsidiaryType)
	}

	return runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.SubsidiaryItem, error) {
		exists, err := f.subsidiaryRepo.Exists(ctx, models.SubsidiaryFilter{Slug: &req.Slug})
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, NewConflictError("subsidiary slug already exists", ErrSlugAlreadyExists)
		}

		subsidiary := models.Subsidiary{
			Name:                req.Name,
			Slug:                req.Slug,
			SubsidiaryType:      subType,
			Tagline:             req.Tagline,
			Description:         req.Description,
			DetailedDescription: req.DetailedDescription,
			LogoURL:             req.LogoURL,
			WebsiteURL:          req.WebsiteURL,
			ContactEmail:        req.ContactEmail,
			ContactPhone:        req.ContactPhone,
			FocusAreas:          models.StringList(req.FocusAreas),
			KeyServices:         models.StringList(req.KeyServices),
			IsActive:            req.IsActive,
			SocialLinks:         models.StringMap(req.SocialLinks),
			AdditionalInfo:      models.JSONMap(req.AdditionalInfo),
		}
		if req.SortOrder != nil {
			subsidiary.SortOrder = *req.SortOrder
		}

		if err := f.subsidiaryRepo.Save(ctx, &subsidiary); err != nil {
			if repository.IsDuplicate(err) {
				return nil, NewConflictError("subsidiary slug already exists", ErrSlugAlreadyExists)
			}
			return nil, err
		}

		return ToSubsidiaryItem(&subsidiary), nil
	})
}

func (f *SubsidiaryFlowImpl) UpdateSubsidiary(ctx context.Context, id uint, req *dto.SubsidiaryUpdate, metadata *ClientMetadata) (*dto.SubsidiaryItem, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	if req.SubsidiaryType != nil && !models.SubsidiaryType(*req.SubsidiaryType).Valid() {
		return nil, NewValidationError("invalid subsidiary type", ErrInvalidSubsidiaryType)
	}

	return runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.SubsidiaryItem, error) {
		subsidiary, err := f.subsidiaryRepo.ByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if subsidiary == nil {
			return nil, NewNotFoundError("subsidiary not found", ErrSubsidiaryNotFound)
		}

		if req.Name != nil {
			subsidiary.Name = *req.Name
		}
		if req.SubsidiaryType != nil {
			subsidiary.SubsidiaryType = models.SubsidiaryType(*req.SubsidiaryType)
		}
		if req.Tagline != nil {
			subsidiary.Tagline = *req.Tagline
		}
		if req.Description != nil {
			subsidiary.Description = *req.Description
		}
		if req.DetailedDescription != nil {
			subsidiary.DetailedDescription = *req.DetailedDescription
		}
		if req.LogoURL != nil {
			subsidiary.LogoURL = *req.LogoURL
		}
		if req.WebsiteURL != nil {
			subsidiary.WebsiteURL = *req.WebsiteURL
		}
		if req.ContactEmail != nil {
			subsidiary.ContactEmail = *req.ContactEmail
		}
		if req.ContactPhone != nil {
			subsidiary.ContactPhone = *req.ContactPhone
		}
		if req.FocusAreas != nil {
			subsidiary.FocusAreas = models.StringList(req.FocusAreas)
		}
		if req.KeyServices != nil {
			subsidiary.KeyServices = models.StringList(req.KeyServices)
		}
		if req.IsActive != nil {
			subsidiary.IsActive = req.IsActive
		}
		if req.SortOrder != nil {
			subsidiary.SortOrder = *req.SortOrder
		}
		if req.SocialLinks != nil {
			subsidiary.SocialLinks = models.StringMap(req.SocialLinks)
		}
		if req.AdditionalInfo != nil {
			subsidiary.AdditionalInfo = models.JSONMap(req.AdditionalInfo)
		}

		if err := f.subsidiaryRepo.Update(ctx, subsidiary); err != nil {
			return nil, err
		}

		return ToSubsidiaryItem(subsidiary), nil
	})
}

func (f *SubsidiaryFlowImpl) GetSubsidiary(ctx context.Context, id uint) (*dto.SubsidiaryItem, error) {
	subsidiary, err := f.subsidiaryRepo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subsidiary == nil {
		return nil, NewNotFoundError("subsidiary not found", ErrSubsidiaryNotFound)
	}
	return ToSubsidiaryItem(subsidiary), nil
}

func (f *SubsidiaryFlowImpl) GetSubsidiaryBySlug(ctx context.Context, slug string, activeOnly bool) (*dto.SubsidiaryItem, error) {
	subsidiary, err := f.subsidiaryRepo.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if subsidiary == nil || (activeOnly && !utils.IsTrue(subsidiary.IsActive)) {
		return nil, NewNotFoundError("subsidiary not found", ErrSubsidiaryNotFound)
	}
	return ToSubsidiaryItem(subsidiary), nil
}

func (f *SubsidiaryFlowImpl) ListSubsidiaries(ctx context.Context, req *dto.ListSubsidiariesRequest, activeOnly bool) (*dto.ListSubsidiariesResponse, error) {
	if req == nil {
		req = &dto.ListSubsidiariesRequest{}
	}

	filter := models.SubsidiaryFilter{
		IsActive: req.IsActive,
	}
	if activeOnly {
		filter.IsActive = utils.ToPtr(true)
	}
	if req.SubsidiaryType != nil {
		subType := models.SubsidiaryType(*req.SubsidiaryType)
		if !subType.Valid() {
			return nil, NewValidationError("invalid subsidiary type", ErrInvalidSubsidiaryType)
		}
		filter.SubsidiaryType = &subType
	}

	subsidiaries, err := f.subsidiaryRepo.ByFilter(ctx, filter, "sort_order ASC, id ASC", req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	total, err := f.subsidiaryRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SubsidiaryItem, 0, len(subsidiaries))
	for _, subsidiary := range subsidiaries {
		items = append(items, *ToSubsidiaryItem(subsidiary))
	}

	return &dto.ListSubsidiariesResponse{
		Message: "Subsidiaries retrieved",
		Items:   items,
		Total:   total,
	}, nil
}

func (f *SubsidiaryFlowImpl) DeleteSubsidiary(ctx context.Context, id uint) error {
	subsidiary, err := f.subsidiaryRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if subsidiary == nil {
		return NewNotFoundError("subsidiary not found", ErrSubsidiaryNotFound)
	}
	return f.subsidiaryRepo.Delete(ctx, id)
}

// ToSubsidiaryItem converts a subsidiary model to its API representation
func ToSubsidiaryItem(subsidiary *models.Subsidiary) *dto.SubsidiaryItem {
	return &dto.SubsidiaryItem{
		ID:                  subsidiary.ID,
		Name:                subsidiary.Name,
		Slug:                subsidiary.Slug,
		SubsidiaryType:      subsidiary.SubsidiaryType.String(),
		Tagline:             subsidiary.Tagline,
		Description:         subsidiary.Description,
		DetailedDescription: subsidiary.DetailedDescription,
		LogoURL:             subsidiary.LogoURL,
		WebsiteURL:          subsidiary.WebsiteURL,
		ContactEmail:        subsidiary.ContactEmail,
		ContactPhone:        subsidiary.ContactPhone,
		FocusAreas:          subsidiary.FocusAreas,
		KeyServices:         subsidiary.KeyServices,
		IsActive:            utils.IsTrue(subsidiary.IsActive),
		SortOrder:           subsidiary.SortOrder,
		SocialLinks:         subsidiary.SocialLinks,
		AdditionalInfo:      subsidiary.AdditionalInfo,
		CreatedAt:           formatTime(subsidiary.CreatedAt),
		UpdatedAt:           formatTime(subsidiary.UpdatedAt),
	}
}
