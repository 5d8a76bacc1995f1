package businessflow

import (
	"context"

	"github.com/gmwtech/corporate-site/app/dto"
	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// ServiceFlow defines operations for service listings
type ServiceFlow interface {
	CreateService(ctx context.Context, req *dto.ServiceCreate, metadata *ClientMetadata) (*dto.ServiceItem, error)
	UpdateService(ctx context.Context, id uint, req *dto.ServiceUpdate, metadata *ClientMetadata) (*dto.ServiceItem, error)
	GetService(ctx context.Context, id uint) (*dto.ServiceItem, error)
	GetServiceBySlug(ctx context.Context, slug string, publishedOnly bool) (*dto.ServiceItem, error)
	ListServices(ctx context.Context, req *dto.ListServicesRequest, publishedOnly bool) (*dto.ListServicesResponse, error)
	DeleteService(ctx context.Context, id uint) error
}

// ServiceFlowImpl implements ServiceFlow
type ServiceFlowImpl struct {
	serviceRepo repository.ServiceRepository
	db          *gorm.DB
}

// NewServiceFlow creates a new service flow
func NewServiceFlow(serviceRepo repository.ServiceRepository, db *gorm.DB) ServiceFlow {
	return &ServiceFlowImpl{
		serviceRepo: serviceRepo,
		db:          db,
	}
}

func (f *ServiceFlowImpl) CreateService(ctx context.Context, req *dto.ServiceCreate, metadata *ClientMetadata) (*dto.ServiceItem, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	category := models.ServiceCategory(req.Category)
	if !category.Valid() {
		return nil, NewValidationError("invalid service category", ErrInvalidCategory)
	}

	status := models.ContentStatusPublished
	if req.Status != nil {
		status = models.ContentStatus(*req.Status)
		if !status.Valid() {
			return nil, NewValidationError("invalid service status", ErrInvalidStatus)
		}
	}

	return runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.ServiceItem, error) {
		exists, err := f.serviceRepo.Exists(ctx, models.ServiceFilter{Slug: &req.Slug})
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, NewConflictError("service slug already exists", ErrSlugAlreadyExists)
		}

		service := models.Service{
			Title:               req.Title,
			Slug:                req.Slug,
			Description:         req.Description,
			DetailedDescription: req.DetailedDescription,
			Category:            category,
			Icon:                req.Icon,
			ImageURL:            req.ImageURL,
			Features:            models.StringList(req.Features),
			Examples:            models.StringList(req.Examples),
			IsFeatured:          req.IsFeatured,
			Status:              status,
			ExtraData:           models.JSONMap(req.ExtraData),
		}
		if req.SortOrder != nil {
			service.SortOrder = *req.SortOrder
		}

		if err := f.serviceRepo.Save(ctx, &service); err != nil {
			if repository.IsDuplicate(err) {
				return nil, NewConflictError("service slug already exists", ErrSlugAlreadyExists)
			}
			return nil, err
		}

		return ToServiceItem(&service), nil
	})
}

func (f *ServiceFlowImpl) UpdateService(ctx context.Context, id uint, req *dto.ServiceUpdate, metadata *ClientMetadata) (*dto.ServiceItem, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	if req.Category != nil && !models.ServiceCategory(*req.Category).Valid() {
		return nil, NewValidationError("invalid service category", ErrInvalidCategory)
	}
	if req.Status != nil && !models.ContentStatus(*req.Status).Valid() {
		return nil, NewValidationError("invalid service status", ErrInvalidStatus)
	}

	return runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.ServiceItem, error) {
		service, err := f.serviceRepo.ByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if service == nil {
			return nil, NewNotFoundError("service not found", ErrServiceNotFound)
		}

		if req.Title != nil {
			service.Title = *req.Title
		}
		if req.Description != nil {
			service.Description = *req.Description
		}
		if req.DetailedDescription != nil {
			service.DetailedDescription = *req.DetailedDescription
		}
		if req.Category != nil {
			service.Category = models.ServiceCategory(*req.Category)
		}
		if req.Icon != nil {
			service.Icon = *req.Icon
		}
		if req.ImageURL != nil {
			service.ImageURL = *req.ImageURL
		}
		if req.Features != nil {
			service.Features = models.StringList(req.Features)
		}
		if req.Examples != nil {
			service.Examples = models.StringList(req.Examples)
		}
		if req.IsFeatured != nil {
			service.IsFeatured = req.IsFeatured
		}
		if req.SortOrder != nil {
			service.SortOrder = *req.SortOrder
		}
		if req.Status != nil {
			service.Status = models.ContentStatus(*req.Status)
		}
		if req.ExtraData != nil {
			service.ExtraData = models.JSONMap(req.ExtraData)
		}

		if err := f.serviceRepo.Update(ctx, service); err != nil {
			return nil, err
		}

		return ToServiceItem(service), nil
	})
}

func (f *ServiceFlowImpl) GetService(ctx context.Context, id uint) (*dto.ServiceItem, error) {
	service, err := f.serviceRepo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, NewNotFoundError("service not found", ErrServiceNotFound)
	}
	return ToServiceItem(service), nil
}

func (f *ServiceFlowImpl) GetServiceBySlug(ctx context.Context, slug string, publishedOnly bool) (*dto.ServiceItem, error) {
	service, err := f.serviceRepo.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if service == nil || (publishedOnly && !service.IsPublished()) {
		return nil, NewNotFoundError("service not found", ErrServiceNotFound)
	}
	return ToServiceItem(service), nil
}

func (f *ServiceFlowImpl) ListServices(ctx context.Context, req *dto.ListServicesRequest, publishedOnly bool) (*dto.ListServicesResponse, error) {
	if req == nil {
		req = &dto.ListServicesRequest{}
	}

	filter := models.ServiceFilter{
		IsFeatured: req.IsFeatured,
	}
	if req.Category != nil {
		category := models.ServiceCategory(*req.Category)
		if !category.Valid() {
			return nil, NewValidationError("invalid service category", ErrInvalidCategory)
		}
		filter.Category = &category
	}
	if publishedOnly {
		filter.Status = utils.ToPtr(models.ContentStatusPublished)
	} else if req.Status != nil {
		status := models.ContentStatus(*req.Status)
		if !status.Valid() {
			return nil, NewValidationError("invalid service status", ErrInvalidStatus)
		}
		filter.Status = &status
	}

	services, err := f.serviceRepo.ByFilter(ctx, filter, "sort_order ASC, id ASC", req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	total, err := f.serviceRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ServiceItem, 0, len(services))
	for _, service := range services {
		items = append(items, *ToServiceItem(service))
	}

	return &dto.ListServicesResponse{
		Message: "Services retrieved",
		Items:   items,
		Total:   total,
	}, nil
}

func (f *ServiceFlowImpl) DeleteService(ctx context.Context, id uint) error {
	service, err := f.serviceRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if service == nil {
		return NewNotFoundError("service not found", ErrServiceNotFound)
	}
	return f.serviceRepo.Delete(ctx, id)
}

// ToServiceItem converts a service model to its API representation
func ToServiceItem(service *models.Service) *dto.ServiceItem {
	return &dto.ServiceItem{
		ID:                  service.ID,
		Title:               service.Title,
		Slug:                service.Slug,
		Description:         service.Description,
		DetailedDescription: service.DetailedDescription,
		Category:            service.Category.String(),
		Icon:                service.Icon,
		ImageURL:            service.ImageURL,
		Features:            service.Features,
		Examples:            service.Examples,
		IsFeatured:          utils.IsTrue(service.IsFeatured),
		SortOrder:           service.SortOrder,
		Status:              service.Status.String(),
		ExtraData:           service.ExtraData,
		CreatedAt:           formatTime(service.CreatedAt),
		UpdatedAt:           formatTime(service.UpdatedAt),
	}
}
