package businessflow

import (
	"context"

	"github.com/gmwtech/corporate-site/app/dto"
	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// PageFlow defines operations for static pages
type PageFlow interface {
	CreatePage(ctx context.Context, req *dto.PageCreate, metadata *ClientMetadata) (*dto.PageItem, error)
	UpdatePage(ctx context.Context, id uint, req *dto.PageUpdate, metadata *ClientMetadata) (*dto.PageItem, error)
	GetPage(ctx context.Context, id uint) (*dto.PageItem, error)
	GetPageBySlug(ctx context.Context, slug string, publishedOnly bool) (*dto.PageItem, error)
	GetHomepage(ctx context.Context) (*dto.PageItem, error)
	ListPages(ctx context.Context, req *dto.ListPagesRequest, publishedOnly bool) (*dto.ListPagesResponse, error)
	DeletePage(ctx context.Context, id uint) error
}

// PageFlowImpl implements PageFlow
type PageFlowImpl struct {
	pageRepo repository.PageRepository
	db       *gorm.DB
}

// NewPageFlow creates a new page flow
func NewPageFlow(pageRepo repository.PageRepository, db *gorm.DB) PageFlow {
	return &PageFlowImpl{
		pageRepo: pageRepo,
		db:       db,
	}
}

func (f *PageFlowImpl) CreatePage(ctx context.Context, req *dto.PageCreate, metadata *ClientMetadata) (*dto.PageItem, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	status := models.ContentStatusDraft
	if req.Status != nil {
		status = models.ContentStatus(*req.Status)
		if !status.Valid() {
			return nil, NewValidationError("invalid page status", ErrInvalidStatus)
		}
	}

	return runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.PageItem, error) {
		exists, err := f.pageRepo.Exists(ctx, models.PageFilter{Slug: &req.Slug})
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, NewConflictError("page slug already exists", ErrSlugAlreadyExists)
		}

		if utils.IsTrue(req.IsHomepage) {
			if err := f.pageRepo.ClearHomepage(ctx); err != nil {
				return nil, err
			}
		}

		page := models.Page{
			Title:           req.Title,
			Slug:            req.Slug,
			Content:         req.Content,
			MetaDescription: req.MetaDescription,
			MetaKeywords:    req.MetaKeywords,
			Status:          status,
			IsHomepage:      req.IsHomepage,
			SEOData:         models.JSONMap(req.SEOData),
		}
		if req.SortOrder != nil {
			page.SortOrder = *req.SortOrder
		}

		if err := f.pageRepo.Save(ctx, &page); err != nil {
			if repository.IsDuplicate(err) {
				return nil, NewConflictError("page slug already exists", ErrSlugAlreadyExists)
			}
			return nil, err
		}

		return ToPageItem(&page), nil
	})
}

func (f *PageFlowImpl) UpdatePage(ctx context.Context, id uint, req *dto.PageUpdate, metadata *ClientMetadata) (*dto.PageItem, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	if req.Status != nil && !models.ContentStatus(*req.Status).Valid() {
		return nil, NewValidationError("invalid page status", ErrInvalidStatus)
	}

	return runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.PageItem, error) {
		page, err := f.pageRepo.ByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return nil, NewNotFoundError("page not found", ErrPageNotFound)
		}

		if req.Title != nil {
			page.Title = *req.Title
		}
		if req.Content != nil {
			page.Content = *req.Content
		}
		if req.MetaDescription != nil {
			page.MetaDescription = *req.MetaDescription
		}
		if req.MetaKeywords != nil {
			page.MetaKeywords = *req.MetaKeywords
		}
		if req.Status != nil {
			page.Status = models.ContentStatus(*req.Status)
		}
		if req.SortOrder != nil {
			page.SortOrder = *req.SortOrder
		}
		if req.SEOData != nil {
			page.SEOData = models.JSONMap(req.SEOData)
		}
		if req.IsHomepage != nil {
			if *req.IsHomepage && !utils.IsTrue(page.IsHomepage) {
				if err := f.pageRepo.ClearHomepage(ctx); err != nil {
					return nil, err
				}
			}
			page.IsHomepage = req.IsHomepage
		}

		if err := f.pageRepo.Update(ctx, page); err != nil {
			return nil, err
		}

		return ToPageItem(page), nil
	})
}

func (f *PageFlowImpl) GetPage(ctx context.Context, id uint) (*dto.PageItem, error) {
	page, err := f.pageRepo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, NewNotFoundError("page not found", ErrPageNotFound)
	}
	return ToPageItem(page), nil
}

func (f *PageFlowImpl) GetPageBySlug(ctx context.Context, slug string, publishedOnly bool) (*dto.PageItem, error) {
	page, err := f.pageRepo.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if page == nil || (publishedOnly && !page.IsPublished()) {
		return nil, NewNotFoundError("page not found", ErrPageNotFound)
	}
	return ToPageItem(page), nil
}

func (f *PageFlowImpl) GetHomepage(ctx context.Context) (*dto.PageItem, error) {
	page, err := f.pageRepo.Homepage(ctx)
	if err != nil {
		return nil, err
	}
	if page == nil || !page.IsPublished() {
		return nil, NewNotFoundError("homepage not found", ErrHomepageNotFound)
	}
	return ToPageItem(page), nil
}

func (f *PageFlowImpl) ListPages(ctx context.Context, req *dto.ListPagesRequest, publishedOnly bool) (*dto.ListPagesResponse, error) {
	if req == nil {
		req = &dto.ListPagesRequest{}
	}

	filter := models.PageFilter{}
	if publishedOnly {
		filter.Status = utils.ToPtr(models.ContentStatusPublished)
	} else if req.Status != nil {
		status := models.ContentStatus(*req.Status)
		if !status.Valid() {
			return nil, NewValidationError("invalid page status", ErrInvalidStatus)
		}
		filter.Status = &status
	}

	pages, err := f.pageRepo.ByFilter(ctx, filter, "sort_order ASC, id ASC", req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	total, err := f.pageRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PageItem, 0, len(pages))
	for _, page := range pages {
		items = append(items, *ToPageItem(page))
	}

	return &dto.ListPagesResponse{
		Message: "Pages retrieved",
		Items:   items,
		Total:   total,
	}, nil
}

func (f *PageFlowImpl) DeletePage(ctx context.Context, id uint) error {
	page, err := f.pageRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if page == nil {
		return NewNotFoundError("page not found", ErrPageNotFound)
	}
	return f.pageRepo.Delete(ctx, id)
}

// ToPageItem converts a page model to its API representation
func ToPageItem(page *models.Page) *dto.PageItem {
	return &dto.PageItem{
		ID:              page.ID,
		Title:           page.Title,
		Slug:            page.Slug,
		Content:         page.Content,
		MetaDescription: page.MetaDescription,
		MetaKeywords:    page.MetaKeywords,
		Status:          page.Status.String(),
		IsHomepage:      utils.IsTrue(page.IsHomepage),
		SortOrder:       page.SortOrder,
		SEOData:         page.SEOData,
		CreatedAt:       formatTime(page.CreatedAt),
		UpdatedAt:       formatTime(page.UpdatedAt),
	}
}
