package businessflow

import (
	"context"

	"github.com/gmwtech/corporate-site/app/dto"
	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// BlogFlow defines operations for blog posts
type BlogFlow interface {
	CreateBlogPost(ctx context.Context, req *dto.BlogPostCreate, metadata *ClientMetadata) (*dto.BlogPostItem, error)
	UpdateBlogPost(ctx context.Context, id uint, req *dto.BlogPostUpdate, metadata *ClientMetadata) (*dto.BlogPostItem, error)
	GetBlogPost(ctx context.Context, id uint) (*dto.BlogPostItem, error)
	ReadBlogPost(ctx context.Context, slug string) (*dto.BlogPostItem, error)
	ListBlogPosts(ctx context.Context, req *dto.ListBlogPostsRequest, publishedOnly bool) (*dto.ListBlogPostsResponse, error)
	DeleteBlogPost(ctx context.Context, id uint) error
}

// BlogFlowImpl implements BlogFlow
type BlogFlowImpl struct {
	blogRepo repository.BlogPostRepository
	userRepo repository.UserRepository
	db       *gorm.DB
}

// NewBlogFlow creates a new blog flow
func NewBlogFlow(blogRepo repository.BlogPostRepository, userRepo repository.UserRepository, db *gorm.DB) BlogFlow {
	return &BlogFlowImpl{
		blogRepo: blogRepo,
		userRepo: userRepo,
		db:       db,
	}
}

func (f *BlogFlowImpl) CreateBlogPost(ctx context.Context, req *dto.BlogPostCreate, metadata *ClientMetadata) (*dto.BlogPostItem, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	return runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.BlogPostItem, error) {
		var author *models.User
		if req.AuthorID != nil {
			var err error
			author, err = f.userRepo.ByID(ctx, *req.AuthorID)
			if err != nil {
				return nil, err
			}
			if author == nil {
				return nil, NewValidationError("author not found", ErrAuthorNotFound)
			}
			if !author.CanAuthor() {
				return nil, NewValidationError("author account is inactive", ErrAuthorInactive)
			}
		}

		exists, err := f.blogRepo.Exists(ctx, models.BlogPostFilter{Slug: &req.Slug})
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, NewConflictError("blog post slug already exists", ErrSlugAlreadyExists)
		}

		post := models.BlogPost{
			Title:            req.Title,
			Slug:             req.Slug,
			Excerpt:          req.Excerpt,
			Content:          req.Content,
			FeaturedImageURL: req.FeaturedImageURL,
			AuthorID:         req.AuthorID,
			Category:         req.Category,
			Tags:             models.StringList(req.Tags),
			MetaDescription:  req.MetaDescription,
			MetaKeywords:     req.MetaKeywords,
			SEOData:          models.JSONMap(req.SEOData),
		}

		if err := f.blogRepo.Save(ctx, &post); err != nil {
			if repository.IsDuplicate(err) {
				return nil, NewConflictError("blog post slug already exists", ErrSlugAlreadyExists)
			}
			return nil, err
		}

		post.Author = author
		return ToBlogPostItem(&post), nil
	})
}

func (f *BlogFlowImpl) UpdateBlogPost(ctx context.Context, id uint, req *dto.BlogPostUpdate, metadata *ClientMetadata) (*dto.BlogPostItem, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	if req.Status != nil && !models.ContentStatus(*req.Status).Valid() {
		return nil, NewValidationError("invalid blog post status", ErrInvalidStatus)
	}

	return runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.BlogPostItem, error) {
		post, err := f.blogRepo.ByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if post == nil {
			return nil, NewNotFoundError("blog post not found", ErrBlogPostNotFound)
		}

		if req.Title != nil {
			post.Title = *req.Title
		}
		if req.Excerpt != nil {
			post.Excerpt = *req.Excerpt
		}
		if req.Content != nil {
			post.Content = *req.Content
		}
		if req.FeaturedImageURL != nil {
			post.FeaturedImageURL = *req.FeaturedImageURL
		}
		if req.Category != nil {
			post.Category = *req.Category
		}
		if req.Tags != nil {
			post.Tags = models.StringList(req.Tags)
		}
		if req.Status != nil {
			status := models.ContentStatus(*req.Status)
			// First transition to published stamps the publication time.
			if status == models.ContentStatusPublished && post.PublishedAt == nil {
				post.PublishedAt = utils.UTCNowPtr()
			}
			post.Status = status
		}
		if req.IsFeatured != nil {
			post.IsFeatured = req.IsFeatured
		}
		if req.MetaDescription != nil {
			post.MetaDescription = *req.MetaDescription
		}
		if req.MetaKeywords != nil {
			post.MetaKeywords = *req.MetaKeywords
		}
		if req.SEOData != nil {
			post.SEOData = models.JSONMap(req.SEOData)
		}

		if err := f.blogRepo.Update(ctx, post); err != nil {
			return nil, err
		}

		return f.withAuthor(ctx, post)
	})
}

func (f *BlogFlowImpl) GetBlogPost(ctx context.Context, id uint) (*dto.BlogPostItem, error) {
	post, err := f.blogRepo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NewNotFoundError("blog post not found", ErrBlogPostNotFound)
	}
	return f.withAuthor(ctx, post)
}

// ReadBlogPost returns a published post by slug and counts the read
func (f *BlogFlowImpl) ReadBlogPost(ctx context.Context, slug string) (*dto.BlogPostItem, error) {
	post, err := f.blogRepo.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsPublished() {
		return nil, NewNotFoundError("blog post not found", ErrBlogPostNotFound)
	}

	if err := f.blogRepo.IncrementViewCount(ctx, post.ID); err != nil {
		return nil, err
	}
	post.ViewCount++

	return f.withAuthor(ctx, post)
}

func (f *BlogFlowImpl) ListBlogPosts(ctx context.Context, req *dto.ListBlogPostsRequest, publishedOnly bool) (*dto.ListBlogPostsResponse, error) {
	if req == nil {
		req = &dto.ListBlogPostsRequest{}
	}

	filter := models.BlogPostFilter{
		Category: req.Category,
		Tag:      req.Tag,
	}
	if publishedOnly {
		filter.Status = utils.ToPtr(models.ContentStatusPublished)
	} else if req.Status != nil {
		status := models.ContentStatus(*req.Status)
		if !status.Valid() {
			return nil, NewValidationError("invalid blog post status", ErrInvalidStatus)
		}
		filter.Status = &status
	}

	posts, err := f.blogRepo.ByFilter(ctx, filter, "created_at DESC, id DESC", req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	total, err := f.blogRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.BlogPostItem, 0, len(posts))
	for _, post := range posts {
		item, err := f.withAuthor(ctx, post)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return &dto.ListBlogPostsResponse{
		Message: "Blog posts retrieved",
		Items:   items,
		Total:   total,
	}, nil
}

func (f *BlogFlowImpl) DeleteBlogPost(ctx context.Context, id uint) error {
	post, err := f.blogRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return NewNotFoundError("blog post not found", ErrBlogPostNotFound)
	}
	return f.blogRepo.Delete(ctx, id)
}

func (f *BlogFlowImpl) withAuthor(ctx context.Context, post *models.BlogPost) (*dto.BlogPostItem, error) {
	if post.Author == nil && post.AuthorID != nil {
		author, err := f.userRepo.ByID(ctx, *post.AuthorID)
		if err != nil {
			return nil, err
		}
		post.Author = author
	}
	return ToBlogPostItem(post), nil
}

// ToBlogPostItem converts a blog post model to its API representation
func ToBlogPostItem(post *models.BlogPost) *dto.BlogPostItem {
	item := &dto.BlogPostItem{
		ID:               post.ID,
		Title:            post.Title,
		Slug:             post.Slug,
		Excerpt:          post.Excerpt,
		Content:          post.Content,
		FeaturedImageURL: post.FeaturedImageURL,
		AuthorID:         post.AuthorID,
		Category:         post.Category,
		Tags:             post.Tags,
		Status:           post.Status.String(),
		IsFeatured:       utils.IsTrue(post.IsFeatured),
		ViewCount:        post.ViewCount,
		PublishedAt:      formatTimePtr(post.PublishedAt),
		MetaDescription:  post.MetaDescription,
		MetaKeywords:     post.MetaKeywords,
		SEOData:          post.SEOData,
		CreatedAt:        formatTime(post.CreatedAt),
		UpdatedAt:        formatTime(post.UpdatedAt),
	}
	if post.Author != nil {
		item.AuthorName = &post.Author.FullName
	}
	return item
}
