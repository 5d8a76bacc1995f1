// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/gmwtech/corporate-site/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// UserRepository defines operations for staff accounts
type UserRepository interface {
	Repository[models.User, models.UserFilter]
	ByUsername(ctx context.Context, username string) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// PageRepository defines operations for static pages
type PageRepository interface {
	Repository[models.Page, models.PageFilter]
	BySlug(ctx context.Context, slug string) (*models.Page, error)
	Homepage(ctx context.Context) (*models.Page, error)
	ClearHomepage(ctx context.Context) error
	Update(ctx context.Context, page *models.Page) error
	Delete(ctx context.Context, id uint) error
}

// ServiceRepository defines operations for service listings
type ServiceRepository interface {
	Repository[models.Service, models.ServiceFilter]
	BySlug(ctx context.Context, slug string) (*models.Service, error)
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id uint) error
}

// SubsidiaryRepository defines operations for business unit profiles
type SubsidiaryRepository interface {
	Repository[models.Subsidiary, models.SubsidiaryFilter]
	BySlug(ctx context.Context, slug string) (*models.Subsidiary, error)
	Update(ctx context.Context, subsidiary *models.Subsidiary) error
	Delete(ctx context.Context, id uint) error
}

// BlogPostRepository defines operations for blog posts
type BlogPostRepository interface {
	Repository[models.BlogPost, models.BlogPostFilter]
	BySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	IncrementViewCount(ctx context.Context, id uint) error
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id uint) error
}

// ContactInquiryRepository defines operations for inbound leads
type ContactInquiryRepository interface {
	Repository[models.ContactInquiry, models.ContactInquiryFilter]
	Update(ctx context.Context, inquiry *models.ContactInquiry) error
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// CompanyInfoRepository defines operations for the singleton company profile
type CompanyInfoRepository interface {
	Get(ctx context.Context) (*models.CompanyInfo, error)
	Upsert(ctx context.Context, info *models.CompanyInfo) error
}

// PageViewRepository defines operations for page-visit events.
// Rows are append-only; there is deliberately no update method.
type PageViewRepository interface {
	Repository[models.PageView, models.PageViewFilter]
	CountUniqueSessions(ctx context.Context, filter models.PageViewFilter) (int64, error)
	PathStats(ctx context.Context, pagePath string, since time.Time) (*PathStats, error)
	TopPaths(ctx context.Context, since time.Time, limit int) ([]PathCount, error)
}

// PathStats aggregates page view rows for a single path
type PathStats struct {
	PagePath       string
	Views          int64
	UniqueVisitors int64
	TotalSeconds   int64
	TimedViews     int64
	Bounces        int64
	Conversions    int64
}

// PathCount pairs a page path with its view count
type PathCount struct {
	PagePath string
	Views    int64
}

// SiteAnalyticsRepository defines operations for daily aggregate snapshots
type SiteAnalyticsRepository interface {
	Repository[models.SiteAnalytics, models.SiteAnalyticsFilter]
	ByDate(ctx context.Context, date time.Time) (*models.SiteAnalytics, error)
	UpsertByDate(ctx context.Context, snapshot *models.SiteAnalytics) error
}

// SiteConfigurationRepository defines operations for key-value settings
type SiteConfigurationRepository interface {
	Repository[models.SiteConfiguration, models.SiteConfigurationFilter]
	ByKey(ctx context.Context, key string) (*models.SiteConfiguration, error)
	ListPublic(ctx context.Context) ([]*models.SiteConfiguration, error)
	Update(ctx context.Context, setting *models.SiteConfiguration) error
	Delete(ctx context.Context, id uint) error
}

// NewsletterSubscriberRepository defines operations for mailing-list entries
type NewsletterSubscriberRepository interface {
	Repository[models.NewsletterSubscriber, models.NewsletterSubscriberFilter]
	ByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	ByVerificationToken(ctx context.Context, token string) (*models.NewsletterSubscriber, error)
	Update(ctx context.Context, subscriber *models.NewsletterSubscriber) error
}
