package models

import (
	"time"

	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// BlogPost represents an authored article.
// AuthorID is a weak reference: deleting the user leaves the post in place
// with the author cleared.
type BlogPost struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	Title            string        `gorm:"size:200;not null" json:"title"`
	Slug             string        `gorm:"size:200;not null;uniqueIndex:uk_blog_posts_slug" json:"slug"`
	Excerpt          string        `gorm:"size:500;not null;default:''" json:"excerpt"`
	Content          string        `gorm:"type:text;not null;default:''" json:"content"`
	FeaturedImageURL string        `gorm:"size:500;not null;default:''" json:"featured_image_url"`
	AuthorID         *uint         `gorm:"index:idx_blog_posts_author_id" json:"author_id,omitempty"`
	Category         string        `gorm:"size:100;not null;default:'general'" json:"category"`
	Tags             StringList    `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	Status           ContentStatus `gorm:"type:varchar(20);not null;default:'draft';index:idx_blog_posts_status" json:"status"`
	IsFeatured       *bool         `gorm:"default:false" json:"is_featured"`
	ViewCount        int           `gorm:"not null;default:0" json:"view_count"`
	PublishedAt      *time.Time    `gorm:"index:idx_blog_posts_published_at" json:"published_at,omitempty"`
	MetaDescription  string        `gorm:"size:500;not null;default:''" json:"meta_description"`
	MetaKeywords     string        `gorm:"size:500;not null;default:''" json:"meta_keywords"`
	SEOData          JSONMap       `gorm:"type:jsonb;not null;default:'{}'" json:"seo_data"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_blog_posts_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Author *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:SET NULL" json:"author,omitempty"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// BeforeCreate is called before creating a new record
func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = ContentStatusDraft
	}
	if p.Category == "" {
		p.Category = utils.DefaultBlogCategory
	}
	if p.Tags == nil {
		p.Tags = StringList{}
	}
	if p.SEOData == nil {
		p.SEOData = JSONMap{}
	}
	if p.IsFeatured == nil {
		p.IsFeatured = utils.ToPtr(false)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = utils.UTCNow()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = utils.UTCNow()
	}
	return nil
}

// BeforeUpdate is called before updating a record
func (p *BlogPost) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = utils.UTCNow()
	return nil
}

// IsPublished reports whether the post is visible on the public site
func (p *BlogPost) IsPublished() bool {
	return p.Status == ContentStatusPublished
}

// BlogPostFilter represents filter criteria for blog post queries
type BlogPostFilter struct {
	ID              *uint
	Slug            *string
	AuthorID        *uint
	Category        *string
	Status          *ContentStatus
	IsFeatured      *bool
	Tag             *string
	PublishedAfter  *time.Time
	PublishedBefore *time.Time
}
