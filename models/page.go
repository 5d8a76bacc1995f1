package models

import (
	"time"

	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// Page represents a static marketing page
type Page struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Title           string        `gorm:"size:200;not null" json:"title"`
	Slug            string        `gorm:"size:200;not null;uniqueIndex:uk_pages_slug" json:"slug"`
	Content         string        `gorm:"type:text;not null;default:''" json:"content"`
	MetaDescription string        `gorm:"size:500;not null;default:''" json:"meta_description"`
	MetaKeywords    string        `gorm:"size:500;not null;default:''" json:"meta_keywords"`
	Status          ContentStatus `gorm:"type:varchar(20);not null;default:'draft';index:idx_pages_status" json:"status"`
	IsHomepage      *bool         `gorm:"default:false;index:idx_pages_is_homepage" json:"is_homepage"`
	SortOrder       int           `gorm:"not null;default:0" json:"sort_order"`
	SEOData         JSONMap       `gorm:"type:jsonb;not null;default:'{}'" json:"seo_data"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Page) TableName() string {
	return "pages"
}

// BeforeCreate is called before creating a new record
func (p *Page) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = ContentStatusDraft
	}
	if p.SEOData == nil {
		p.SEOData = JSONMap{}
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
func (p *Page) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = utils.UTCNow()
	return nil
}

// IsPublished reports whether the page is visible on the public site
func (p *Page) IsPublished() bool {
	return p.Status == ContentStatusPublished
}

// PageFilter represents filter criteria for page queries
type PageFilter struct {
	ID         *uint
	Slug       *string
	Status     *ContentStatus
	IsHomepage *bool
}
