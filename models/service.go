package models

import (
	"time"

	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// Service represents an offered service listing
type Service struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	Title               string          `gorm:"size:200;not null" json:"title"`
	Slug                string          `gorm:"size:200;not null;uniqueIndex:uk_services_slug" json:"slug"`
	Description         string          `gorm:"size:1000;not null" json:"description"`
	DetailedDescription string          `gorm:"type:text;not null;default:''" json:"detailed_description"`
	Category            ServiceCategory `gorm:"type:varchar(30);not null;index:idx_services_category" json:"category"`
	Icon                string          `gorm:"size:100;not null;default:''" json:"icon"`
	ImageURL            string          `gorm:"size:500;not null;default:''" json:"image_url"`
	Features            StringList      `gorm:"type:jsonb;not null;default:'[]'" json:"features"`
	Examples            StringList      `gorm:"type:jsonb;not null;default:'[]'" json:"examples"`
	IsFeatured          *bool           `gorm:"default:false" json:"is_featured"`
	SortOrder           int             `gorm:"not null;default:0" json:"sort_order"`
	Status              ContentStatus   `gorm:"type:varchar(20);not null;default:'published';index:idx_services_status" json:"status"`
	ExtraData           JSONMap         `gorm:"type:jsonb;not null;default:'{}'" json:"extra_data"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}

// BeforeCreate is called before creating a new record
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = ContentStatusPublished
	}
	if s.Features == nil {
		s.Features = StringList{}
	}
	if s.Examples == nil {
		s.Examples = StringList{}
	}
	if s.ExtraData == nil {
		s.ExtraData = JSONMap{}
	}
	if s.IsFeatured == nil {
		s.IsFeatured = utils.ToPtr(false)
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = utils.UTCNow()
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = utils.UTCNow()
	}
	return nil
}

// BeforeUpdate is called before updating a record
func (s *Service) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = utils.UTCNow()
	return nil
}

// IsPublished reports whether the service is visible on the public site
func (s *Service) IsPublished() bool {
	return s.Status == ContentStatusPublished
}

// ServiceFilter represents filter criteria for service queries
type ServiceFilter struct {
	ID         *uint
	Slug       *string
	Category   *ServiceCategory
	Status     *ContentStatus
	IsFeatured *bool
}
