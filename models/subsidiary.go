package models

import (
	"time"

	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// Subsidiary represents a business unit profile
type Subsidiary struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	Name                string         `gorm:"size:200;not null" json:"name"`
	Slug                string         `gorm:"size:200;not null;uniqueIndex:uk_subsidiaries_slug" json:"slug"`
	SubsidiaryType      SubsidiaryType `gorm:"type:varchar(30);not null;index:idx_subsidiaries_type" json:"subsidiary_type"`
	Tagline             string         `gorm:"size:300;not null;default:''" json:"tagline"`
	Description         string         `gorm:"size:1000;not null" json:"description"`
	DetailedDescription string         `gorm:"type:text;not null;default:''" json:"detailed_description"`
	LogoURL             string         `gorm:"size:500;not null;default:''" json:"logo_url"`
	WebsiteURL          string         `gorm:"size:500;not null;default:''" json:"website_url"`
	ContactEmail        string         `gorm:"size:255;not null;default:''" json:"contact_email"`
	ContactPhone        string         `gorm:"size:50;not null;default:''" json:"contact_phone"`
	FocusAreas          StringList     `gorm:"type:jsonb;not null;default:'[]'" json:"focus_areas"`
	KeyServices         StringList     `gorm:"type:jsonb;not null;default:'[]'" json:"key_services"`
	IsActive            *bool          `gorm:"default:true" json:"is_active"`
	SortOrder           int            `gorm:"not null;default:0" json:"sort_order"`
	SocialLinks         StringMap      `gorm:"type:jsonb;not null;default:'{}'" json:"social_links"`
	AdditionalInfo      JSONMap        `gorm:"type:jsonb;not null;default:'{}'" json:"additional_info"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Subsidiary) TableName() string {
	return "subsidiaries"
}

// BeforeCreate is called before creating a new record
func (s *Subsidiary) BeforeCreate(tx *gorm.DB) error {
	if s.FocusAreas == nil {
		s.FocusAreas = StringList{}
	}
	if s.KeyServices == nil {
		s.KeyServices = StringList{}
	}
	if s.SocialLinks == nil {
		s.SocialLinks = StringMap{}
	}
	if s.AdditionalInfo == nil {
		s.AdditionalInfo = JSONMap{}
	}
	if s.IsActive == nil {
		s.IsActive = utils.ToPtr(true)
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
func (s *Subsidiary) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = utils.UTCNow()
	return nil
}

// SubsidiaryFilter represents filter criteria for subsidiary queries
type SubsidiaryFilter struct {
	ID             *uint
	Slug           *string
	SubsidiaryType *SubsidiaryType
	IsActive       *bool
}
