package models

import (
	"time"

	"github.com/gmwtech/corporate-site/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompanyInfo represents the singleton company profile.
// The flow layer always reads and writes the row with a fixed identifier
// rather than relying on the table holding a single row by convention.
type CompanyInfo struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	CompanyName    string           `gorm:"size:200;not null;default:'GMW Tech Group'" json:"company_name"`
	Tagline        string           `gorm:"size:500;not null;default:''" json:"tagline"`
	Mission        string           `gorm:"type:text;not null;default:''" json:"mission"`
	Vision         string           `gorm:"type:text;not null;default:''" json:"vision"`
	Description    string           `gorm:"type:text;not null;default:''" json:"description"`
	FoundedYear    *int             `json:"founded_year,omitempty"`
	PrimaryEmail   string           `gorm:"size:255;not null;default:''" json:"primary_email"`
	PrimaryPhone   string           `gorm:"size:50;not null;default:''" json:"primary_phone"`
	SecondaryPhone string           `gorm:"size:50;not null;default:''" json:"secondary_phone"`
	AddressLine1   string           `gorm:"size:200;not null;default:''" json:"address_line1"`
	AddressLine2   string           `gorm:"size:200;not null;default:''" json:"address_line2"`
	City           string           `gorm:"size:100;not null;default:''" json:"city"`
	State          string           `gorm:"size:100;not null;default:''" json:"state"`
	Country        string           `gorm:"size:100;not null;default:''" json:"country"`
	PostalCode     string           `gorm:"size:20;not null;default:''" json:"postal_code"`
	Latitude       *decimal.Decimal `gorm:"type:decimal(9,6)" json:"latitude,omitempty"`
	Longitude      *decimal.Decimal `gorm:"type:decimal(9,6)" json:"longitude,omitempty"`
	SocialLinks    StringMap        `gorm:"type:jsonb;not null;default:'{}'" json:"social_links"`
	BusinessHours  StringMap        `gorm:"type:jsonb;not null;default:'{}'" json:"business_hours"`
	Certifications StringList       `gorm:"type:jsonb;not null;default:'[]'" json:"certifications"`
	Awards         StringList       `gorm:"type:jsonb;not null;default:'[]'" json:"awards"`

	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (CompanyInfo) TableName() string {
	return "company_info"
}

// BeforeCreate is called before creating a new record
func (c *CompanyInfo) BeforeCreate(tx *gorm.DB) error {
	if c.SocialLinks == nil {
		c.SocialLinks = StringMap{}
	}
	if c.BusinessHours == nil {
		c.BusinessHours = StringMap{}
	}
	if c.Certifications == nil {
		c.Certifications = StringList{}
	}
	if c.Awards == nil {
		c.Awards = StringList{}
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = utils.UTCNow()
	}
	return nil
}

// BeforeUpdate is called before updating a record
func (c *CompanyInfo) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = utils.UTCNow()
	return nil
}
