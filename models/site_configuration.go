package models

import (
	"time"

	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// SiteConfiguration represents a key-value site setting.
// Value is stored as a string and type-tagged by ValueType; only rows with
// IsPublic set are ever exposed through the public API.
type SiteConfiguration struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Key         string `gorm:"size:100;not null;uniqueIndex:uk_site_configuration_key" json:"key"`
	Value       string `gorm:"type:text;not null;default:''" json:"value"`
	ValueType   string `gorm:"size:20;not null;default:'string'" json:"value_type"`
	Description string `gorm:"size:500;not null;default:''" json:"description"`
	Category    string `gorm:"size:50;not null;default:'general';index:idx_site_configuration_category" json:"category"`
	IsPublic    *bool  `gorm:"default:false;index:idx_site_configuration_is_public" json:"is_public"`

	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (SiteConfiguration) TableName() string {
	return "site_configuration"
}

// BeforeCreate is called before creating a new record
func (c *SiteConfiguration) BeforeCreate(tx *gorm.DB) error {
	if c.ValueType == "" {
		c.ValueType = ConfigValueTypeString
	}
	if c.Category == "" {
		c.Category = "general"
	}
	if c.IsPublic == nil {
		c.IsPublic = utils.ToPtr(false)
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = utils.UTCNow()
	}
	return nil
}

// BeforeUpdate is called before updating a record
func (c *SiteConfiguration) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = utils.UTCNow()
	return nil
}

// SiteConfigurationFilter represents filter criteria for configuration queries
type SiteConfigurationFilter struct {
	ID       *uint
	Key      *string
	Category *string
	IsPublic *bool
}
