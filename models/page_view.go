package models

import (
	"time"

	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// PageView represents a single page-visit event.
// Rows are append-only; nothing in the application updates them after insert.
type PageView struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PagePath        string    `gorm:"size:500;not null;index:idx_page_views_page_path" json:"page_path"`
	PageTitle       string    `gorm:"size:200;not null;default:''" json:"page_title"`
	UserIP          string    `gorm:"size:45;not null;default:''" json:"user_ip"`
	UserAgent       string    `gorm:"size:500;not null;default:''" json:"user_agent"`
	Referrer        string    `gorm:"size:500;not null;default:''" json:"referrer"`
	SessionID       string    `gorm:"size:100;not null;default:'';index:idx_page_views_session_id" json:"session_id"`
	DeviceType      string    `gorm:"size:50;not null;default:''" json:"device_type"`
	Browser         string    `gorm:"size:100;not null;default:''" json:"browser"`
	OperatingSystem string    `gorm:"size:100;not null;default:''" json:"operating_system"`
	Country         string    `gorm:"size:100;not null;default:''" json:"country"`
	City            string    `gorm:"size:100;not null;default:''" json:"city"`
	ViewedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_page_views_viewed_at" json:"viewed_at"`
	TimeOnPage      *int      `json:"time_on_page,omitempty"` // seconds
	Bounce          *bool     `gorm:"default:false" json:"bounce"`
	Conversion      *bool     `gorm:"default:false" json:"conversion"`
}

func (PageView) TableName() string {
	return "page_views"
}

// BeforeCreate is called before creating a new record
func (v *PageView) BeforeCreate(tx *gorm.DB) error {
	if v.ViewedAt.IsZero() {
		v.ViewedAt = utils.UTCNow()
	}
	return nil
}

// PageViewFilter represents filter criteria for page view queries
type PageViewFilter struct {
	PagePath     *string
	SessionID    *string
	DeviceType   *string
	Country      *string
	ViewedAfter  *time.Time
	ViewedBefore *time.Time
	Bounce       *bool
	Conversion   *bool
}
