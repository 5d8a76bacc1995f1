package models

import (
	"time"

	"github.com/gmwtech/corporate-site/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SiteAnalytics represents a daily aggregate snapshot of site traffic.
// One row per date; the analytics flow upserts on the date column.
type SiteAnalytics struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	Date               time.Time       `gorm:"not null;index:idx_site_analytics_date" json:"date"`
	PageViews          int             `gorm:"not null;default:0" json:"page_views"`
	UniqueVisitors     int             `gorm:"not null;default:0" json:"unique_visitors"`
	BounceRate         decimal.Decimal `gorm:"type:decimal(6,4);not null;default:0" json:"bounce_rate"`
	AvgSessionDuration decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0" json:"avg_session_duration"`
	NewContacts        int             `gorm:"not null;default:0" json:"new_contacts"`
	ConversionRate     decimal.Decimal `gorm:"type:decimal(6,4);not null;default:0" json:"conversion_rate"`

	// Traffic sources
	OrganicTraffic  int `gorm:"not null;default:0" json:"organic_traffic"`
	DirectTraffic   int `gorm:"not null;default:0" json:"direct_traffic"`
	ReferralTraffic int `gorm:"not null;default:0" json:"referral_traffic"`
	SocialTraffic   int `gorm:"not null;default:0" json:"social_traffic"`

	// Device breakdown
	DesktopUsers int `gorm:"not null;default:0" json:"desktop_users"`
	MobileUsers  int `gorm:"not null;default:0" json:"mobile_users"`
	TabletUsers  int `gorm:"not null;default:0" json:"tablet_users"`

	// Popular content
	TopPages    StringList `gorm:"type:jsonb;not null;default:'[]'" json:"top_pages"`
	TopServices StringList `gorm:"type:jsonb;not null;default:'[]'" json:"top_services"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (SiteAnalytics) TableName() string {
	return "site_analytics"
}

// BeforeCreate is called before creating a new record
func (a *SiteAnalytics) BeforeCreate(tx *gorm.DB) error {
	if a.TopPages == nil {
		a.TopPages = StringList{}
	}
	if a.TopServices == nil {
		a.TopServices = StringList{}
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = utils.UTCNow()
	}
	return nil
}

// SiteAnalyticsFilter represents filter criteria for analytics queries
type SiteAnalyticsFilter struct {
	ID         *uint
	Date       *time.Time
	DateAfter  *time.Time
	DateBefore *time.Time
}
