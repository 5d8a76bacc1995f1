package models

import (
	"time"

	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// NewsletterSubscriber represents a mailing-list entry
type NewsletterSubscriber struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Email             string     `gorm:"size:255;not null;uniqueIndex:uk_newsletter_subscribers_email" json:"email"`
	Name              string     `gorm:"size:200;not null;default:''" json:"name"`
	IsActive          *bool      `gorm:"default:true;index:idx_newsletter_subscribers_is_active" json:"is_active"`
	IsVerified        *bool      `gorm:"default:false" json:"is_verified"`
	VerificationToken string     `gorm:"size:100;not null;default:''" json:"-"`
	Interests         StringList `gorm:"type:jsonb;not null;default:'[]'" json:"interests"`
	SubscribedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"subscribed_at"`
	UnsubscribedAt    *time.Time `json:"unsubscribed_at,omitempty"`
	LastEmailSent     *time.Time `json:"last_email_sent,omitempty"`
	Source            string     `gorm:"size:100;not null;default:'website'" json:"source"`
	IPAddress         string     `gorm:"size:45;not null;default:''" json:"ip_address"`
	UserAgent         string     `gorm:"size:500;not null;default:''" json:"user_agent"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

// BeforeCreate is called before creating a new record
func (s *NewsletterSubscriber) BeforeCreate(tx *gorm.DB) error {
	if s.Interests == nil {
		s.Interests = StringList{}
	}
	if s.Source == "" {
		s.Source = utils.DefaultInquirySource
	}
	if s.IsActive == nil {
		s.IsActive = utils.ToPtr(true)
	}
	if s.IsVerified == nil {
		s.IsVerified = utils.ToPtr(false)
	}
	if s.SubscribedAt.IsZero() {
		s.SubscribedAt = utils.UTCNow()
	}
	return nil
}

// IsSubscribed reports whether the entry still receives mail
func (s *NewsletterSubscriber) IsSubscribed() bool {
	return utils.IsTrue(s.IsActive) && s.UnsubscribedAt == nil
}

// NewsletterSubscriberFilter represents filter criteria for subscriber queries
type NewsletterSubscriberFilter struct {
	ID               *uint
	Email            *string
	IsActive         *bool
	IsVerified       *bool
	Interest         *string
	SubscribedAfter  *time.Time
	SubscribedBefore *time.Time
}
