package models

import (
	"time"

	"github.com/gmwtech/corporate-site/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContactInquiry represents an inbound lead or message.
// Email is intentionally not unique; the same visitor may write more than once.
type ContactInquiry struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	Name               string           `gorm:"size:200;not null" json:"name"`
	Email              string           `gorm:"size:255;not null;index:idx_contact_inquiries_email" json:"email"`
	Phone              string           `gorm:"size:50;not null;default:''" json:"phone"`
	Company            string           `gorm:"size:200;not null;default:''" json:"company"`
	Subject            string           `gorm:"size:300;not null" json:"subject"`
	Message            string           `gorm:"type:text;not null;default:''" json:"message"`
	ServiceInterest    *string          `gorm:"size:100" json:"service_interest,omitempty"`
	SubsidiaryInterest *string          `gorm:"size:100" json:"subsidiary_interest,omitempty"`
	Status             InquiryStatus    `gorm:"type:varchar(20);not null;default:'new';index:idx_contact_inquiries_status" json:"status"`
	Priority           string           `gorm:"size:20;not null;default:'medium'" json:"priority"`
	Source             string           `gorm:"size:100;not null;default:'website'" json:"source"`
	IPAddress          string           `gorm:"size:45;not null;default:''" json:"ip_address"`
	UserAgent          string           `gorm:"size:500;not null;default:''" json:"user_agent"`
	RespondedAt        *time.Time       `json:"responded_at,omitempty"`
	LeadScore          *decimal.Decimal `gorm:"type:decimal(5,2)" json:"lead_score,omitempty"`
	Notes              string           `gorm:"type:text;not null;default:''" json:"notes"`
	ExtraData          JSONMap          `gorm:"type:jsonb;not null;default:'{}'" json:"extra_data"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_contact_inquiries_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ContactInquiry) TableName() string {
	return "contact_inquiries"
}

// BeforeCreate is called before creating a new record
func (i *ContactInquiry) BeforeCreate(tx *gorm.DB) error {
	if i.Status == "" {
		i.Status = InquiryStatusNew
	}
	if i.Priority == "" {
		i.Priority = InquiryPriorityMedium
	}
	if i.Source == "" {
		i.Source = utils.DefaultInquirySource
	}
	if i.ExtraData == nil {
		i.ExtraData = JSONMap{}
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = utils.UTCNow()
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = utils.UTCNow()
	}
	return nil
}

// BeforeUpdate is called before updating a record
func (i *ContactInquiry) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = utils.UTCNow()
	return nil
}

// IsOpen reports whether the inquiry still needs attention
func (i *ContactInquiry) IsOpen() bool {
	return i.Status == InquiryStatusNew || i.Status == InquiryStatusInProgress
}

// ContactInquiryFilter represents filter criteria for inquiry queries
type ContactInquiryFilter struct {
	ID                 *uint
	Email              *string
	Status             *InquiryStatus
	Priority           *string
	Source             *string
	ServiceInterest    *string
	SubsidiaryInterest *string
	CreatedAfter       *time.Time
	CreatedBefore      *time.Time
}
