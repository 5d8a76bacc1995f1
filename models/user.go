package models

import (
	"time"

	"github.com/gmwtech/corporate-site/utils"
	"gorm.io/gorm"
)

// User represents an authenticated staff account
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"size:100;not null;uniqueIndex:uk_users_username" json:"username"`
	Email          string `gorm:"size:255;not null;uniqueIndex:uk_users_email" json:"email"`
	HashedPassword string `gorm:"size:255;not null" json:"-"` // Never serialize password hash
	FullName       string `gorm:"size:200;not null" json:"full_name"`
	IsActive       *bool  `gorm:"default:true" json:"is_active"`
	IsAdmin        *bool  `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	BlogPosts []BlogPost `gorm:"foreignKey:AuthorID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate is called before creating a new record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = utils.UTCNow()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = utils.UTCNow()
	}
	return nil
}

// BeforeUpdate is called before updating a record
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = utils.UTCNow()
	return nil
}

// CanAuthor reports whether the account may author blog posts
func (u *User) CanAuthor() bool {
	return utils.IsTrue(u.IsActive)
}

// UserFilter represents filter criteria for user queries
type UserFilter struct {
	ID            *uint
	Username      *string
	Email         *string
	IsActive      *bool
	IsAdmin       *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
