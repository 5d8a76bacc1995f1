package utils

import (
	"time"
)

// Token and session time constants
const (
	// AccessTokenTTL is the time-to-live for staff access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// RefreshTokenTTL is the time-to-live for refresh tokens (7 days)
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Content and lead constants
const (
	// DefaultBlogCategory is assigned to posts created without a category
	DefaultBlogCategory = "general"

	// DefaultInquirySource marks inquiries submitted through the website form
	DefaultInquirySource = "website"

	// CompanyInfoID is the fixed identifier of the singleton company profile row
	CompanyInfoID = 1

	// PublicConfigCacheKey is the Redis key holding the public site configuration
	PublicConfigCacheKey = "site_config:public"

	// PublicConfigCacheTTL bounds staleness of the cached public configuration
	PublicConfigCacheTTL = 5 * time.Minute
)
