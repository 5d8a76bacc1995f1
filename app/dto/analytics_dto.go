package dto

// TrackPageViewRequest carries a page-visit event from the public site
type TrackPageViewRequest struct {
	PagePath   string  `json:"page_path" validate:"required,max=500"`
	PageTitle  string  `json:"page_title" validate:"omitempty,max=200"`
	Referrer   string  `json:"referrer" validate:"omitempty,max=500"`
	SessionID  string  `json:"session_id" validate:"omitempty,max=100"`
	DeviceType string  `json:"device_type" validate:"omitempty,max=50"`
	Browser    string  `json:"browser" validate:"omitempty,max=100"`
	OS         string  `json:"operating_system" validate:"omitempty,max=100"`
	Country    string  `json:"country" validate:"omitempty,max=100"`
	City       string  `json:"city" validate:"omitempty,max=100"`
	TimeOnPage *int    `json:"time_on_page,omitempty" validate:"omitempty,min=0"`
	Bounce     *bool   `json:"bounce,omitempty" validate:"omitempty"`
	Conversion *bool   `json:"conversion,omitempty" validate:"omitempty"`
}

// TrackPageViewResponse acknowledges a recorded visit
type TrackPageViewResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// PageAnalytics aggregates traffic for a single page path.
// Rates and durations are decimal strings to avoid floating-point drift.
type PageAnalytics struct {
	PagePath       string `json:"page_path"`
	Views          int64  `json:"views"`
	UniqueVisitors int64  `json:"unique_visitors"`
	AvgTimeOnPage  string `json:"avg_time_on_page"`
	BounceRate     string `json:"bounce_rate"`
	ConversionRate string `json:"conversion_rate"`
}

// DashboardStats summarizes site activity for the admin dashboard
type DashboardStats struct {
	TotalPageViews        int64  `json:"total_page_views"`
	UniqueVisitors        int64  `json:"unique_visitors"`
	TotalContacts         int64  `json:"total_contacts"`
	NewContactsToday      int64  `json:"new_contacts_today"`
	NewsletterSubscribers int64  `json:"newsletter_subscribers"`
	PublishedBlogPosts    int64  `json:"published_blog_posts"`
	ActiveServices        int64  `json:"active_services"`
	BounceRate            string `json:"bounce_rate"`
	ConversionRate        string `json:"conversion_rate"`
}

// DashboardStatsResponse wraps dashboard statistics
type DashboardStatsResponse struct {
	Message string         `json:"message"`
	Stats   DashboardStats `json:"stats"`
}

// SiteAnalyticsItem represents a daily snapshot in API responses
type SiteAnalyticsItem struct {
	ID                 uint     `json:"id"`
	Date               string   `json:"date"`
	PageViews          int      `json:"page_views"`
	UniqueVisitors     int      `json:"unique_visitors"`
	BounceRate         string   `json:"bounce_rate"`
	AvgSessionDuration string   `json:"avg_session_duration"`
	NewContacts        int      `json:"new_contacts"`
	ConversionRate     string   `json:"conversion_rate"`
	OrganicTraffic     int      `json:"organic_traffic"`
	DirectTraffic      int      `json:"direct_traffic"`
	ReferralTraffic    int      `json:"referral_traffic"`
	SocialTraffic      int      `json:"social_traffic"`
	DesktopUsers       int      `json:"desktop_users"`
	MobileUsers        int      `json:"mobile_users"`
	TabletUsers        int      `json:"tablet_users"`
	TopPages           []string `json:"top_pages"`
	TopServices        []string `json:"top_services"`
}

// ListSiteAnalyticsResponse returns daily snapshots
type ListSiteAnalyticsResponse struct {
	Message string              `json:"message"`
	Items   []SiteAnalyticsItem `json:"items"`
}
