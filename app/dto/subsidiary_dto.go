package dto

// SubsidiaryCreate carries data to create a new business unit profile
type SubsidiaryCreate struct {
	Name                string            `json:"name" validate:"required,max=200"`
	Slug                string            `json:"slug" validate:"required,max=200"`
	SubsidiaryType      string            `json:"subsidiary_type" validate:"required,max=30"`
	Tagline             string            `json:"tagline" validate:"omitempty,max=300"`
	Description         string            `json:"description" validate:"required,max=1000"`
	DetailedDescription string            `json:"detailed_description" validate:"omitempty"`
	LogoURL             string            `json:"logo_url" validate:"omitempty,max=500"`
	WebsiteURL          string            `json:"website_url" validate:"omitempty,max=500"`
	ContactEmail        string            `json:"contact_email" validate:"omitempty,email,max=255"`
	ContactPhone        string            `json:"contact_phone" validate:"omitempty,max=50"`
	FocusAreas          []string          `json:"focus_areas,omitempty" validate:"omitempty"`
	KeyServices         []string          `json:"key_services,omitempty" validate:"omitempty"`
	IsActive            *bool             `json:"is_active,omitempty" validate:"omitempty"`
	SortOrder           *int              `json:"sort_order,omitempty" validate:"omitempty"`
	SocialLinks         map[string]string `json:"social_links,omitempty" validate:"omitempty"`
	AdditionalInfo      map[string]any    `json:"additional_info,omitempty" validate:"omitempty"`
}

// SubsidiaryUpdate carries a partial update; nil fields leave the subsidiary unchanged
type SubsidiaryUpdate struct {
	Name                *string           `json:"name,omitempty" validate:"omitempty,max=200"`
	SubsidiaryType      *string           `json:"subsidiary_type,omitempty" validate:"omitempty,max=30"`
	Tagline             *string           `json:"tagline,omitempty" validate:"omitempty,max=300"`
	Description         *string           `json:"description,omitempty" validate:"omitempty,max=1000"`
	DetailedDescription *string           `json:"detailed_description,omitempty" validate:"omitempty"`
	LogoURL             *string           `json:"logo_url,omitempty" validate:"omitempty,max=500"`
	WebsiteURL          *string           `json:"website_url,omitempty" validate:"omitempty,max=500"`
	ContactEmail        *string           `json:"contact_email,omitempty" validate:"omitempty,email,max=255"`
	ContactPhone        *string           `json:"contact_phone,omitempty" validate:"omitempty,max=50"`
	FocusAreas          []string          `json:"focus_areas,omitempty" validate:"omitempty"`
	KeyServices         []string          `json:"key_services,omitempty" validate:"omitempty"`
	IsActive            *bool             `json:"is_active,omitempty" validate:"omitempty"`
	SortOrder           *int              `json:"sort_order,omitempty" validate:"omitempty"`
	SocialLinks         map[string]string `json:"social_links,omitempty" validate:"omitempty"`
	AdditionalInfo      map[string]any    `json:"additional_info,omitempty" validate:"omitempty"`
}

// SubsidiaryItem represents a subsidiary in API responses
type SubsidiaryItem struct {
	ID                  uint              `json:"id"`
	Name                string            `json:"name"`
	Slug                string            `json:"slug"`
	SubsidiaryType      string            `json:"subsidiary_type"`
	Tagline             string            `json:"tagline"`
	Description         string            `json:"description"`
	DetailedDescription string            `json:"detailed_description"`
	LogoURL             string            `json:"logo_url"`
	WebsiteURL          string            `json:"website_url"`
	ContactEmail        string            `json:"contact_email"`
	ContactPhone        string            `json:"contact_phone"`
	FocusAreas          []string          `json:"focus_areas"`
	KeyServices         []string          `json:"key_services"`
	IsActive            bool              `json:"is_active"`
	SortOrder           int               `json:"sort_order"`
	SocialLinks         map[string]string `json:"social_links"`
	AdditionalInfo      map[string]any    `json:"additional_info"`
	CreatedAt           string            `json:"created_at"`
	UpdatedAt           string            `json:"updated_at"`
}

// ListSubsidiariesRequest filters for listing subsidiaries
type ListSubsidiariesRequest struct {
	ListRequest
	SubsidiaryType *string `json:"subsidiary_type,omitempty" validate:"omitempty,max=30"`
	IsActive       *bool   `json:"is_active,omitempty" validate:"omitempty"`
}

// ListSubsidiariesResponse returns subsidiary items
type ListSubsidiariesResponse struct {
	Message string           `json:"message"`
	Items   []SubsidiaryItem `json:"items"`
	Total   int64            `json:"total"`
}
