package dto

// ServiceCreate carries data to create a new service listing
type ServiceCreate struct {
	Title               string         `json:"title" validate:"required,max=200"`
	Slug                string         `json:"slug" validate:"required,max=200"`
	Description         string         `json:"description" validate:"required,max=1000"`
	DetailedDescription string         `json:"detailed_description" validate:"omitempty"`
	Category            string         `json:"category" validate:"required,max=30"`
	Icon                string         `json:"icon" validate:"omitempty,max=100"`
	ImageURL            string         `json:"image_url" validate:"omitempty,max=500"`
	Features            []string       `json:"features,omitempty" validate:"omitempty"`
	Examples            []string       `json:"examples,omitempty" validate:"omitempty"`
	IsFeatured          *bool          `json:"is_featured,omitempty" validate:"omitempty"`
	SortOrder           *int           `json:"sort_order,omitempty" validate:"omitempty"`
	Status              *string        `json:"status,omitempty" validate:"omitempty,max=20"`
	ExtraData           map[string]any `json:"extra_data,omitempty" validate:"omitempty"`
}

// ServiceUpdate carries a partial update; nil fields leave the service unchanged
type ServiceUpdate struct {
	Title               *string        `json:"title,omitempty" validate:"omitempty,max=200"`
	Description         *string        `json:"description,omitempty" validate:"omitempty,max=1000"`
	DetailedDescription *string        `json:"detailed_description,omitempty" validate:"omitempty"`
	Category            *string        `json:"category,omitempty" validate:"omitempty,max=30"`
	Icon                *string        `json:"icon,omitempty" validate:"omitempty,max=100"`
	ImageURL            *string        `json:"image_url,omitempty" validate:"omitempty,max=500"`
	Features            []string       `json:"features,omitempty" validate:"omitempty"`
	Examples            []string       `json:"examples,omitempty" validate:"omitempty"`
	IsFeatured          *bool          `json:"is_featured,omitempty" validate:"omitempty"`
	SortOrder           *int           `json:"sort_order,omitempty" validate:"omitempty"`
	Status              *string        `json:"status,omitempty" validate:"omitempty,max=20"`
	ExtraData           map[string]any `json:"extra_data,omitempty" validate:"omitempty"`
}

// ServiceItem represents a service in API responses
type ServiceItem struct {
	ID                  uint           `json:"id"`
	Title               string         `json:"title"`
	Slug                string         `json:"slug"`
	Description         string         `json:"description"`
	DetailedDescription string         `json:"detailed_description"`
	Category            string         `json:"category"`
	Icon                string         `json:"icon"`
	ImageURL            string         `json:"image_url"`
	Features            []string       `json:"features"`
	Examples            []string       `json:"examples"`
	IsFeatured          bool           `json:"is_featured"`
	SortOrder           int            `json:"sort_order"`
	Status              string         `json:"status"`
	ExtraData           map[string]any `json:"extra_data"`
	CreatedAt           string         `json:"created_at"`
	UpdatedAt           string         `json:"updated_at"`
}

// ListServicesRequest filters for listing services
type ListServicesRequest struct {
	ListRequest
	Category   *string `json:"category,omitempty" validate:"omitempty,max=30"`
	IsFeatured *bool   `json:"is_featured,omitempty" validate:"omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,max=20"`
}

// ListServicesResponse returns service items
type ListServicesResponse struct {
	Message string        `json:"message"`
	Items   []ServiceItem `json:"items"`
	Total   int64         `json:"total"`
}
