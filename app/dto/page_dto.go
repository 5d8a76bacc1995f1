package dto

// PageCreate carries data to create a new static page
type PageCreate struct {
	Title           string         `json:"title" validate:"required,max=200"`
	Slug            string         `json:"slug" validate:"required,max=200"`
	Content         string         `json:"content" validate:"omitempty"`
	MetaDescription string         `json:"meta_description" validate:"omitempty,max=500"`
	MetaKeywords    string         `json:"meta_keywords" validate:"omitempty,max=500"`
	Status          *string        `json:"status,omitempty" validate:"omitempty,max=20"`
	IsHomepage      *bool          `json:"is_homepage,omitempty" validate:"omitempty"`
	SortOrder       *int           `json:"sort_order,omitempty" validate:"omitempty"`
	SEOData         map[string]any `json:"seo_data,omitempty" validate:"omitempty"`
}

// PageUpdate carries a partial update; nil fields leave the page unchanged
type PageUpdate struct {
	Title           *string        `json:"title,omitempty" validate:"omitempty,max=200"`
	Content         *string        `json:"content,omitempty" validate:"omitempty"`
	MetaDescription *string        `json:"meta_description,omitempty" validate:"omitempty,max=500"`
	MetaKeywords    *string        `json:"meta_keywords,omitempty" validate:"omitempty,max=500"`
	Status          *string        `json:"status,omitempty" validate:"omitempty,max=20"`
	IsHomepage      *bool          `json:"is_homepage,omitempty" validate:"omitempty"`
	SortOrder       *int           `json:"sort_order,omitempty" validate:"omitempty"`
	SEOData         map[string]any `json:"seo_data,omitempty" validate:"omitempty"`
}

// PageItem represents a page in API responses
type PageItem struct {
	ID              uint           `json:"id"`
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	Content         string         `json:"content"`
	MetaDescription string         `json:"meta_description"`
	MetaKeywords    string         `json:"meta_keywords"`
	Status          string         `json:"status"`
	IsHomepage      bool           `json:"is_homepage"`
	SortOrder       int            `json:"sort_order"`
	SEOData         map[string]any `json:"seo_data"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
}

// ListPagesRequest filters for listing pages
type ListPagesRequest struct {
	ListRequest
	Status *string `json:"status,omitempty" validate:"omitempty,max=20"`
}

// ListPagesResponse returns page items
type ListPagesResponse struct {
	Message string     `json:"message"`
	Items   []PageItem `json:"items"`
	Total   int64      `json:"total"`
}
