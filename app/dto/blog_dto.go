package dto

// BlogPostCreate carries data to create a new blog post
type BlogPostCreate struct {
	Title            string         `json:"title" validate:"required,max=200"`
	Slug             string         `json:"slug" validate:"required,max=200"`
	Excerpt          string         `json:"excerpt" validate:"omitempty,max=500"`
	Content          string         `json:"content" validate:"omitempty"`
	FeaturedImageURL string         `json:"featured_image_url" validate:"omitempty,max=500"`
	AuthorID         *uint          `json:"author_id,omitempty" validate:"omitempty"`
	Category         string         `json:"category" validate:"omitempty,max=100"`
	Tags             []string       `json:"tags,omitempty" validate:"omitempty"`
	MetaDescription  string         `json:"meta_description" validate:"omitempty,max=500"`
	MetaKeywords     string         `json:"meta_keywords" validate:"omitempty,max=500"`
	SEOData          map[string]any `json:"seo_data,omitempty" validate:"omitempty"`
}

// BlogPostUpdate carries a partial update; nil fields leave the post unchanged
type BlogPostUpdate struct {
	Title            *string        `json:"title,omitempty" validate:"omitempty,max=200"`
	Excerpt          *string        `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Content          *string        `json:"content,omitempty" validate:"omitempty"`
	FeaturedImageURL *string        `json:"featured_image_url,omitempty" validate:"omitempty,max=500"`
	Category         *string        `json:"category,omitempty" validate:"omitempty,max=100"`
	Tags             []string       `json:"tags,omitempty" validate:"omitempty"`
	Status           *string        `json:"status,omitempty" validate:"omitempty,max=20"`
	IsFeatured       *bool          `json:"is_featured,omitempty" validate:"omitempty"`
	MetaDescription  *string        `json:"meta_description,omitempty" validate:"omitempty,max=500"`
	MetaKeywords     *string        `json:"meta_keywords,omitempty" validate:"omitempty,max=500"`
	SEOData          map[string]any `json:"seo_data,omitempty" validate:"omitempty"`
}

// BlogPostItem represents a blog post in API responses
type BlogPostItem struct {
	ID               uint           `json:"id"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	Excerpt          string         `json:"excerpt"`
	Content          string         `json:"content"`
	FeaturedImageURL string         `json:"featured_image_url"`
	AuthorID         *uint          `json:"author_id,omitempty"`
	AuthorName       *string        `json:"author_name,omitempty"`
	Category         string         `json:"category"`
	Tags             []string       `json:"tags"`
	Status           string         `json:"status"`
	IsFeatured       bool           `json:"is_featured"`
	ViewCount        int            `json:"view_count"`
	PublishedAt      *string        `json:"published_at,omitempty"`
	MetaDescription  string         `json:"meta_description"`
	MetaKeywords     string         `json:"meta_keywords"`
	SEOData          map[string]any `json:"seo_data"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
}

// ListBlogPostsRequest filters for listing posts
type ListBlogPostsRequest struct {
	ListRequest
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Tag      *string `json:"tag,omitempty" validate:"omitempty,max=100"`
	Status   *string `json:"status,omitempty" validate:"omitempty,max=20"`
}

// ListBlogPostsResponse returns blog post items
type ListBlogPostsResponse struct {
	Message string         `json:"message"`
	Items   []BlogPostItem `json:"items"`
	Total   int64          `json:"total"`
}
