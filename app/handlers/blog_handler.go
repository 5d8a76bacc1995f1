package handlers

import (
	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// BlogHandler handles blog post endpoints
type BlogHandler struct {
	blogFlow  businessflow.BlogFlow
	validator *validator.Validate
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogFlow businessflow.BlogFlow) *BlogHandler {
	return &BlogHandler{
		blogFlow:  blogFlow,
		validator: validator.New(),
	}
}

// CreateBlogPost handles blog post creation
// @Summary Create blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param request body dto.BlogPostCreate true "Blog post payload"
// @Success 201 {object} dto.APIResponse{data=dto.BlogPostItem}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /api/v1/admin/blog [post]
func (h *BlogHandler) CreateBlogPost(c fiber.Ctx) error {
	var req dto.BlogPostCreate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "create_blog_post")
	defer cancel()

	post, err := h.blogFlow.CreateBlogPost(ctx, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to create blog post", "BLOG_CREATE_FAILED")
	}

	return successResponse(c, fiber.StatusCreated, "Blog post created successfully", post)
}

// UpdateBlogPost handles partial blog post updates
// @Summary Update blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param id path int true "Blog post ID"
// @Param request body dto.BlogPostUpdate true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.BlogPostItem}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /api/v1/admin/blog/{id} [patch]
func (h *BlogHandler) UpdateBlogPost(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid blog post ID", businessflow.CodeValidationError, nil)
	}

	var req dto.BlogPostUpdate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "update_blog_post")
	defer cancel()

	post, err := h.blogFlow.UpdateBlogPost(ctx, id, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to update blog post", "BLOG_UPDATE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Blog post updated successfully", post)
}

// GetBlogPost returns a blog post by ID
// @Summary Get blog post
// @Tags blog
// @Produce json
// @Param id path int true "Blog post ID"
// @Success 200 {object} dto.APIResponse{data=dto.BlogPostItem}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/blog/{id} [get]
func (h *BlogHandler) GetBlogPost(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid blog post ID", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "get_blog_post")
	defer cancel()

	post, err := h.blogFlow.GetBlogPost(ctx, id)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch blog post", "BLOG_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Blog post retrieved successfully", post)
}

// ReadBlogPost returns a published post by slug and counts the view
// @Summary Read published blog post
// @Description Fetches a published post by slug and increments its view count
// @Tags blog
// @Produce json
// @Param slug path string true "Blog post slug"
// @Success 200 {object} dto.APIResponse{data=dto.BlogPostItem}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/blog/{slug} [get]
func (h *BlogHandler) ReadBlogPost(c fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid blog post slug", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "read_blog_post")
	defer cancel()

	post, err := h.blogFlow.ReadBlogPost(ctx, slug)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch blog post", "BLOG_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Blog post retrieved successfully", post)
}

// ListBlogPosts returns all blog posts for administration
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param category query string false "Filter by category"
// @Param tag query string false "Filter by tag"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.APIResponse{data=dto.ListBlogPostsResponse}
// @Router /api/v1/admin/blog [get]
func (h *BlogHandler) ListBlogPosts(c fiber.Ctx) error {
	req := dto.ListBlogPostsRequest{
		ListRequest: parseListRequest(c),
		Category:    optionalQuery(c, "category"),
		Tag:         optionalQuery(c, "tag"),
		Status:      optionalQuery(c, "status"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "list_blog_posts")
	defer cancel()

	posts, err := h.blogFlow.ListBlogPosts(ctx, &req, false)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to list blog posts", "BLOG_LIST_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Blog posts retrieved successfully", posts)
}

// ListPublishedBlogPosts returns published posts for public consumption
// @Summary List published blog posts
// @Tags blog
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param category query string false "Filter by category"
// @Param tag query string false "Filter by tag"
// @Success 200 {object} dto.APIResponse{data=dto.ListBlogPostsResponse}
// @Router /api/v1/blog [get]
func (h *BlogHandler) ListPublishedBlogPosts(c fiber.Ctx) error {
	req := dto.ListBlogPostsRequest{
		ListRequest: parseListRequest(c),
		Category:    optionalQuery(c, "category"),
		Tag:         optionalQuery(c, "tag"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "list_published_blog_posts")
	defer cancel()

	posts, err := h.blogFlow.ListBlogPosts(ctx, &req, true)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to list blog posts", "BLOG_LIST_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Blog posts retrieved successfully", posts)
}

// DeleteBlogPost removes a blog post
// @Summary Delete blog post
// @Tags blog
// @Produce json
// @Param id path int true "Blog post ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/blog/{id} [delete]
func (h *BlogHandler) DeleteBlogPost(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid blog post ID", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "delete_blog_post")
	defer cancel()

	if err := h.blogFlow.DeleteBlogPost(ctx, id); err != nil {
		return flowErrorResponse(c, err, "Failed to delete blog post", "BLOG_DELETE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Blog post deleted successfully", nil)
}
