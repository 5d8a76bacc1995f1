package handlers

import (
	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// PageHandler handles CMS page endpoints
type PageHandler struct {
	pageFlow  businessflow.PageFlow
	validator *validator.Validate
}

// NewPageHandler creates a new page handler
func NewPageHandler(pageFlow businessflow.PageFlow) *PageHandler {
	return &PageHandler{
		pageFlow:  pageFlow,
		validator: validator.New(),
	}
}

// CreatePage handles page creation
// @Summary Create page
// @Description Creates a CMS page with a unique slug
// @Tags pages
// @Accept json
// @Produce json
// @Param request body dto.PageCreate true "Page payload"
// @Success 201 {object} dto.APIResponse{data=dto.PageItem}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /api/v1/admin/pages [post]
func (h *PageHandler) CreatePage(c fiber.Ctx) error {
	var req dto.PageCreate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "create_page")
	defer cancel()

	page, err := h.pageFlow.CreatePage(ctx, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to create page", "PAGE_CREATE_FAILED")
	}

	return successResponse(c, fiber.StatusCreated, "Page created successfully", page)
}

// UpdatePage handles partial page updates
// @Summary Update page
// @Description Applies the provided fields to an existing page
// @Tags pages
// @Accept json
// @Produce json
// @Param id path int true "Page ID"
// @Param request body dto.PageUpdate true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.PageItem}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /api/v1/admin/pages/{id} [patch]
func (h *PageHandler) UpdatePage(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid page ID", businessflow.CodeValidationError, nil)
	}

	var req dto.PageUpdate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "update_page")
	defer cancel()

	page, err := h.pageFlow.UpdatePage(ctx, id, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to update page", "PAGE_UPDATE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Page updated successfully", page)
}

// GetPage returns a page by ID
// @Summary Get page
// @Tags pages
// @Produce json
// @Param id path int true "Page ID"
// @Success 200 {object} dto.APIResponse{data=dto.PageItem}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/pages/{id} [get]
func (h *PageHandler) GetPage(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid page ID", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "get_page")
	defer cancel()

	page, err := h.pageFlow.GetPage(ctx, id)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch page", "PAGE_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Page retrieved successfully", page)
}

// GetPublishedPage returns a published page by slug
// @Summary Get published page by slug
// @Tags pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} dto.APIResponse{data=dto.PageItem}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/pages/{slug} [get]
func (h *PageHandler) GetPublishedPage(c fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid page slug", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "get_published_page")
	defer cancel()

	page, err := h.pageFlow.GetPageBySlug(ctx, slug, true)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch page", "PAGE_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Page retrieved successfully", page)
}

// GetHomepage returns the published homepage
// @Summary Get homepage
// @Tags pages
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.PageItem}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/pages/homepage [get]
func (h *PageHandler) GetHomepage(c fiber.Ctx) error {
	ctx, cancel := createRequestContext(c, "get_homepage")
	defer cancel()

	page, err := h.pageFlow.GetHomepage(ctx)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch homepage", "PAGE_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Homepage retrieved successfully", page)
}

// ListPages returns all pages for administration
// @Summary List pages
// @Tags pages
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.APIResponse{data=dto.ListPagesResponse}
// @Router /api/v1/admin/pages [get]
func (h *PageHandler) ListPages(c fiber.Ctx) error {
	req := dto.ListPagesRequest{
		ListRequest: parseListRequest(c),
		Status:      optionalQuery(c, "status"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "list_pages")
	defer cancel()

	pages, err := h.pageFlow.ListPages(ctx, &req, false)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to list pages", "PAGE_LIST_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Pages retrieved successfully", pages)
}

// ListPublishedPages returns published pages for public consumption
// @Summary List published pages
// @Tags pages
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListPagesResponse}
// @Router /api/v1/pages [get]
func (h *PageHandler) ListPublishedPages(c fiber.Ctx) error {
	req := dto.ListPagesRequest{ListRequest: parseListRequest(c)}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "list_published_pages")
	defer cancel()

	pages, err := h.pageFlow.ListPages(ctx, &req, true)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to list pages", "PAGE_LIST_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Pages retrieved successfully", pages)
}

// DeletePage removes a page
// @Summary Delete page
// @Tags pages
// @Produce json
// @Param id path int true "Page ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/pages/{id} [delete]
func (h *PageHandler) DeletePage(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid page ID", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "delete_page")
	defer cancel()

	if err := h.pageFlow.DeletePage(ctx, id); err != nil {
		return flowErrorResponse(c, err, "Failed to delete page", "PAGE_DELETE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Page deleted successfully", nil)
}
