package handlers

import (
	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// SubsidiaryHandler handles subsidiary company endpoints
type SubsidiaryHandler struct {
	subsidiaryFlow businessflow.SubsidiaryFlow
	validator      *validator.Validate
}

// NewSubsidiaryHandler creates a new subsidiary handler
func NewSubsidiaryHandler(subsidiaryFlow businessflow.SubsidiaryFlow) *SubsidiaryHandler {
	return &SubsidiaryHandler{
		subsidiaryFlow: subsidiaryFlow,
		validator:      validator.New(),
	}
}

// CreateSubsidiary handles subsidiary creation
// @Summary Create subsidiary
// @Tags subsidiaries
// @Accept json
// @Produce json
// @Param request body dto.SubsidiaryCreate true "Subsidiary payload"
// @Success 201 {object} dto.APIResponse{data=dto.SubsidiaryItem}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /api/v1/admin/subsidiaries [post]
func (h *SubsidiaryHandler) CreateSubsidiary(c fiber.Ctx) error {
	var req dto.SubsidiaryCreate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "create_subsidiary")
	defer cancel()

	subsidiary, err := h.subsidiaryFlow.CreateSubsidiary(ctx, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to create subsidiary", "SUBSIDIARY_CREATE_FAILED")
	}

	return successResponse(c, fiber.StatusCreated, "Subsidiary created successfully", subsidiary)
}

// UpdateSubsidiary handles partial subsidiary updates
// @Summary Update subsidiary
// @Tags subsidiaries
// @Accept json
// @Produce json
// @Param id path int true "Subsidiary ID"
// @Param request body dto.SubsidiaryUpdate true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.SubsidiaryItem}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /api/v1/admin/subsidiaries/{id} [patch]
func (h *SubsidiaryHandler) UpdateSubsidiary(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid subsidiary ID", businessflow.CodeValidationError, nil)
	}

	var req dto.SubsidiaryUpdate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "update_subsidiary")
	defer cancel()

	subsidiary, err := h.subsidiaryFlow.UpdateSubsidiary(ctx, id, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to update subsidiary", "SUBSIDIARY_UPDATE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Subsidiary updated successfully", subsidiary)
}

// GetSubsidiary returns a subsidiary by ID
// @Summary Get subsidiary
// @Tags subsidiaries
// @Produce json
// @Param id path int true "Subsidiary ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubsidiaryItem}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/subsidiaries/{id} [get]
func (h *SubsidiaryHandler) GetSubsidiary(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid subsidiary ID", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "get_subsidiary")
	defer cancel()

	subsidiary, err := h.subsidiaryFlow.GetSubsidiary(ctx, id)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch subsidiary", "SUBSIDIARY_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Subsidiary retrieved successfully", subsidiary)
}

// GetActiveSubsidiary returns an active subsidiary by slug
// @Summary Get active subsidiary by slug
// @Tags subsidiaries
// @Produce json
// @Param slug path string true "Subsidiary slug"
// @Success 200 {object} dto.APIResponse{data=dto.SubsidiaryItem}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/subsidiaries/{slug} [get]
func (h *SubsidiaryHandler) GetActiveSubsidiary(c fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid subsidiary slug", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "get_active_subsidiary")
	defer cancel()

	subsidiary, err := h.subsidiaryFlow.GetSubsidiaryBySlug(ctx, slug, true)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch subsidiary", "SUBSIDIARY_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Subsidiary retrieved successfully", subsidiary)
}

// ListSubsidiaries returns all subsidiaries for administration
// @Summary List subsidiaries
// @Tags subsidiaries
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param subsidiary_type query string false "Filter by type"
// @Param is_active query bool false "Filter by active flag"
// @Success 200 {object} dto.APIResponse{data=dto.ListSubsidiariesResponse}
// @Router /api/v1/admin/subsidiaries [get]
func (h *SubsidiaryHandler) ListSubsidiaries(c fiber.Ctx) error {
	req := dto.ListSubsidiariesRequest{
		ListRequest:    parseListRequest(c),
		SubsidiaryType: optionalQuery(c, "subsidiary_type"),
		IsActive:       optionalBoolQuery(c, "is_active"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "list_subsidiaries")
	defer cancel()

	subsidiaries, err := h.subsidiaryFlow.ListSubsidiaries(ctx, &req, false)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to list subsidiaries", "SUBSIDIARY_LIST_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Subsidiaries retrieved successfully", subsidiaries)
}

// ListActiveSubsidiaries returns active subsidiaries for public consumption
// @Summary List active subsidiaries
// @Tags subsidiaries
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param subsidiary_type query string false "Filter by type"
// @Success 200 {object} dto.APIResponse{data=dto.ListSubsidiariesResponse}
// @Router /api/v1/subsidiaries [get]
func (h *SubsidiaryHandler) ListActiveSubsidiaries(c fiber.Ctx) error {
	req := dto.ListSubsidiariesRequest{
		ListRequest:    parseListRequest(c),
		SubsidiaryType: optionalQuery(c, "subsidiary_type"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "list_active_subsidiaries")
	defer cancel()

	subsidiaries, err := h.subsidiaryFlow.ListSubsidiaries(ctx, &req, true)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to list subsidiaries", "SUBSIDIARY_LIST_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Subsidiaries retrieved successfully", subsidiaries)
}

// DeleteSubsidiary removes a subsidiary
// @Summary Delete subsidiary
// @Tags subsidiaries
// @Produce json
// @Param id path int true "Subsidiary ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/subsidiaries/{id} [delete]
func (h *SubsidiaryHandler) DeleteSubsidiary(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid subsidiary ID", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "delete_subsidiary")
	defer cancel()

	if err := h.subsidiaryFlow.DeleteSubsidiary(ctx, id); err != nil {
		return flowErrorResponse(c, err, "Failed to delete subsidiary", "SUBSIDIARY_DELETE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Subsidiary deleted successfully", nil)
}
