package handlers

import (
	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// ServiceHandler handles service catalog endpoints
type ServiceHandler struct {
	serviceFlow businessflow.ServiceFlow
	validator   *validator.Validate
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(serviceFlow businessflow.ServiceFlow) *ServiceHandler {
	return &ServiceHandler{
		serviceFlow: serviceFlow,
		validator:   validator.New(),
	}
}

// CreateService handles service creation
// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Param request body dto.ServiceCreate true "Service payload"
// @Success 201 {object} dto.APIResponse{data=dto.ServiceItem}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /api/v1/admin/services [post]
func (h *ServiceHandler) CreateService(c fiber.Ctx) error {
	var req dto.ServiceCreate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "create_service")
	defer cancel()

	service, err := h.serviceFlow.CreateService(ctx, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to create service", "SERVICE_CREATE_FAILED")
	}

	return successResponse(c, fiber.StatusCreated, "Service created successfully", service)
}

// UpdateService handles partial service updates
// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param request body dto.ServiceUpdate true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ServiceItem}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /api/v1/admin/services/{id} [patch]
func (h *ServiceHandler) UpdateService(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid service ID", businessflow.CodeValidationError, nil)
	}

	var req dto.ServiceUpdate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "update_service")
	defer cancel()

	service, err := h.serviceFlow.UpdateService(ctx, id, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to update service", "SERVICE_UPDATE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Service updated successfully", service)
}

// GetService returns a service by ID
// @Summary Get service
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} dto.APIResponse{data=dto.ServiceItem}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/services/{id} [get]
func (h *ServiceHandler) GetService(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid service ID", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "get_service")
	defer cancel()

	service, err := h.serviceFlow.GetService(ctx, id)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch service", "SERVICE_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Service retrieved successfully", service)
}

// GetPublishedService returns a published service by slug
// @Summary Get published service by slug
// @Tags services
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} dto.APIResponse{data=dto.ServiceItem}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/services/{slug} [get]
func (h *ServiceHandler) GetPublishedService(c fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid service slug", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "get_published_service")
	defer cancel()

	service, err := h.serviceFlow.GetServiceBySlug(ctx, slug, true)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch service", "SERVICE_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Service retrieved successfully", service)
}

// ListServices returns all services for administration
// @Summary List services
// @Tags services
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param category query string false "Filter by category"
// @Param is_featured query bool false "Filter by featured flag"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.APIResponse{data=dto.ListServicesResponse}
// @Router /api/v1/admin/services [get]
func (h *ServiceHandler) ListServices(c fiber.Ctx) error {
	req := dto.ListServicesRequest{
		ListRequest: parseListRequest(c),
		Category:    optionalQuery(c, "category"),
		IsFeatured:  optionalBoolQuery(c, "is_featured"),
		Status:      optionalQuery(c, "status"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "list_services")
	defer cancel()

	services, err := h.serviceFlow.ListServices(ctx, &req, false)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to list services", "SERVICE_LIST_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Services retrieved successfully", services)
}

// ListPublishedServices returns published services for public consumption
// @Summary List published services
// @Tags services
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param category query string false "Filter by category"
// @Param is_featured query bool false "Filter by featured flag"
// @Success 200 {object} dto.APIResponse{data=dto.ListServicesResponse}
// @Router /api/v1/services [get]
func (h *ServiceHandler) ListPublishedServices(c fiber.Ctx) error {
	req := dto.ListServicesRequest{
		ListRequest: parseListRequest(c),
		Category:    optionalQuery(c, "category"),
		IsFeatured:  optionalBoolQuery(c, "is_featured"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "list_published_services")
	defer cancel()

	services, err := h.serviceFlow.ListServices(ctx, &req, true)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to list services", "SERVICE_LIST_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Services retrieved successfully", services)
}

// DeleteService removes a service
// @Summary Delete service
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/services/{id} [delete]
func (h *ServiceHandler) DeleteService(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid service ID", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "delete_service")
	defer cancel()

	if err := h.serviceFlow.DeleteService(ctx, id); err != nil {
		return flowErrorResponse(c, err, "Failed to delete service", "SERVICE_DELETE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Service deleted successfully", nil)
}
