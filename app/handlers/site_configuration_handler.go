package handlers

import (
	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// SiteConfigurationHandler handles site settings endpoints
type SiteConfigurationHandler struct {
	configFlow businessflow.SiteConfigurationFlow
	validator  *validator.Validate
}

// NewSiteConfigurationHandler creates a new site configuration handler
func NewSiteConfigurationHandler(configFlow businessflow.SiteConfigurationFlow) *SiteConfigurationHandler {
	return &SiteConfigurationHandler{
		configFlow: configFlow,
		validator:  validator.New(),
	}
}

// CreateSetting handles setting creation
// @Summary Create site setting
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.SiteConfigurationCreate true "Setting payload"
// @Success 201 {object} dto.APIResponse{data=dto.SiteConfigurationItem}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /api/v1/admin/settings [post]
func (h *SiteConfigurationHandler) CreateSetting(c fiber.Ctx) error {
	var req dto.SiteConfigurationCreate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "create_setting")
	defer cancel()

	setting, err := h.configFlow.CreateSetting(ctx, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to create setting", "SETTING_CREATE_FAILED")
	}

	return successResponse(c, fiber.StatusCreated, "Setting created successfully", setting)
}

// UpdateSetting handles setting updates by key
// @Summary Update site setting
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body dto.SiteConfigurationUpdate true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.SiteConfigurationItem}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/settings/{key} [patch]
func (h *SiteConfigurationHandler) UpdateSetting(c fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid setting key", businessflow.CodeValidationError, nil)
	}

	var req dto.SiteConfigurationUpdate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "update_setting")
	defer cancel()

	setting, err := h.configFlow.UpdateSetting(ctx, key, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to update setting", "SETTING_UPDATE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Setting updated successfully", setting)
}

// GetSetting returns a setting by key
// @Summary Get site setting
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} dto.APIResponse{data=dto.SiteConfigurationItem}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/settings/{key} [get]
func (h *SiteConfigurationHandler) GetSetting(c fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid setting key", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "get_setting")
	defer cancel()

	setting, err := h.configFlow.GetSetting(ctx, key)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch setting", "SETTING_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Setting retrieved successfully", setting)
}

// ListSettings returns all settings, optionally filtered by category
// @Summary List site settings
// @Tags settings
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.APIResponse{data=dto.ListSiteConfigurationResponse}
// @Router /api/v1/admin/settings [get]
func (h *SiteConfigurationHandler) ListSettings(c fiber.Ctx) error {
	ctx, cancel := createRequestContext(c, "list_settings")
	defer cancel()

	settings, err := h.configFlow.ListSettings(ctx, optionalQuery(c, "category"))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to list settings", "SETTING_LIST_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Settings retrieved successfully", settings)
}

// DeleteSetting removes a setting by key
// @Summary Delete site setting
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/settings/{key} [delete]
func (h *SiteConfigurationHandler) DeleteSetting(c fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid setting key", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "delete_setting")
	defer cancel()

	if err := h.configFlow.DeleteSetting(ctx, key); err != nil {
		return flowErrorResponse(c, err, "Failed to delete setting", "SETTING_DELETE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Setting deleted successfully", nil)
}

// GetPublicConfig returns the cached public settings map
// @Summary Get public configuration
// @Description Returns all public settings as a key to value map
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.PublicConfigResponse}
// @Router /api/v1/config [get]
func (h *SiteConfigurationHandler) GetPublicConfig(c fiber.Ctx) error {
	ctx, cancel := createRequestContext(c, "get_public_config")
	defer cancel()

	config, err := h.configFlow.PublicConfig(ctx)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch public configuration", "CONFIG_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Public configuration retrieved successfully", config)
}
