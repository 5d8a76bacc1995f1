package handlers

import (
	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// CompanyInfoHandler handles the company profile endpoints
type CompanyInfoHandler struct {
	companyFlow businessflow.CompanyInfoFlow
	validator   *validator.Validate
}

// NewCompanyInfoHandler creates a new company info handler
func NewCompanyInfoHandler(companyFlow businessflow.CompanyInfoFlow) *CompanyInfoHandler {
	return &CompanyInfoHandler{
		companyFlow: companyFlow,
		validator:   validator.New(),
	}
}

// GetCompanyInfo returns the company profile
// @Summary Get company information
// @Tags company
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CompanyInfoResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/company [get]
func (h *CompanyInfoHandler) GetCompanyInfo(c fiber.Ctx) error {
	ctx, cancel := createRequestContext(c, "get_company_info")
	defer cancel()

	info, err := h.companyFlow.GetCompanyInfo(ctx)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch company information", "COMPANY_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Company information retrieved successfully", info)
}

// UpdateCompanyInfo applies partial updates to the company profile
// @Summary Update company information
// @Description Creates the profile on first update, then applies the provided fields
// @Tags company
// @Accept json
// @Produce json
// @Param request body dto.CompanyInfoUpdate true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyInfoResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /api/v1/admin/company [patch]
func (h *CompanyInfoHandler) UpdateCompanyInfo(c fiber.Ctx) error {
	var req dto.CompanyInfoUpdate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "update_company_info")
	defer cancel()

	info, err := h.companyFlow.UpdateCompanyInfo(ctx, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to update company information", "COMPANY_UPDATE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Company information updated successfully", info)
}
