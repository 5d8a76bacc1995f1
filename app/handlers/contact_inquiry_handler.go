package handlers

import (
	"fmt"
	"time"

	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// ContactInquiryHandler handles contact form endpoints
type ContactInquiryHandler struct {
	inquiryFlow businessflow.ContactInquiryFlow
	validator   *validator.Validate
}

// NewContactInquiryHandler creates a new contact inquiry handler
func NewContactInquiryHandler(inquiryFlow businessflow.ContactInquiryFlow) *ContactInquiryHandler {
	return &ContactInquiryHandler{
		inquiryFlow: inquiryFlow,
		validator:   validator.New(),
	}
}

// SubmitInquiry handles public contact form submissions
// @Summary Submit contact inquiry
// @Description Records a contact form submission along with caller network identity
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactInquiryCreate true "Inquiry payload"
// @Success 201 {object} dto.APIResponse{data=dto.ContactInquiryItem}
// @Failure 400 {object} dto.APIResponse
// @Router /api/v1/contact [post]
func (h *ContactInquiryHandler) SubmitInquiry(c fiber.Ctx) error {
	var req dto.ContactInquiryCreate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "submit_inquiry")
	defer cancel()

	inquiry, err := h.inquiryFlow.SubmitInquiry(ctx, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to submit inquiry", "INQUIRY_SUBMIT_FAILED")
	}

	return successResponse(c, fiber.StatusCreated, "Inquiry submitted successfully", inquiry)
}

// UpdateInquiry handles inquiry triage updates
// @Summary Update contact inquiry
// @Description Updates inquiry status, priority, assignment, notes and lead score
// @Tags contact
// @Accept json
// @Produce json
// @Param id path int true "Inquiry ID"
// @Param request body dto.ContactInquiryUpdate true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ContactInquiryItem}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/inquiries/{id} [patch]
func (h *ContactInquiryHandler) UpdateInquiry(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid inquiry ID", businessflow.CodeValidationError, nil)
	}

	var req dto.ContactInquiryUpdate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "update_inquiry")
	defer cancel()

	inquiry, err := h.inquiryFlow.UpdateInquiry(ctx, id, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to update inquiry", "INQUIRY_UPDATE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Inquiry updated successfully", inquiry)
}

// GetInquiry returns an inquiry by ID
// @Summary Get contact inquiry
// @Tags contact
// @Produce json
// @Param id path int true "Inquiry ID"
// @Success 200 {object} dto.APIResponse{data=dto.ContactInquiryItem}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/admin/inquiries/{id} [get]
func (h *ContactInquiryHandler) GetInquiry(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid inquiry ID", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "get_inquiry")
	defer cancel()

	inquiry, err := h.inquiryFlow.GetInquiry(ctx, id)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch inquiry", "INQUIRY_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Inquiry retrieved successfully", inquiry)
}

// ListInquiries returns inquiries matching the requested filters
// @Summary List contact inquiries
// @Tags contact
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param email query string false "Filter by email"
// @Success 200 {object} dto.APIResponse{data=dto.ListContactInquiriesResponse}
// @Router /api/v1/admin/inquiries [get]
func (h *ContactInquiryHandler) ListInquiries(c fiber.Ctx) error {
	req := dto.ListContactInquiriesRequest{
		ListRequest: parseListRequest(c),
		Status:      optionalQuery(c, "status"),
		Priority:    optionalQuery(c, "priority"),
		Email:       optionalQuery(c, "email"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "list_inquiries")
	defer cancel()

	inquiries, err := h.inquiryFlow.ListInquiries(ctx, &req)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to list inquiries", "INQUIRY_LIST_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Inquiries retrieved successfully", inquiries)
}

// ExportInquiries streams inquiries as an Excel workbook
// @Summary Export contact inquiries
// @Description Builds an xlsx workbook of inquiries matching the requested filters
// @Tags contact
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param email query string false "Filter by email"
// @Success 200 {file} binary
// @Router /api/v1/admin/inquiries/export [get]
func (h *ContactInquiryHandler) ExportInquiries(c fiber.Ctx) error {
	req := dto.ListContactInquiriesRequest{
		Status:   optionalQuery(c, "status"),
		Priority: optionalQuery(c, "priority"),
		Email:    optionalQuery(c, "email"),
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "export_inquiries")
	defer cancel()

	workbook, err := h.inquiryFlow.ExportInquiries(ctx, &req)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to export inquiries", "INQUIRY_EXPORT_FAILED")
	}

	filename := fmt.Sprintf("inquiries_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(workbook)
}
