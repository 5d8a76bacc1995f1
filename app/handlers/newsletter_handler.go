package handlers

import (
	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// NewsletterHandler handles newsletter subscription endpoints
type NewsletterHandler struct {
	newsletterFlow businessflow.NewsletterFlow
	validator      *validator.Validate
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(newsletterFlow businessflow.NewsletterFlow) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterFlow: newsletterFlow,
		validator:      validator.New(),
	}
}

// Subscribe handles newsletter signups
// @Summary Subscribe to newsletter
// @Description Registers an email address, or reactivates a previously unsubscribed one
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body dto.NewsletterSubscriberCreate true "Subscription payload"
// @Success 201 {object} dto.APIResponse{data=dto.SubscribeResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /api/v1/newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c fiber.Ctx) error {
	var req dto.NewsletterSubscriberCreate
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "newsletter_subscribe")
	defer cancel()

	result, err := h.newsletterFlow.Subscribe(ctx, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to subscribe", "NEWSLETTER_SUBSCRIBE_FAILED")
	}

	return successResponse(c, fiber.StatusCreated, result.Message, result)
}

// VerifySubscription confirms a subscription via its emailed token
// @Summary Verify newsletter subscription
// @Tags newsletter
// @Produce json
// @Param token path string true "Verification token"
// @Success 200 {object} dto.APIResponse{data=dto.NewsletterSubscriberItem}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /api/v1/newsletter/verify/{token} [post]
func (h *NewsletterHandler) VerifySubscription(c fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid verification token", businessflow.CodeValidationError, nil)
	}

	ctx, cancel := createRequestContext(c, "newsletter_verify")
	defer cancel()

	subscriber, err := h.newsletterFlow.VerifySubscription(ctx, token)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to verify subscription", "NEWSLETTER_VERIFY_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Subscription verified successfully", subscriber)
}

// Unsubscribe removes an email from the active list
// @Summary Unsubscribe from newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body dto.UnsubscribeRequest true "Unsubscribe payload"
// @Success 200 {object} dto.APIResponse{data=dto.NewsletterSubscriberItem}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/newsletter/unsubscribe [post]
func (h *NewsletterHandler) Unsubscribe(c fiber.Ctx) error {
	var req dto.UnsubscribeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "newsletter_unsubscribe")
	defer cancel()

	subscriber, err := h.newsletterFlow.Unsubscribe(ctx, req.Email)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to unsubscribe", "NEWSLETTER_UNSUBSCRIBE_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Unsubscribed successfully", subscriber)
}

// ListSubscribers returns subscribers for administration
// @Summary List newsletter subscribers
// @Tags newsletter
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param active_only query bool false "Only active subscribers"
// @Success 200 {object} dto.APIResponse{data=dto.ListSubscribersResponse}
// @Router /api/v1/admin/newsletter/subscribers [get]
func (h *NewsletterHandler) ListSubscribers(c fiber.Ctx) error {
	req := parseListRequest(c)
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	activeOnly := false
	if parsed := optionalBoolQuery(c, "active_only"); parsed != nil {
		activeOnly = *parsed
	}

	ctx, cancel := createRequestContext(c, "list_subscribers")
	defer cancel()

	subscribers, err := h.newsletterFlow.ListSubscribers(ctx, &req, activeOnly)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to list subscribers", "NEWSLETTER_LIST_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Subscribers retrieved successfully", subscribers)
}
