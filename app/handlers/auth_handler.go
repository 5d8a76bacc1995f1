package handlers

import (
	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// AuthHandler handles staff authentication endpoints
type AuthHandler struct {
	loginFlow businessflow.LoginFlow
	validator *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(loginFlow businessflow.LoginFlow) *AuthHandler {
	return &AuthHandler{
		loginFlow: loginFlow,
		validator: validator.New(),
	}
}

// Login authenticates a staff user
// @Summary Staff login
// @Description Authenticates by username or email and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "login")
	defer cancel()

	result, err := h.loginFlow.Login(ctx, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Login failed", "LOGIN_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Login successful", result)
}

// Refresh exchanges a refresh token for a new token pair
// @Summary Refresh tokens
// @Description Issues a new access and refresh token pair from a valid refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "refresh")
	defer cancel()

	result, err := h.loginFlow.Refresh(ctx, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Token refresh failed", "REFRESH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Token refreshed", result)
}
