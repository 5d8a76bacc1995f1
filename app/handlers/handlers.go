// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

const requestTimeout = 30 * time.Second

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", err.Field(), err.Param())
	default:
		return err.Field() + " is invalid"
	}
}

func errorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func successResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// validationErrorResponse renders validator failures as a VALIDATION_ERROR
func validationErrorResponse(c fiber.Ctx, err error) error {
	var validationErrors []string
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range fieldErrors {
			validationErrors = append(validationErrors, getValidationErrorMessage(e))
		}
	} else {
		validationErrors = append(validationErrors, err.Error())
	}
	return errorResponse(c, fiber.StatusBadRequest, "Validation failed", businessflow.CodeValidationError, validationErrors)
}

// flowErrorResponse maps business error codes onto HTTP status codes
func flowErrorResponse(c fiber.Ctx, err error, fallbackMessage, fallbackCode string) error {
	if be, ok := err.(*businessflow.BusinessError); ok {
		switch be.Code {
		case businessflow.CodeValidationError:
			return errorResponse(c, fiber.StatusBadRequest, be.Message, be.Code, be.Error())
		case businessflow.CodeConflict:
			return errorResponse(c, fiber.StatusConflict, be.Message, be.Code, be.Error())
		case businessflow.CodeNotFound:
			return errorResponse(c, fiber.StatusNotFound, be.Message, be.Code, be.Error())
		case businessflow.CodeUnauthorized:
			return errorResponse(c, fiber.StatusUnauthorized, be.Message, be.Code, nil)
		}
	}
	return errorResponse(c, fiber.StatusInternalServerError, fallbackMessage, fallbackCode, nil)
}

// createRequestContext builds a bounded context carrying request identity values.
// The caller must defer the returned cancel func.
func createRequestContext(c fiber.Ctx, endpoint string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	if userID, ok := c.Locals("user_id").(uint); ok && userID != 0 {
		ctx = context.WithValue(ctx, utils.UserIDKey, userID)
	}
	if isAdmin, ok := c.Locals("is_admin").(bool); ok {
		ctx = context.WithValue(ctx, utils.IsAdminKey, isAdmin)
	}
	return ctx, cancel
}

// clientMetadata captures caller network identity for the flow layer
func clientMetadata(c fiber.Ctx) *businessflow.ClientMetadata {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(c.Get("X-Request-ID"))
	return metadata
}

// parseListRequest reads common pagination query parameters
func parseListRequest(c fiber.Ctx) dto.ListRequest {
	req := dto.ListRequest{}
	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			req.Page = page
		}
	}
	if pageSizeStr := c.Query("page_size"); pageSizeStr != "" {
		if pageSize, err := strconv.Atoi(pageSizeStr); err == nil {
			req.PageSize = pageSize
		}
	}
	return req
}

// parseIDParam reads a numeric :id path parameter
func parseIDParam(c fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id parameter")
	}
	return uint(id), nil
}

// optionalQuery returns a pointer to the query value, nil when absent
func optionalQuery(c fiber.Ctx, key string) *string {
	if value := c.Query(key); value != "" {
		return &value
	}
	return nil
}

// optionalBoolQuery returns a pointer to a parsed boolean query value, nil when absent or malformed
func optionalBoolQuery(c fiber.Ctx, key string) *bool {
	if value := c.Query(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return &parsed
		}
	}
	return nil
}
