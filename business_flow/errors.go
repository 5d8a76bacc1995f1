// Package businessflow contains the core business logic and use cases for the corporate site
package businessflow

import (
	"errors"
	"fmt"
)

// Error codes carried by BusinessError; handlers map them to HTTP status codes
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeConflict        = "CONFLICT"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
)

// Business flow error constants
var (
	// Content errors
	ErrPageNotFound       = errors.New("page not found")
	ErrHomepageNotFound   = errors.New("homepage not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrSubsidiaryNotFound = errors.New("subsidiary not found")
	ErrBlogPostNotFound   = errors.New("blog post not found")
	ErrSlugAlreadyExists  = errors.New("slug already exists")

	// Enum and field validation errors
	ErrInvalidStatus           = errors.New("invalid content status")
	ErrInvalidCategory         = errors.New("invalid service category")
	ErrInvalidSubsidiaryType   = errors.New("invalid subsidiary type")
	ErrInvalidPriority         = errors.New("invalid inquiry priority")
	ErrInvalidInquiryStatus    = errors.New("invalid inquiry status")
	ErrInvalidValueType        = errors.New("invalid configuration value type")
	ErrInvalidConfigValue      = errors.New("value does not match value type")
	ErrInvalidLeadScore        = errors.New("lead score is not a valid decimal")
	ErrLeadScoreOutOfRange     = errors.New("lead score is out of range")
	ErrInvalidCoordinates      = errors.New("latitude or longitude is out of range")
	ErrStatusTransitionBlocked = errors.New("inquiry status transition not allowed")

	// Author errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrAuthorInactive = errors.New("author account is inactive")

	// Inquiry errors
	ErrInquiryNotFound = errors.New("contact inquiry not found")

	// Configuration errors
	ErrConfigurationNotFound  = errors.New("site configuration not found")
	ErrConfigKeyAlreadyExists = errors.New("configuration key already exists")

	// Newsletter errors
	ErrSubscriberNotFound        = errors.New("subscriber not found")
	ErrAlreadySubscribed         = errors.New("email already subscribed")
	ErrInvalidVerificationToken  = errors.New("invalid verification token")
	ErrSubscriberAlreadyVerified = errors.New("subscriber already verified")

	// Company profile errors
	ErrCompanyProfileNotFound = errors.New("company profile not found")

	// Auth errors
	ErrUserNotFound      = errors.New("user not found")
	ErrAccountInactive   = errors.New("account is inactive")
	ErrIncorrectPassword = errors.New("incorrect password")

	// Filter errors
	ErrInvalidPage           = errors.New("page must be at least 1")
	ErrInvalidPageSize       = errors.New("page size must be between 1 and 100")
	ErrStartDateAfterEndDate = errors.New("start date cannot be after end date")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError wraps err as a VALIDATION_ERROR
func NewValidationError(message string, err error) *BusinessError {
	return NewBusinessError(CodeValidationError, message, err)
}

// NewConflictError wraps err as a CONFLICT
func NewConflictError(message string, err error) *BusinessError {
	return NewBusinessError(CodeConflict, message, err)
}

// NewNotFoundError wraps err as a NOT_FOUND
func NewNotFoundError(message string, err error) *BusinessError {
	return NewBusinessError(CodeNotFound, message, err)
}

// NewUnauthorizedError wraps err as an UNAUTHORIZED
func NewUnauthorizedError(message string, err error) *BusinessError {
	return NewBusinessError(CodeUnauthorized, message, err)
}

// ErrorCode extracts the BusinessError code from err, if any
func ErrorCode(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

func IsPageNotFound(err error) bool {
	return errors.Is(err, ErrPageNotFound)
}

func IsHomepageNotFound(err error) bool {
	return errors.Is(err, ErrHomepageNotFound)
}

func IsServiceNotFound(err error) bool {
	return errors.Is(err, ErrServiceNotFound)
}

func IsSubsidiaryNotFound(err error) bool {
	return errors.Is(err, ErrSubsidiaryNotFound)
}

func IsBlogPostNotFound(err error) bool {
	return errors.Is(err, ErrBlogPostNotFound)
}

func IsSlugAlreadyExists(err error) bool {
	return errors.Is(err, ErrSlugAlreadyExists)
}

func IsInvalidStatus(err error) bool {
	return errors.Is(err, ErrInvalidStatus)
}

func IsInvalidCategory(err error) bool {
	return errors.Is(err, ErrInvalidCategory)
}

func IsInvalidSubsidiaryType(err error) bool {
	return errors.Is(err, ErrInvalidSubsidiaryType)
}

func IsInvalidPriority(err error) bool {
	return errors.Is(err, ErrInvalidPriority)
}

func IsInvalidInquiryStatus(err error) bool {
	return errors.Is(err, ErrInvalidInquiryStatus)
}

func IsInvalidValueType(err error) bool {
	return errors.Is(err, ErrInvalidValueType)
}

func IsInvalidConfigValue(err error) bool {
	return errors.Is(err, ErrInvalidConfigValue)
}

func IsInvalidLeadScore(err error) bool {
	return errors.Is(err, ErrInvalidLeadScore)
}

func IsLeadScoreOutOfRange(err error) bool {
	return errors.Is(err, ErrLeadScoreOutOfRange)
}

func IsInvalidCoordinates(err error) bool {
	return errors.Is(err, ErrInvalidCoordinates)
}

func IsStatusTransitionBlocked(err error) bool {
	return errors.Is(err, ErrStatusTransitionBlocked)
}

func IsAuthorNotFound(err error) bool {
	return errors.Is(err, ErrAuthorNotFound)
}

func IsAuthorInactive(err error) bool {
	return errors.Is(err, ErrAuthorInactive)
}

func IsInquiryNotFound(err error) bool {
	return errors.Is(err, ErrInquiryNotFound)
}

func IsConfigurationNotFound(err error) bool {
	return errors.Is(err, ErrConfigurationNotFound)
}

func IsConfigKeyAlreadyExists(err error) bool {
	return errors.Is(err, ErrConfigKeyAlreadyExists)
}

func IsSubscriberNotFound(err error) bool {
	return errors.Is(err, ErrSubscriberNotFound)
}

func IsAlreadySubscribed(err error) bool {
	return errors.Is(err, ErrAlreadySubscribed)
}

func IsInvalidVerificationToken(err error) bool {
	return errors.Is(err, ErrInvalidVerificationToken)
}

func IsSubscriberAlreadyVerified(err error) bool {
	return errors.Is(err, ErrSubscriberAlreadyVerified)
}

func IsCompanyProfileNotFound(err error) bool {
	return errors.Is(err, ErrCompanyProfileNotFound)
}

func IsUserNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

func IsAccountInactive(err error) bool {
	return errors.Is(err, ErrAccountInactive)
}

func IsIncorrectPassword(err error) bool {
	return errors.Is(err, ErrIncorrectPassword)
}

func IsInvalidPage(err error) bool {
	return errors.Is(err, ErrInvalidPage)
}

func IsInvalidPageSize(err error) bool {
	return errors.Is(err, ErrInvalidPageSize)
}

func IsStartDateAfterEndDate(err error) bool {
	return errors.Is(err, ErrStartDateAfterEndDate)
}
