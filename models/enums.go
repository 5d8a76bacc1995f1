package models

import (
	"database/sql/driver"
	"fmt"
)

// ContentStatus represents the publication status of site content
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
)

// String returns the string representation of the status
func (s ContentStatus) String() string {
	return string(s)
}

// Valid checks if the status is valid
func (s ContentStatus) Valid() bool {
	switch s {
	case ContentStatusDraft, ContentStatusPublished, ContentStatusArchived:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for ContentStatus
func (s *ContentStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*s = ContentStatus(v)
	case []byte:
		*s = ContentStatus(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ContentStatus", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for ContentStatus
func (s ContentStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid ContentStatus: %s", s)
	}
	return string(s), nil
}

// InquiryStatus represents the handling status of a contact inquiry
type InquiryStatus string

const (
	InquiryStatusNew        InquiryStatus = "new"
	InquiryStatusInProgress InquiryStatus = "in_progress"
	InquiryStatusResolved   InquiryStatus = "resolved"
	InquiryStatusClosed     InquiryStatus = "closed"
)

// String returns the string representation of the status
func (s InquiryStatus) String() string {
	return string(s)
}

// Valid checks if the status is valid
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusInProgress,
		InquiryStatusResolved, InquiryStatusClosed:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if the inquiry can move to the given status.
// Progression is forward-only; closed is terminal.
func (s InquiryStatus) CanTransitionTo(next InquiryStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case InquiryStatusNew:
		return next == InquiryStatusInProgress ||
			next == InquiryStatusResolved ||
			next == InquiryStatusClosed
	case InquiryStatusInProgress:
		return next == InquiryStatusResolved ||
			next == InquiryStatusClosed
	case InquiryStatusResolved:
		return next == InquiryStatusClosed
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for InquiryStatus
func (s *InquiryStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*s = InquiryStatus(v)
	case []byte:
		*s = InquiryStatus(string(v))
	default:
		return fmt.Errorf("cannot scan %T into InquiryStatus", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for InquiryStatus
func (s InquiryStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid InquiryStatus: %s", s)
	}
	return string(s), nil
}

// ServiceCategory represents the fixed set of service offering categories
type ServiceCategory string

const (
	ServiceCategoryAIML           ServiceCategory = "ai_ml"
	ServiceCategoryBlockchain     ServiceCategory = "blockchain"
	ServiceCategoryIOT            ServiceCategory = "iot"
	ServiceCategoryDataAnalytics  ServiceCategory = "data_analytics"
	ServiceCategoryRiskPlanning   ServiceCategory = "risk_planning"
	ServiceCategoryGrowthStrategy ServiceCategory = "growth_strategy"
)

// String returns the string representation of the category
func (c ServiceCategory) String() string {
	return string(c)
}

// Valid checks if the category is valid
func (c ServiceCategory) Valid() bool {
	switch c {
	case ServiceCategoryAIML, ServiceCategoryBlockchain, ServiceCategoryIOT,
		ServiceCategoryDataAnalytics, ServiceCategoryRiskPlanning,
		ServiceCategoryGrowthStrategy:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for ServiceCategory
func (c *ServiceCategory) Scan(value any) error {
	if value == nil {
		*c = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*c = ServiceCategory(v)
	case []byte:
		*c = ServiceCategory(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ServiceCategory", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for ServiceCategory
func (c ServiceCategory) Value() (driver.Value, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid ServiceCategory: %s", c)
	}
	return string(c), nil
}

// SubsidiaryType represents the fixed set of business units
type SubsidiaryType string

const (
	SubsidiaryTypeLaoctaTechlabs SubsidiaryType = "laocta_techlabs"
	SubsidiaryTypeIntegralIOT    SubsidiaryType = "integral_iot"
	SubsidiaryTypeChaintum       SubsidiaryType = "chaintum"
)

// String returns the string representation of the type
func (t SubsidiaryType) String() string {
	return string(t)
}

// Valid checks if the type is valid
func (t SubsidiaryType) Valid() bool {
	switch t {
	case SubsidiaryTypeLaoctaTechlabs, SubsidiaryTypeIntegralIOT, SubsidiaryTypeChaintum:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for SubsidiaryType
func (t *SubsidiaryType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*t = SubsidiaryType(v)
	case []byte:
		*t = SubsidiaryType(string(v))
	default:
		return fmt.Errorf("cannot scan %T into SubsidiaryType", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for SubsidiaryType
func (t SubsidiaryType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid SubsidiaryType: %s", t)
	}
	return string(t), nil
}

// Inquiry priority levels (free-form column, fixed set validated at the boundary)
const (
	InquiryPriorityLow    = "low"
	InquiryPriorityMedium = "medium"
	InquiryPriorityHigh   = "high"
	InquiryPriorityUrgent = "urgent"
)

// ValidInquiryPriority reports whether p is one of the known priority levels
func ValidInquiryPriority(p string) bool {
	switch p {
	case InquiryPriorityLow, InquiryPriorityMedium, InquiryPriorityHigh, InquiryPriorityUrgent:
		return true
	default:
		return false
	}
}

// Site configuration value types
const (
	ConfigValueTypeString = "string"
	ConfigValueTypeInt    = "int"
	ConfigValueTypeBool   = "bool"
	ConfigValueTypeJSON   = "json"
)

// ValidConfigValueType reports whether t is one of the known value types
func ValidConfigValueType(t string) bool {
	switch t {
	case ConfigValueTypeString, ConfigValueTypeInt, ConfigValueTypeBool, ConfigValueTypeJSON:
		return true
	default:
		return false
	}
}
