// Package utils provides utility functions for the application.
package utils

// ContextKey is the type used for values stored on request contexts
type ContextKey string

// Context keys populated by handlers for downstream flows
const (
	RequestIDKey ContextKey = "request_id"
	IPAddressKey ContextKey = "ip_address"
	UserAgentKey ContextKey = "user_agent"
	EndpointKey  ContextKey = "endpoint"
	UserIDKey    ContextKey = "user_id"
	IsAdminKey   ContextKey = "is_admin"
)
