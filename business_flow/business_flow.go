// Package businessflow contains the business logic for the application.
package businessflow

import (
	"context"
	"time"

	"github.com/gmwtech/corporate-site/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds client-related information captured at the HTTP boundary
// and recorded on inquiries, subscriptions, and page views.
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	RequestID  string            `json:"request_id,omitempty"`
	SessionID  string            `json:"session_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Additional: make(map[string]string),
	}
}

// AddAdditional adds additional custom information to the metadata
func (cm *ClientMetadata) AddAdditional(key, value string) {
	if cm.Additional == nil {
		cm.Additional = make(map[string]string)
	}
	cm.Additional[key] = value
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// SetSessionID sets the session ID
func (cm *ClientMetadata) SetSessionID(sessionID string) {
	cm.SessionID = sessionID
}

// clientNetwork returns the IP address and user agent, tolerating nil metadata
func clientNetwork(metadata *ClientMetadata) (string, string) {
	if metadata == nil {
		return "", ""
	}
	return metadata.IPAddress, metadata.UserAgent
}

// runInTransaction wraps fn in a database transaction carried through the context
func runInTransaction[T any](ctx context.Context, db *gorm.DB, fn func(context.Context) (*T, error)) (*T, error) {
	var result *T
	var fnErr error

	err := repository.WithTransaction(ctx, db, func(ctx context.Context) error {
		result, fnErr = fn(ctx)
		return fnErr
	})

	if err != nil {
		return nil, err
	}
	return result, fnErr
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func decimalPtrString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
