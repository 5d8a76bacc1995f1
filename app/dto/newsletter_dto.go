package dto

// NewsletterSubscriberCreate carries a newsletter signup from the public site
type NewsletterSubscriberCreate struct {
	Email     string   `json:"email" validate:"required,email,max=255"`
	Name      string   `json:"name" validate:"omitempty,max=200"`
	Interests []string `json:"interests,omitempty" validate:"omitempty"`
}

// NewsletterSubscriberItem represents a subscriber in API responses
type NewsletterSubscriberItem struct {
	ID             uint     `json:"id"`
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	IsActive       bool     `json:"is_active"`
	IsVerified     bool     `json:"is_verified"`
	Interests      []string `json:"interests"`
	Source         string   `json:"source"`
	SubscribedAt   string   `json:"subscribed_at"`
	UnsubscribedAt *string  `json:"unsubscribed_at,omitempty"`
}

// UnsubscribeRequest removes an email from the active list
type UnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// SubscribeResponse returns the created subscription
type SubscribeResponse struct {
	Message    string                   `json:"message"`
	Subscriber NewsletterSubscriberItem `json:"subscriber"`
}

// ListSubscribersResponse returns subscriber items
type ListSubscribersResponse struct {
	Message string                     `json:"message"`
	Items   []NewsletterSubscriberItem `json:"items"`
	Total   int64                      `json:"total"`
}
