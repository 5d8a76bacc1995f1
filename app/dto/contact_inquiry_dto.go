package dto

// ContactInquiryCreate carries a contact-form submission from the public site
type ContactInquiryCreate struct {
	Name               string  `json:"name" validate:"required,max=200"`
	Email              string  `json:"email" validate:"required,email,max=255"`
	Phone              string  `json:"phone" validate:"omitempty,max=50"`
	Company            string  `json:"company" validate:"omitempty,max=200"`
	Subject            string  `json:"subject" validate:"required,max=300"`
	Message            string  `json:"message" validate:"omitempty"`
	ServiceInterest    *string `json:"service_interest,omitempty" validate:"omitempty,max=100"`
	SubsidiaryInterest *string `json:"subsidiary_interest,omitempty" validate:"omitempty,max=100"`
}

// ContactInquiryUpdate carries an admin-side partial update of an inquiry.
// LeadScore is a decimal string to keep scores exact at two decimal places.
type ContactInquiryUpdate struct {
	Status    *string `json:"status,omitempty" validate:"omitempty,max=20"`
	Priority  *string `json:"priority,omitempty" validate:"omitempty,max=20"`
	LeadScore *string `json:"lead_score,omitempty" validate:"omitempty,max=10"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty"`
}

// ContactInquiryItem represents an inquiry in API responses
type ContactInquiryItem struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Company            string  `json:"company"`
	Subject            string  `json:"subject"`
	Message            string  `json:"message"`
	ServiceInterest    *string `json:"service_interest,omitempty"`
	SubsidiaryInterest *string `json:"subsidiary_interest,omitempty"`
	Status             string  `json:"status"`
	Priority           string  `json:"priority"`
	Source             string  `json:"source"`
	LeadScore          *string `json:"lead_score,omitempty"`
	Notes              string  `json:"notes"`
	RespondedAt        *string `json:"responded_at,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

// ListContactInquiriesRequest filters for listing inquiries
type ListContactInquiriesRequest struct {
	ListRequest
	Status   *string `json:"status,omitempty" validate:"omitempty,max=20"`
	Priority *string `json:"priority,omitempty" validate:"omitempty,max=20"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
}

// ListContactInquiriesResponse returns inquiry items
type ListContactInquiriesResponse struct {
	Message string               `json:"message"`
	Items   []ContactInquiryItem `json:"items"`
	Total   int64                `json:"total"`
}
