package dto

// CompanyInfoUpdate carries a partial update of the singleton company profile.
// Latitude and Longitude are decimal strings with up to six decimal places.
type CompanyInfoUpdate struct {
	CompanyName    *string           `json:"company_name,omitempty" validate:"omitempty,max=200"`
	Tagline        *string           `json:"tagline,omitempty" validate:"omitempty,max=500"`
	Mission        *string           `json:"mission,omitempty" validate:"omitempty"`
	Vision         *string           `json:"vision,omitempty" validate:"omitempty"`
	Description    *string           `json:"description,omitempty" validate:"omitempty"`
	FoundedYear    *int              `json:"founded_year,omitempty" validate:"omitempty,min=1800,max=2100"`
	PrimaryEmail   *string           `json:"primary_email,omitempty" validate:"omitempty,email,max=255"`
	PrimaryPhone   *string           `json:"primary_phone,omitempty" validate:"omitempty,max=50"`
	SecondaryPhone *string           `json:"secondary_phone,omitempty" validate:"omitempty,max=50"`
	AddressLine1   *string           `json:"address_line1,omitempty" validate:"omitempty,max=200"`
	AddressLine2   *string           `json:"address_line2,omitempty" validate:"omitempty,max=200"`
	City           *string           `json:"city,omitempty" validate:"omitempty,max=100"`
	State          *string           `json:"state,omitempty" validate:"omitempty,max=100"`
	Country        *string           `json:"country,omitempty" validate:"omitempty,max=100"`
	PostalCode     *string           `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Latitude       *string           `json:"latitude,omitempty" validate:"omitempty,max=12"`
	Longitude      *string           `json:"longitude,omitempty" validate:"omitempty,max=12"`
	SocialLinks    map[string]string `json:"social_links,omitempty" validate:"omitempty"`
	BusinessHours  map[string]string `json:"business_hours,omitempty" validate:"omitempty"`
	Certifications []string          `json:"certifications,omitempty" validate:"omitempty"`
	Awards         []string          `json:"awards,omitempty" validate:"omitempty"`
}

// CompanyInfoItem represents the company profile in API responses
type CompanyInfoItem struct {
	CompanyName    string            `json:"company_name"`
	Tagline        string            `json:"tagline"`
	Mission        string            `json:"mission"`
	Vision         string            `json:"vision"`
	Description    string            `json:"description"`
	FoundedYear    *int              `json:"founded_year,omitempty"`
	PrimaryEmail   string            `json:"primary_email"`
	PrimaryPhone   string            `json:"primary_phone"`
	SecondaryPhone string            `json:"secondary_phone"`
	AddressLine1   string            `json:"address_line1"`
	AddressLine2   string            `json:"address_line2"`
	City           string            `json:"city"`
	State          string            `json:"state"`
	Country        string            `json:"country"`
	PostalCode     string            `json:"postal_code"`
	Latitude       *string           `json:"latitude,omitempty"`
	Longitude      *string           `json:"longitude,omitempty"`
	SocialLinks    map[string]string `json:"social_links"`
	BusinessHours  map[string]string `json:"business_hours"`
	Certifications []string          `json:"certifications"`
	Awards         []string          `json:"awards"`
	UpdatedAt      string            `json:"updated_at"`
}

// CompanyInfoResponse wraps the company profile
type CompanyInfoResponse struct {
	Message string          `json:"message"`
	Info    CompanyInfoItem `json:"info"`
}
