package dto

// SiteConfigurationCreate carries data to create a new key-value setting
type SiteConfigurationCreate struct {
	Key         string `json:"key" validate:"required,max=100"`
	Value       string `json:"value" validate:"omitempty"`
	ValueType   string `json:"value_type" validate:"omitempty,max=20"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Category    string `json:"category" validate:"omitempty,max=50"`
	IsPublic    *bool  `json:"is_public,omitempty" validate:"omitempty"`
}

// SiteConfigurationUpdate carries a partial update; nil fields leave the setting unchanged
type SiteConfigurationUpdate struct {
	Value       *string `json:"value,omitempty" validate:"omitempty"`
	ValueType   *string `json:"value_type,omitempty" validate:"omitempty,max=20"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=50"`
	IsPublic    *bool   `json:"is_public,omitempty" validate:"omitempty"`
}

// SiteConfigurationItem represents a setting in API responses
type SiteConfigurationItem struct {
	ID          uint   `json:"id"`
	Key         string `json:"key"`
	Value       string `json:"value"`
	ValueType   string `json:"value_type"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsPublic    bool   `json:"is_public"`
	UpdatedAt   string `json:"updated_at"`
}

// ListSiteConfigurationResponse returns setting items
type ListSiteConfigurationResponse struct {
	Message string                  `json:"message"`
	Items   []SiteConfigurationItem `json:"items"`
}

// PublicConfigResponse maps public setting keys to their string values
type PublicConfigResponse struct {
	Message string            `json:"message"`
	Config  map[string]string `json:"config"`
}
