package dto

import "time"

// UpdateSettingsRequest campos parciales de configuración; nil = sin cambio.
type UpdateSettingsRequest struct {
	CompanyName       *string `json:"company_name,omitempty" validate:"omitempty,min=1"`
	Currency          *string `json:"currency,omitempty" validate:"omitempty,len=3,uppercase"`
	LowStockThreshold *int    `json:"low_stock_threshold,omitempty" validate:"omitempty,min=0"`
}

// SettingsResponse configuración vigente.
type SettingsResponse struct {
	CompanyName       string    `json:"company_name"`
	Currency          string    `json:"currency"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	UpdatedAt         time.Time `json:"updated_at,omitempty"`
}
