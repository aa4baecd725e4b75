package entity

import "time"

// Settings configuración de la aplicación editable por el Admin.
type Settings struct {
	CompanyName       string
	Currency          string // código ISO: USD, COP, EUR
	LowStockThreshold int    // stock <= umbral => "Low Stock"
	UpdatedAt         time.Time
}

// DefaultSettings valores iniciales si nunca se han guardado.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:       "StockMS",
		Currency:          "USD",
		LowStockThreshold: 10,
	}
}
