package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados (no se persisten; se calculan contra el umbral de settings).
const (
	StockStatusIn  = "In Stock"
	StockStatusLow = "Low Stock"
	StockStatusOut = "Out of Stock"
)

// Product representa un producto del inventario.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	CategoryID  string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockStatus deriva el estado del producto según el umbral de stock bajo.
func (p *Product) StockStatus(lowStockThreshold int) string {
	switch {
	case p.Stock <= 0:
		return StockStatusOut
	case p.Stock <= lowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}
