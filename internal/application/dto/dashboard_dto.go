package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySalesDTO punto de la serie de ventas mensuales.
type MonthlySalesDTO struct {
	Month  string          `json:"month"` // "Jan", "Feb", ...
	Sales  decimal.Decimal `json:"sales"`
	Orders int             `json:"orders"`
}

// CategoryShareDTO porción del gráfico de distribución por categoría.
type CategoryShareDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"` // productos en la categoría
}

// RecentOrderDTO fila del widget de órdenes recientes.
type RecentOrderDTO struct {
	Number    string          `json:"number"`
	Customer  string          `json:"customer"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// DashboardSummaryDTO resumen completo del dashboard.
type DashboardSummaryDTO struct {
	TotalProducts int                `json:"total_products"`
	TotalOrders   int                `json:"total_orders"`
	Revenue       decimal.Decimal    `json:"revenue"`
	LowStockCount int                `json:"low_stock_count"`
	MonthlySales  []MonthlySalesDTO  `json:"monthly_sales"`
	Categories    []CategoryShareDTO `json:"categories"`
	RecentOrders  []RecentOrderDTO   `json:"recent_orders"`
}
