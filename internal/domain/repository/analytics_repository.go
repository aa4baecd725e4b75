package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySalesResult resultado crudo de la consulta de ventas por mes.
// Lo produce el repositorio; el use case lo convierte en DTO.
type MonthlySalesResult struct {
	Month  time.Time // primer día del mes
	Sales  decimal.Decimal
	Orders int
}

// CategoryShareResult productos por categoría para el gráfico de distribución.
type CategoryShareResult struct {
	CategoryID string
	Name       string
	Products   int
}

// RecentOrderResult fila del widget de órdenes recientes.
type RecentOrderResult struct {
	Number    string
	Customer  string
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
}

// AnalyticsRepository define las consultas de lectura para el dashboard y los reportes.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// CountProducts total de productos registrados.
	CountProducts(ctx context.Context) (int, error)

	// CountLowStock productos con stock menor o igual al umbral (incluye agotados).
	CountLowStock(ctx context.Context, threshold int) (int, error)

	// OrderTotals número de órdenes no canceladas y revenue acumulado en el rango.
	OrderTotals(ctx context.Context, startDate, endDate time.Time) (count int, revenue decimal.Decimal, err error)

	// MonthlySales serie de ventas de los últimos `months` meses (orden cronológico).
	// Usa COALESCE/cero para meses sin órdenes.
	MonthlySales(ctx context.Context, months int) ([]MonthlySalesResult, error)

	// CategoryDistribution productos por categoría, orden descendente.
	CategoryDistribution(ctx context.Context) ([]CategoryShareResult, error)

	// RecentOrders las `limit` órdenes más recientes.
	RecentOrders(ctx context.Context, limit int) ([]RecentOrderResult, error)
}
