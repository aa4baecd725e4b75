package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura para dashboard y reportes sobre PostgreSQL.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountProducts total de productos registrados.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// CountLowStock productos con stock menor o igual al umbral.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context, threshold int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products WHERE stock <= $1`, threshold).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}

// OrderTotals órdenes no canceladas y revenue acumulado en el rango.
func (r *AnalyticsRepo) OrderTotals(ctx context.Context, startDate, endDate time.Time) (int, decimal.Decimal, error) {
	query := `
		SELECT count(*), COALESCE(sum(total), 0)
		FROM orders
		WHERE status <> $1 AND created_at >= $2 AND created_at <= $3`
	var count int
	var revenue decimal.Decimal
	err := r.pool.QueryRow(ctx, query, entity.OrderCancelled, startDate, endDate).Scan(&count, &revenue)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("order totals: %w", err)
	}
	return count, revenue, nil
}

// MonthlySales serie de los últimos `months` meses en orden cronológico.
// generate_series produce los meses sin órdenes con cero.
func (r *AnalyticsRepo) MonthlySales(ctx context.Context, months int) ([]repository.MonthlySalesResult, error) {
	query := `
		SELECT m.month, COALESCE(sum(o.total), 0) AS sales, count(o.id) AS orders
		FROM generate_series(
			date_trunc('month', now()) - ($1 - 1) * interval '1 month',
			date_trunc('month', now()),
			interval '1 month'
		) AS m(month)
		LEFT JOIN orders o
			ON date_trunc('month', o.created_at) = m.month AND o.status <> $2
		GROUP BY m.month
		ORDER BY m.month`
	rows, err := r.pool.Query(ctx, query, months, entity.OrderCancelled)
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}
	defer rows.Close()
	var out []repository.MonthlySalesResult
	for rows.Next() {
		var m repository.MonthlySalesResult
		if err := rows.Scan(&m.Month, &m.Sales, &m.Orders); err != nil {
			return nil, fmt.Errorf("scan monthly sales: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// CategoryDistribution productos por categoría, descendente por cantidad.
func (r *AnalyticsRepo) CategoryDistribution(ctx context.Context) ([]repository.CategoryShareResult, error) {
	query := `
		SELECT c.id, c.name, count(p.id) AS products
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY products DESC, c.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category distribution: %w", err)
	}
	defer rows.Close()
	var out []repository.CategoryShareResult
	for rows.Next() {
		var c repository.CategoryShareResult
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Products); err != nil {
			return nil, fmt.Errorf("scan category distribution: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// RecentOrders las `limit` órdenes más recientes.
func (r *AnalyticsRepo) RecentOrders(ctx context.Context, limit int) ([]repository.RecentOrderResult, error) {
	query := `
		SELECT number, customer_name, total, status, created_at
		FROM orders ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer rows.Close()
	var out []repository.RecentOrderResult
	for rows.Next() {
		var o repository.RecentOrderResult
		if err := rows.Scan(&o.Number, &o.Customer, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
