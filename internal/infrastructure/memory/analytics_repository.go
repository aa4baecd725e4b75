package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura calculadas sobre los repos en memoria.
// Hace escaneo lineal; suficiente para el volumen de la demo.
type AnalyticsRepo struct {
	products   *ProductRepo
	orders     *OrderRepo
	categories *CategoryRepo
}

// NewAnalyticsRepo construye el repo de analítica sobre los repos dados.
func NewAnalyticsRepo(products *ProductRepo, orders *OrderRepo, categories *CategoryRepo) *AnalyticsRepo {
	return &AnalyticsRepo{products: products, orders: orders, categories: categories}
}

// CountProducts total de productos registrados.
func (r *AnalyticsRepo) CountProducts(_ context.Context) (int, error) {
	r.products.mu.RLock()
	defer r.products.mu.RUnlock()
	return len(r.products.products), nil
}

// CountLowStock productos con stock menor o igual al umbral.
func (r *AnalyticsRepo) CountLowStock(_ context.Context, threshold int) (int, error) {
	r.products.mu.RLock()
	defer r.products.mu.RUnlock()
	count := 0
	for _, p := range r.products.products {
		if p.Stock <= threshold {
			count++
		}
	}
	return count, nil
}

// OrderTotals órdenes no canceladas y revenue acumulado en el rango.
func (r *AnalyticsRepo) OrderTotals(_ context.Context, startDate, endDate time.Time) (int, decimal.Decimal, error) {
	r.orders.mu.RLock()
	defer r.orders.mu.RUnlock()
	count := 0
	revenue := decimal.Zero
	for _, o := range r.orders.orders {
		if o.Status == entity.OrderCancelled {
			continue
		}
		if o.CreatedAt.Before(startDate) || o.CreatedAt.After(endDate) {
			continue
		}
		count++
		revenue = revenue.Add(o.Total)
	}
	return count, revenue, nil
}

// MonthlySales serie de los últimos `months` meses en orden cronológico.
// Los meses sin órdenes aparecen en cero.
func (r *AnalyticsRepo) MonthlySales(_ context.Context, months int) ([]repository.MonthlySalesResult, error) {
	r.orders.mu.RLock()
	defer r.orders.mu.RUnlock()

	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := make([]repository.MonthlySalesResult, months)
	index := make(map[time.Time]int, months)
	for i := 0; i < months; i++ {
		month := first.AddDate(0, i-(months-1), 0)
		out[i] = repository.MonthlySalesResult{Month: month, Sales: decimal.Zero}
		index[month] = i
	}

	for _, o := range r.orders.orders {
		if o.Status == entity.OrderCancelled {
			continue
		}
		month := time.Date(o.CreatedAt.Year(), o.CreatedAt.Month(), 1, 0, 0, 0, 0, now.Location())
		i, ok := index[month]
		if !ok {
			continue
		}
		out[i].Sales = out[i].Sales.Add(o.Total)
		out[i].Orders++
	}
	return out, nil
}

// CategoryDistribution productos por categoría, descendente por cantidad.
func (r *AnalyticsRepo) CategoryDistribution(_ context.Context) ([]repository.CategoryShareResult, error) {
	counts := make(map[string]int)
	r.products.mu.RLock()
	for _, p := range r.products.products {
		counts[p.CategoryID]++
	}
	r.products.mu.RUnlock()

	r.categories.mu.RLock()
	out := make([]repository.CategoryShareResult, 0, len(r.categories.categories))
	for id, c := range r.categories.categories {
		out = append(out, repository.CategoryShareResult{
			CategoryID: id,
			Name:       c.Name,
			Products:   counts[id],
		})
	}
	r.categories.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Products != out[j].Products {
			return out[i].Products > out[j].Products
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// RecentOrders las `limit` órdenes más recientes.
func (r *AnalyticsRepo) RecentOrders(_ context.Context, limit int) ([]repository.RecentOrderResult, error) {
	r.orders.mu.RLock()
	all := make([]entity.Order, 0, len(r.orders.orders))
	for _, o := range r.orders.orders {
		all = append(all, o)
	}
	r.orders.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	out := make([]repository.RecentOrderResult, 0, len(all))
	for _, o := range all {
		out = append(out, repository.RecentOrderResult{
			Number:    o.Number,
			Customer:  o.Customer,
			Total:     o.Total,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		})
	}
	return out, nil
}
