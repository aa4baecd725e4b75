// Package analytics contiene los casos de uso de lectura para el dashboard.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockms-api/internal/application/dto"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

const (
	dashboardMonths       = 6 // meses de la serie de ventas
	dashboardRecentOrders = 5 // filas del widget de órdenes recientes
)

// DashboardUseCase genera el resumen del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// El umbral de stock bajo se toma de settings.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	settingsRepo  repository.SettingsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, settingsRepo repository.SettingsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, settingsRepo: settingsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. CountProducts + CountLowStock → tarjetas de inventario
//  2. OrderTotals(histórico)        → tarjetas de órdenes y revenue
//  3. MonthlySales(6 meses)         → gráfico de barras
//  4. CategoryDistribution + RecentOrders → torta y widget
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	threshold := entity.DefaultSettings().LowStockThreshold
	if settings, err := uc.settingsRepo.Get(); err == nil {
		threshold = settings.LowStockThreshold
	}

	type inventoryResult struct {
		products, lowStock int
		err                error
	}
	invCh := make(chan inventoryResult, 1)
	go func() {
		products, err := uc.analyticsRepo.CountProducts(ctx)
		if err != nil {
			invCh <- inventoryResult{err: err}
			return
		}
		lowStock, err := uc.analyticsRepo.CountLowStock(ctx, threshold)
		invCh <- inventoryResult{products: products, lowStock: lowStock, err: err}
	}()

	type totalsResult struct {
		count   int
		revenue decimal.Decimal
		err     error
	}
	totalsCh := make(chan totalsResult, 1)
	go func() {
		count, revenue, err := uc.analyticsRepo.OrderTotals(ctx, time.Time{}, time.Now())
		totalsCh <- totalsResult{count: count, revenue: revenue, err: err}
	}()

	type seriesResult struct {
		monthly []repository.MonthlySalesResult
		err     error
	}
	seriesCh := make(chan seriesResult, 1)
	go func() {
		monthly, err := uc.analyticsRepo.MonthlySales(ctx, dashboardMonths)
		seriesCh <- seriesResult{monthly: monthly, err: err}
	}()

	type widgetsResult struct {
		categories []repository.CategoryShareResult
		recent     []repository.RecentOrderResult
		err        error
	}
	widgetsCh := make(chan widgetsResult, 1)
	go func() {
		categories, err := uc.analyticsRepo.CategoryDistribution(ctx)
		if err != nil {
			widgetsCh <- widgetsResult{err: err}
			return
		}
		recent, err := uc.analyticsRepo.RecentOrders(ctx, dashboardRecentOrders)
		widgetsCh <- widgetsResult{categories: categories, recent: recent, err: err}
	}()

	inv := <-invCh
	totals := <-totalsCh
	series := <-seriesCh
	widgets := <-widgetsCh

	for _, err := range []error{inv.err, totals.err, series.err, widgets.err} {
		if err != nil {
			return nil, err
		}
	}

	summary := &dto.DashboardSummaryDTO{
		TotalProducts: inv.products,
		TotalOrders:   totals.count,
		Revenue:       totals.revenue,
		LowStockCount: inv.lowStock,
		MonthlySales:  ToMonthlySalesDTOs(series.monthly),
	}
	for _, c := range widgets.categories {
		summary.Categories = append(summary.Categories, dto.CategoryShareDTO{Name: c.Name, Value: c.Products})
	}
	for _, o := range widgets.recent {
		summary.RecentOrders = append(summary.RecentOrders, dto.RecentOrderDTO{
			Number:    o.Number,
			Customer:  o.Customer,
			Total:     o.Total,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		})
	}
	return summary, nil
}

// ToMonthlySalesDTOs convierte la serie cruda a DTOs con el mes abreviado ("Jan").
func ToMonthlySalesDTOs(monthly []repository.MonthlySalesResult) []dto.MonthlySalesDTO {
	out := make([]dto.MonthlySalesDTO, 0, len(monthly))
	for _, m := range monthly {
		out = append(out, dto.MonthlySalesDTO{
			Month:  m.Month.Format("Jan"),
			Sales:  m.Sales,
			Orders: m.Orders,
		})
	}
	return out
}
