// Package reports contiene el caso de uso de reportes de ventas y su exportación a PDF.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockms-api/internal/application/analytics"
	"github.com/jhoicas/stockms-api/internal/application/dto"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

const defaultReportMonths = 6

// SalesReportPDFGenerator puerto de generación del PDF del reporte.
// La implementación vive en infrastructure/pdf.
type SalesReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, report *dto.SalesReportDTO, settings entity.Settings) ([]byte, error)
}

// UseCase reportes de ventas.
type UseCase struct {
	analyticsRepo repository.AnalyticsRepository
	settingsRepo  repository.SettingsRepository
	pdfGenerator  SalesReportPDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(analyticsRepo repository.AnalyticsRepository, settingsRepo repository.SettingsRepository, pdfGenerator SalesReportPDFGenerator) *UseCase {
	return &UseCase{analyticsRepo: analyticsRepo, settingsRepo: settingsRepo, pdfGenerator: pdfGenerator}
}

// SalesReport resume las ventas de los últimos `months` meses (0 = default).
func (uc *UseCase) SalesReport(ctx context.Context, months int) (*dto.SalesReportDTO, error) {
	if months <= 0 {
		months = defaultReportMonths
	}
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	count, revenue, err := uc.analyticsRepo.OrderTotals(ctx, from, now)
	if err != nil {
		return nil, err
	}
	monthly, err := uc.analyticsRepo.MonthlySales(ctx, months)
	if err != nil {
		return nil, err
	}
	return &dto.SalesReportDTO{
		From:         from,
		To:           now,
		TotalOrders:  count,
		TotalRevenue: revenue,
		Monthly:      analytics.ToMonthlySalesDTOs(monthly),
	}, nil
}

// ExportPDF genera el reporte y lo renderiza a PDF. Devuelve bytes y nombre de archivo.
func (uc *UseCase) ExportPDF(ctx context.Context, months int) ([]byte, string, error) {
	report, err := uc.SalesReport(ctx, months)
	if err != nil {
		return nil, "", err
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		settings = entity.DefaultSettings()
	}
	pdf, err := uc.pdfGenerator.GenerateSalesReportPDF(ctx, report, settings)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF del reporte: %w", err)
	}
	name := fmt.Sprintf("sales-report-%s.pdf", time.Now().Format("2006-01"))
	return pdf, name, nil
}
