package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockms-api/internal/application/dto"
	"github.com/jhoicas/stockms-api/internal/application/reports"
)

// ReportHandler reportes de ventas.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Reporte de ventas del período
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        months  query  int  false  "meses hacia atrás (default 6)"
// @Success      200  {object}  dto.SalesReportDTO
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.SalesReport(c.Context(), c.QueryInt("months"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar el reporte de ventas a PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        months  query  int  false  "meses hacia atrás (default 6)"
// @Success      200  {file}  binary
// @Router       /api/reports/sales/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.ExportPDF(c.Context(), c.QueryInt("months"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
