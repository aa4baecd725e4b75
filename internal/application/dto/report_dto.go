package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportDTO reporte de ventas del período.
type SalesReportDTO struct {
	From         time.Time         `json:"from"`
	To           time.Time         `json:"to"`
	TotalOrders  int               `json:"total_orders"`
	TotalRevenue decimal.Decimal   `json:"total_revenue"`
	Monthly      []MonthlySalesDTO `json:"monthly"`
}
