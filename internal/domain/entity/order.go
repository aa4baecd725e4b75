package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una orden.
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// orderTransitions tabla de transiciones válidas. Delivered y Cancelled son terminales.
var orderTransitions = map[string][]string{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
}

// ValidOrderStatus indica si el estado pertenece a la enumeración.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransition valida el cambio de estado según la tabla de transiciones.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderLine línea de una orden; al crear la orden descuenta stock del producto.
type OrderLine struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Order representa una orden de venta.
type Order struct {
	ID        string
	Number    string // "#ORD-001"
	Customer  string
	Email     string
	Total     decimal.Decimal
	Items     int // cantidad total de unidades
	Status    string
	Lines     []OrderLine
	CreatedAt time.Time
	UpdatedAt time.Time
}
