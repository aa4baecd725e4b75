package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea de una orden nueva. El precio se toma del producto.
type OrderLineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest alta de orden; descuenta stock de cada línea.
type CreateOrderRequest struct {
	Customer string             `json:"customer" validate:"required"`
	Email    string             `json:"email" validate:"required,email"`
	Lines    []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest cambio de estado; sujeto a la tabla de transiciones.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Processing Shipped Delivered Cancelled"`
}

// OrderLineResponse línea de orden.
type OrderLineResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse orden.
type OrderResponse struct {
	ID        string              `json:"id"`
	Number    string              `json:"number"`
	Customer  string              `json:"customer"`
	Email     string              `json:"email"`
	Total     decimal.Decimal     `json:"total"`
	Items     int                 `json:"items"`
	Status    string              `json:"status"`
	Lines     []OrderLineResponse `json:"lines,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// OrderListResponse listado paginado.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
