package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stockms-api/internal/application/usecase"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

var _ usecase.OrderTxRunner = (*OrderTxRunner)(nil)

// OrderTxRunner emula la transacción orden+stock sobre los repos en memoria:
// toma un snapshot antes de ejecutar fn y lo repone si fn falla. Serializa
// las "transacciones" con un mutex propio para que el snapshot sea consistente.
type OrderTxRunner struct {
	mu       sync.Mutex
	orders   *OrderRepo
	products *ProductRepo
}

// NewOrderTxRunner construye el runner sobre los repos dados.
func NewOrderTxRunner(orders *OrderRepo, products *ProductRepo) *OrderTxRunner {
	return &OrderTxRunner{orders: orders, products: products}
}

// Run ejecuta fn; si devuelve error, revierte órdenes y stock al estado previo.
func (t *OrderTxRunner) Run(_ context.Context, fn func(orders repository.OrderRepository, products repository.ProductRepository) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ordersSnap, nextN := t.orders.snapshot()
	productsSnap := t.products.snapshot()

	if err := fn(t.orders, t.products); err != nil {
		t.orders.restore(ordersSnap, nextN)
		t.products.restore(productsSnap)
		return err
	}
	return nil
}
