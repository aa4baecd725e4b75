package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockms-api/internal/application/usecase"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

var _ usecase.OrderTxRunner = (*OrderTxRunner)(nil)

// OrderTxRunner ejecuta la creación de órdenes dentro de una transacción PostgreSQL:
// inserción de la orden y descuento de stock se confirman o revierten juntos.
type OrderTxRunner struct {
	pool *pgxpool.Pool
}

// NewOrderTxRunner construye el runner con el pool.
func NewOrderTxRunner(pool *pgxpool.Pool) *OrderTxRunner {
	return &OrderTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *OrderTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(orderRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
