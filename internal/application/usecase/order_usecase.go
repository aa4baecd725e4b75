package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockms-api/internal/application/dto"
	"github.com/jhoicas/stockms-api/internal/domain"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

// OrderTxRunner ejecuta el callback con repos atados a una misma transacción:
// la creación de la orden y el descuento de stock se confirman o revierten juntos.
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// OrderUseCase casos de uso para órdenes de venta.
type OrderUseCase struct {
	repo     repository.OrderRepository
	txRunner OrderTxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, txRunner OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{repo: repo, txRunner: txRunner}
}

// Create crea una orden en estado Pending y descuenta el stock de cada línea
// dentro de una transacción. Stock insuficiente revierte todo (ErrInsufficientStock).
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	var created *entity.Order

	err := uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error {
		total := decimal.Zero
		items := 0
		lines := make([]entity.OrderLine, 0, len(in.Lines))
		for _, l := range in.Lines {
			product, err := productRepo.GetByID(l.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if err := productRepo.DecrementStock(l.ProductID, l.Quantity); err != nil {
				return err
			}
			lines = append(lines, entity.OrderLine{
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				UnitPrice: product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
			items += l.Quantity
		}

		number, err := orderRepo.NextNumber()
		if err != nil {
			return err
		}
		now := time.Now()
		order := &entity.Order{
			ID:        uuid.New().String(),
			Number:    number,
			Customer:  in.Customer,
			Email:     in.Email,
			Total:     total,
			Items:     items,
			Status:    entity.OrderPending,
			Lines:     lines,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

// GetByID obtiene una orden por ID (nil si no existe).
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// UpdateStatus cambia el estado de la orden. Una transición fuera de la tabla
// (por ejemplo Delivered → Pending) devuelve ErrConflict.
func (uc *OrderUseCase) UpdateStatus(id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.CanTransition(order.Status, in.Status) {
		return nil, domain.ErrConflict
	}
	order.Status = in.Status
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con búsqueda por número/cliente/email y filtro de estado.
func (uc *OrderUseCase) List(search, status string, limit, offset int) (*dto.OrderListResponse, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(repository.OrderFilter{
		Search: search,
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una orden por ID.
func (uc *OrderUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		Number:    o.Number,
		Customer:  o.Customer,
		Email:     o.Email,
		Total:     o.Total,
		Items:     o.Items,
		Status:    o.Status,
		Lines:     lines,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
