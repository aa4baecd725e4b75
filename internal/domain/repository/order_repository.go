package repository

import "github.com/jhoicas/stockms-api/internal/domain/entity"

// OrderFilter filtro de listado: búsqueda por número/cliente/email y estado opcional.
type OrderFilter struct {
	Search string
	Status string
	Limit  int
	Offset int
}

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	List(filter OrderFilter) ([]*entity.Order, error)
	// NextNumber devuelve el siguiente consecutivo "#ORD-NNN".
	NextNumber() (string, error)
	Delete(id string) error
}
