package repository

import "github.com/jhoicas/stockms-api/internal/domain/entity"

// ProductFilter filtro de listado: búsqueda por nombre/SKU y categoría opcional.
type ProductFilter struct {
	Search     string
	CategoryID string
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter) ([]*entity.Product, error)
	CountByCategory(categoryID string) (int, error)
	// DecrementStock descuenta qty unidades; devuelve ErrInsufficientStock si no alcanza.
	DecrementStock(productID string, qty int) error
	Delete(id string) error
}
