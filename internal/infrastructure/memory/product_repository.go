package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/stockms-api/internal/domain"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo de productos en memoria.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[string]entity.Product // por ID
}

// NewProductRepo construye el repo vacío.
func NewProductRepo() *ProductRepo {
	return &ProductRepo{products: make(map[string]entity.Product)}
}

// Create agrega un producto. SKU repetido devuelve ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if strings.EqualFold(p.SKU, product.SKU) {
			return domain.ErrDuplicate
		}
	}
	r.products[product.ID] = *product
	return nil
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copy := p
	return &copy, nil
}

// GetBySKU devuelve el producto por SKU exacto o nil.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if strings.EqualFold(p.SKU, sku) {
			copy := p
			return &copy, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.products[product.ID] = *product
	return nil
}

// List filtra por búsqueda (nombre/SKU, sin distinguir mayúsculas) y categoría.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	search := strings.ToLower(filter.Search)
	all := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	if filter.Offset >= len(all) {
		return nil, nil
	}
	end := len(all)
	if filter.Limit > 0 && filter.Offset+filter.Limit < end {
		end = filter.Offset + filter.Limit
	}
	out := make([]*entity.Product, 0, end-filter.Offset)
	for i := filter.Offset; i < end; i++ {
		p := all[i]
		out = append(out, &p)
	}
	return out, nil
}

// CountByCategory productos en la categoría dada.
func (r *ProductRepo) CountByCategory(categoryID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// DecrementStock descuenta qty unidades; stock insuficiente devuelve ErrInsufficientStock.
func (r *ProductRepo) DecrementStock(productID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock < qty {
		return domain.ErrInsufficientStock
	}
	p.Stock -= qty
	r.products[productID] = p
	return nil
}

// Delete elimina por ID (idempotente).
func (r *ProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

// snapshot copia el mapa completo; lo usa el tx runner para revertir.
func (r *ProductRepo) snapshot() map[string]entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	copy := make(map[string]entity.Product, len(r.products))
	for k, v := range r.products {
		copy[k] = v
	}
	return copy
}

// restore repone el mapa desde un snapshot previo.
func (r *ProductRepo) restore(snapshot map[string]entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = snapshot
}
