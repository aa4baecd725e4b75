package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/stockms-api/internal/domain"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores en memoria.
type SupplierRepo struct {
	mu        sync.RWMutex
	suppliers map[string]entity.Supplier // por ID
}

// NewSupplierRepo construye el repo vacío.
func NewSupplierRepo() *SupplierRepo {
	return &SupplierRepo{suppliers: make(map[string]entity.Supplier)}
}

// Create agrega un proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[supplier.ID] = *supplier
	return nil
}

// GetByID devuelve el proveedor o nil si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	copy := s
	return &copy, nil
}

// Update reemplaza el proveedor existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[supplier.ID]; !ok {
		return domain.ErrNotFound
	}
	r.suppliers[supplier.ID] = *supplier
	return nil
}

// List filtra por nombre o email (sin distinguir mayúsculas), ordenado por nombre.
func (r *SupplierRepo) List(search string, limit, offset int) ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	search = strings.ToLower(search)
	all := make([]entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.Email), search) {
			continue
		}
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	if offset >= len(all) {
		return nil, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.Supplier, 0, end-offset)
	for i := offset; i < end; i++ {
		s := all[i]
		out = append(out, &s)
	}
	return out, nil
}

// Delete elimina por ID (idempotente).
func (r *SupplierRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.suppliers, id)
	return nil
}
