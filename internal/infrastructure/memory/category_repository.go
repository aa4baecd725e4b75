package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/stockms-api/internal/domain"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías en memoria.
type CategoryRepo struct {
	mu         sync.RWMutex
	categories map[string]entity.Category // por ID
}

// NewCategoryRepo construye el repo vacío.
func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{categories: make(map[string]entity.Category)}
}

// Create agrega una categoría. Nombre repetido devuelve ErrDuplicate.
func (r *CategoryRepo) Create(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, category.Name) {
			return domain.ErrDuplicate
		}
	}
	r.categories[category.ID] = *category
	return nil
}

// GetByID devuelve la categoría o nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	copy := c
	return &copy, nil
}

// GetByName busca por nombre exacto (case-insensitive) o nil.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			copy := c
			return &copy, nil
		}
	}
	return nil, nil
}

// Update reemplaza la categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	r.categories[category.ID] = *category
	return nil
}

// List devuelve las categorías ordenadas por nombre.
func (r *CategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	if offset >= len(all) {
		return nil, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.Category, 0, end-offset)
	for i := offset; i < end; i++ {
		c := all[i]
		out = append(out, &c)
	}
	return out, nil
}

// Delete elimina por ID (idempotente).
func (r *CategoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}
