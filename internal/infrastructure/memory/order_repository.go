package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/stockms-api/internal/domain"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo órdenes en memoria, con consecutivo propio para NextNumber.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]entity.Order // por ID
	nextN  int                     // siguiente consecutivo "#ORD-NNN"
}

// NewOrderRepo construye el repo vacío. El consecutivo inicia en 1.
func NewOrderRepo() *OrderRepo {
	return &OrderRepo{orders: make(map[string]entity.Order), nextN: 1}
}

// Create agrega una orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = cloneOrder(*order)
	return nil
}

// GetByID devuelve la orden o nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	copy := cloneOrder(o)
	return &copy, nil
}

// Update reemplaza la orden existente.
func (r *OrderRepo) Update(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	r.orders[order.ID] = cloneOrder(*order)
	return nil
}

// List filtra por número/cliente/email y estado, más recientes primero.
func (r *OrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	search := strings.ToLower(filter.Search)
	all := make([]entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if search != "" &&
			!strings.Contains(strings.ToLower(o.Number), search) &&
			!strings.Contains(strings.ToLower(o.Customer), search) &&
			!strings.Contains(strings.ToLower(o.Email), search) {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if filter.Offset >= len(all) {
		return nil, nil
	}
	end := len(all)
	if filter.Limit > 0 && filter.Offset+filter.Limit < end {
		end = filter.Offset + filter.Limit
	}
	out := make([]*entity.Order, 0, end-filter.Offset)
	for i := filter.Offset; i < end; i++ {
		o := cloneOrder(all[i])
		out = append(out, &o)
	}
	return out, nil
}

// NextNumber devuelve el siguiente consecutivo "#ORD-NNN" y lo reserva.
func (r *OrderRepo) NextNumber() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.nextN
	r.nextN++
	return fmt.Sprintf("#ORD-%03d", n), nil
}

// Delete elimina por ID (idempotente).
func (r *OrderRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

// snapshot copia el estado completo del repo; lo usa el tx runner para revertir.
func (r *OrderRepo) snapshot() (map[string]entity.Order, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	copy := make(map[string]entity.Order, len(r.orders))
	for k, v := range r.orders {
		copy[k] = cloneOrder(v)
	}
	return copy, r.nextN
}

// restore repone el estado desde un snapshot previo.
func (r *OrderRepo) restore(snapshot map[string]entity.Order, nextN int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = snapshot
	r.nextN = nextN
}

// cloneOrder copia profunda (el slice de líneas no debe compartirse con el caller).
func cloneOrder(o entity.Order) entity.Order {
	lines := make([]entity.OrderLine, len(o.Lines))
	copy(lines, o.Lines)
	o.Lines = lines
	return o
}
