// Package memory implementa los puertos de persistencia sobre mapas en memoria.
//
// Es el backend de demostración: arranca sembrado con los datos de ejemplo y
// no sobrevive al reinicio del proceso. Todos los repos protegen sus mapas con
// mutex; a diferencia del original de un solo hilo, aquí hay goroutines.
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/stockms-api/internal/domain"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo credential store en memoria.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]entity.User // por ID
}

// NewUserRepo construye el repo vacío. Usar Seed* para los datos de demo.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]entity.User)}
}

// Create agrega un usuario. Email repetido devuelve ErrEmailAlreadyExists.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[user.ID] = *user
	return nil
}

// GetByID devuelve el usuario o nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copy := u
	return &copy, nil
}

// FindByEmail busca por email exacto (case-insensitive) o nil.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copy := u
			return &copy, nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario existente.
func (r *UserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = *user
	return nil
}

// List devuelve los usuarios ordenados por fecha de creación descendente.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return pageUsers(all, limit, offset), nil
}

// Count total de usuarios.
func (r *UserRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

// Delete elimina por ID (idempotente).
func (r *UserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func pageUsers(all []entity.User, limit, offset int) []*entity.User {
	if offset >= len(all) {
		return nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.User, 0, end-offset)
	for i := offset; i < end; i++ {
		u := all[i]
		out = append(out, &u)
	}
	return out
}
