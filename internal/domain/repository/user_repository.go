package repository

import "github.com/jhoicas/stockms-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Reemplaza el credential store global: la implementación se inyecta, no hay estado de proceso oculto.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Count() (int, error)
	Delete(id string) error
}
