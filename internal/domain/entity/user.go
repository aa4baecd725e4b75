package entity

import "time"

// Roles válidos para User. Determinan qué rutas y elementos de menú son visibles.
const (
	RoleAdmin     = "Admin"
	RoleAssistant = "Assistant"
	RoleCashier   = "Cashier"
)

// ValidRole indica si el rol pertenece a la enumeración cerrada.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleAssistant || role == RoleCashier
}

// User representa un usuario del sistema.
// El rol es inmutable en el flujo de auth; solo la gestión de usuarios (Admin) lo cambia.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // Admin, Assistant, Cashier
	AvatarURL    string
	Status       string    // active, inactive
	LastLogin    time.Time // cero = nunca ha iniciado sesión
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
