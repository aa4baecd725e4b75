package dto

// UpdateUserRequest cambios de gestión de usuarios (solo Admin): rol y/o estado.
type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Role   *string `json:"role,omitempty" validate:"omitempty,oneof=Admin Assistant Cashier"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
