package dto

import "time"

// CreateAdminRequest entrada del flujo de aprovisionamiento (SuperAdmin):
// crea un Admin ligado a una empresa. El registro público nunca pasa por aquí.
type CreateAdminRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required,min=6"`
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

// UpdateUserStatusRequest activar/desactivar un usuario.
type UpdateUserStatusRequest struct {
	IsActive bool `json:"is_active"`
}

// UserResponse salida de un usuario (sin hash ni salt).
type UserResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Role        string    `json:"role"`
	CompanyID   *string   `json:"company_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
