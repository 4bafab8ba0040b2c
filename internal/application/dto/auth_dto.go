package dto

import "time"

// RegisterRequest entrada para el registro público. Cualquier Role que envíe
// el caller se ignora: el registro siempre crea rol User.
type RegisterRequest struct {
	FirstName   string     `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string     `json:"last_name" validate:"required,min=1,max=100"`
	Email       string     `json:"email" validate:"required,email,max=100"`
	Password    string     `json:"password" validate:"required,min=6"`
	PhoneNumber string     `json:"phone_number" validate:"omitempty,max=20"`
	Address     string     `json:"address" validate:"omitempty,max=300"`
	City        string     `json:"city" validate:"omitempty,max=100"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Role        string     `json:"role"` // ignorado, siempre "User"
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse salida de registro y login: token firmado + perfil.
type AuthResponse struct {
	Token           string    `json:"token"`
	Expiration      time.Time `json:"expiration"`
	UserID          string    `json:"user_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city,omitempty"`
	Role            string    `json:"role"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	CompanyID       *string   `json:"company_id,omitempty"`
	CompanyName     string    `json:"company_name,omitempty"`
}
