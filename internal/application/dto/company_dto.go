package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa (SuperAdmin).
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Address     string `json:"address" validate:"omitempty,max=300"`
	City        string `json:"city" validate:"omitempty,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	Email       string `json:"email" validate:"omitempty,email,max=100"`
	LogoURL     string `json:"logo_url"`
}

// UpdateCompanyRequest entrada para actualizar una empresa.
type UpdateCompanyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Address     *string `json:"address" validate:"omitempty,max=300"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	Email       *string `json:"email" validate:"omitempty,email,max=100"`
	LogoURL     *string `json:"logo_url"`
	IsActive    *bool   `json:"is_active"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Email       string    `json:"email,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
