package entity

import "time"

// Company empresa (tenant): unidad de aislamiento del catálogo.
// Cada Product y Category pertenece exactamente a una Company.
type Company struct {
	ID          string
	Name        string
	Description string
	Address     string
	City        string
	PhoneNumber string
	Email       string
	LogoURL     string
	IsActive    bool
	CreatedAt   time.Time
}
