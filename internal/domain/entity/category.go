package entity

import "time"

// Category categoría del catálogo de una empresa.
type Category struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	ImageURL    string
	CreatedAt   time.Time
}
