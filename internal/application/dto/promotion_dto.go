package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePromotionRequest entrada para crear una promoción.
type CreatePromotionRequest struct {
	Name               string          `json:"name" validate:"required,min=1,max=200"`
	Description        string          `json:"description" validate:"omitempty,max=500"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	StartDate          time.Time       `json:"start_date" validate:"required"`
	EndDate            time.Time       `json:"end_date" validate:"required"`
	IsActive           bool            `json:"is_active"`
}

// UpdatePromotionRequest entrada para actualizar una promoción (reemplazo completo).
type UpdatePromotionRequest struct {
	Name               string          `json:"name" validate:"required,min=1,max=200"`
	Description        string          `json:"description" validate:"omitempty,max=500"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	StartDate          time.Time       `json:"start_date" validate:"required"`
	EndDate            time.Time       `json:"end_date" validate:"required"`
	IsActive           bool            `json:"is_active"`
}

// AssignProductsRequest ids de productos a asignar o quitar de una promoción.
type AssignProductsRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required,min=1"`
}

// PromotionResponse salida de una promoción.
type PromotionResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
	ProductCount       int             `json:"product_count"`
}

// PromotionListResponse lista paginada de promociones.
type PromotionListResponse struct {
	Items []PromotionResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
