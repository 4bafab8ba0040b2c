package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (Admin de la empresa).
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description" validate:"omitempty,max=500"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	CategoryID    string          `json:"category_id" validate:"required,uuid"`
	ImageURL      string          `json:"image_url"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" validate:"omitempty,max=500"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity" validate:"omitempty,min=0"`
	CategoryID    *string          `json:"category_id" validate:"omitempty,uuid"`
	ImageURL      *string          `json:"image_url"`
}

// ProductResponse salida de un producto para catálogo. DiscountedPrice y
// DiscountPercentage solo vienen cuando hay promoción vigente "ahora".
type ProductResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Description        string           `json:"description,omitempty"`
	Price              decimal.Decimal  `json:"price"`
	StockQuantity      int              `json:"stock_quantity"`
	ImageURL           string           `json:"image_url,omitempty"`
	CategoryID         string           `json:"category_id"`
	CategoryName       string           `json:"category_name,omitempty"`
	CompanyID          string           `json:"company_id"`
	CompanyName        string           `json:"company_name,omitempty"`
	PromotionID        *string          `json:"promotion_id,omitempty"`
	PromotionName      string           `json:"promotion_name,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
	DiscountedPrice    *decimal.Decimal `json:"discounted_price,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
