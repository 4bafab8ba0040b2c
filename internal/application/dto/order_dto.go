package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para colocar una orden.
type CreateOrderRequest struct {
	ShippingAddress string                   `json:"shipping_address" validate:"required,max=500"`
	Items           []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderItemRequest línea solicitada. IDs de producto repetidos se
// procesan como líneas independientes, sin fusionar cantidades.
type CreateOrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// OrderResponse salida de una orden con detalle.
type OrderResponse struct {
	ID              string              `json:"id"`
	OrderDate       time.Time           `json:"order_date"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shipping_address"`
	UserID          string              `json:"user_id"`
	UserFullName    string              `json:"user_full_name"`
	Items           []OrderItemResponse `json:"items"`
}

// OrderItemResponse línea de la orden con el nombre de producto resuelto.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
