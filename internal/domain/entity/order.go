package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden. Se crea siempre en Pending;
// las transiciones posteriores son un flujo administrativo externo a este core.
const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// Order orden de compra de un usuario. TotalAmount se fija al crear
// (auditoría) y no se recalcula aunque cambien precios o promociones.
type Order struct {
	ID              string
	UserID          string
	UserFullName    string // resuelto en lecturas con detalle
	OrderDate       time.Time
	TotalAmount     decimal.Decimal
	Status          string
	ShippingAddress string
	Items           []OrderItem
}

// OrderItem línea de orden, inmutable una vez creada.
// UnitPrice es el snapshot del precio BASE del producto al momento de ordenar
// (las promociones son un concepto de catálogo, no de la orden).
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string // resuelto en lecturas con detalle
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal // Quantity × UnitPrice
}
