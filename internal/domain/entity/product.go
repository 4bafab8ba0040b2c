package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo de una empresa.
// StockQuantity nunca baja de cero: solo lo muta el decremento condicional
// de la transacción de órdenes (o la edición directa de admin).
type Product struct {
	ID            string
	CompanyID     string
	CategoryID    string
	PromotionID   *string // nil si no tiene promoción asignada
	Name          string
	Description   string
	Price         decimal.Decimal // precio base de venta, positivo
	StockQuantity int
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
