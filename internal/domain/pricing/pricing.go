package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// Quote resultado del cálculo de precio efectivo (servicio de dominio, sin I/O).
type Quote struct {
	FinalPrice         decimal.Decimal
	Discounted         bool
	DiscountPercentage decimal.Decimal
}

var cien = decimal.NewFromInt(100)

// Resolve calcula el precio efectivo de un producto en el instante t.
// Con promoción vigente: precio - precio*porcentaje/100; si no, el precio base.
// Solo lo usa la capa de catálogo: la orden siempre congela el precio base.
func Resolve(price decimal.Decimal, promo *entity.Promotion, t time.Time) Quote {
	if promo == nil || !promo.EffectiveAt(t) {
		return Quote{FinalPrice: price}
	}
	discounted := price.Sub(price.Mul(promo.DiscountPercentage).Div(cien))
	return Quote{
		FinalPrice:         discounted,
		Discounted:         true,
		DiscountPercentage: promo.DiscountPercentage,
	}
}
