package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/pricing"
)

func promo(pct int64, start, end time.Time, active bool) *entity.Promotion {
	return &entity.Promotion{
		ID:                 "promo-1",
		Name:               "Descuento",
		DiscountPercentage: decimal.NewFromInt(pct),
		StartDate:          start,
		EndDate:            end,
		IsActive:           active,
	}
}

func TestResolve_PromocionVigente(t *testing.T) {
	now := time.Now()
	q := pricing.Resolve(decimal.NewFromInt(100),
		promo(20, now.Add(-time.Hour), now.Add(time.Hour), true), now)

	assert.True(t, q.Discounted)
	assert.True(t, q.FinalPrice.Equal(decimal.NewFromInt(80)),
		"100 con 20%% de descuento debe dar 80, dio %s", q.FinalPrice)
	assert.True(t, q.DiscountPercentage.Equal(decimal.NewFromInt(20)))
}

func TestResolve_SinPromocion(t *testing.T) {
	q := pricing.Resolve(decimal.NewFromInt(100), nil, time.Now())
	assert.False(t, q.Discounted)
	assert.True(t, q.FinalPrice.Equal(decimal.NewFromInt(100)))
}

func TestResolve_PromocionInactiva(t *testing.T) {
	now := time.Now()
	q := pricing.Resolve(decimal.NewFromInt(100),
		promo(20, now.Add(-time.Hour), now.Add(time.Hour), false), now)
	assert.False(t, q.Discounted)
	assert.True(t, q.FinalPrice.Equal(decimal.NewFromInt(100)))
}

func TestResolve_FueraDeVentana(t *testing.T) {
	now := time.Now()

	// Aún no empieza
	q := pricing.Resolve(decimal.NewFromInt(100),
		promo(20, now.Add(time.Hour), now.Add(2*time.Hour), true), now)
	assert.False(t, q.Discounted)

	// Ya terminó
	q = pricing.Resolve(decimal.NewFromInt(100),
		promo(20, now.Add(-2*time.Hour), now.Add(-time.Hour), true), now)
	assert.False(t, q.Discounted)
}

func TestResolve_BordesDeVentanaInclusivos(t *testing.T) {
	now := time.Now()

	q := pricing.Resolve(decimal.NewFromInt(100), promo(10, now, now.Add(time.Hour), true), now)
	assert.True(t, q.Discounted, "la fecha de inicio es inclusiva")

	q = pricing.Resolve(decimal.NewFromInt(100), promo(10, now.Add(-time.Hour), now, true), now)
	assert.True(t, q.Discounted, "la fecha de fin es inclusiva")
}

func TestResolve_DescuentoDecimal(t *testing.T) {
	now := time.Now()
	price := decimal.RequireFromString("59.99")
	p := promo(0, now.Add(-time.Hour), now.Add(time.Hour), true)
	p.DiscountPercentage = decimal.RequireFromString("12.5")

	q := pricing.Resolve(price, p, now)
	assert.True(t, q.Discounted)
	// 59.99 - 59.99*0.125 = 52.49125
	assert.True(t, q.FinalPrice.Equal(decimal.RequireFromString("52.49125")),
		"precio esperado 52.49125, dio %s", q.FinalPrice)
}
