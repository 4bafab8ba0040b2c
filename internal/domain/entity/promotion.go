package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion descuento porcentual con ventana de vigencia.
// El precio con descuento se calcula al leer, nunca se almacena.
type Promotion struct {
	ID                 string
	Name               string
	Description        string
	DiscountPercentage decimal.Decimal // 0–100
	StartDate          time.Time
	EndDate            time.Time
	IsActive           bool
	CreatedAt          time.Time
}

// EffectiveAt indica si la promoción aplica en el instante t:
// activa y t dentro de [StartDate, EndDate].
func (p *Promotion) EffectiveAt(t time.Time) bool {
	return p.IsActive && !t.Before(p.StartDate) && !t.After(p.EndDate)
}
