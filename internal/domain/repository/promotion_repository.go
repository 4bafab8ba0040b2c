package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// PromotionRepository define el puerto de persistencia para Promotion (DIP).
// GetByIDs permite resolver promociones de un listado de productos en un
// solo viaje (lookups explícitos en lote, sin lazy loading).
type PromotionRepository interface {
	Create(promotion *entity.Promotion) error
	GetByID(id string) (*entity.Promotion, error)
	GetByIDs(ids []string) (map[string]*entity.Promotion, error)
	List(limit, offset int) ([]*entity.Promotion, error)
	Update(promotion *entity.Promotion) error
	Delete(id string) error
}
