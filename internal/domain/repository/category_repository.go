package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List(limit, offset int) ([]*entity.Category, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
