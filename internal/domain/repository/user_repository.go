package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// FindByEmail es case-insensitive: el email es la identidad única global.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	Count() (int, error)
	Delete(id string) error
}
