package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	ListByPromotion(promotionID string) ([]*entity.Product, error)
	Search(keyword string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// SetPromotion asigna (o quita con nil) la promoción del producto.
	SetPromotion(productID string, promotionID *string) error
	// DecrementStock resta quantity solo si el stock alcanza
	// (UPDATE condicional, una sola operación atómica por producto).
	// Devuelve false si la condición no se cumplió.
	DecrementStock(productID string, quantity int) (bool, error)
	Delete(id string) error
}
