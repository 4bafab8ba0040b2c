package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
// Create inserta la orden y sus líneas como una sola unidad (mismo Querier,
// dentro de la transacción del caller).
type OrderRepository interface {
	Create(order *entity.Order) error
	// GetWithDetails devuelve la orden con nombres de producto y del usuario resueltos.
	GetWithDetails(id string) (*entity.Order, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Order, error)
	ListAll(limit, offset int) ([]*entity.Order, error)
}
