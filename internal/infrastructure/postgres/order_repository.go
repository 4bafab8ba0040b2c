package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la orden y todas sus líneas con el mismo Querier: invocado
// dentro de la transacción del caller, todo confirma o nada confirma.
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (id, user_id, order_date, total_amount, status, shipping_address)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		order.ID, order.UserID, order.OrderDate, order.TotalAmount, order.Status, order.ShippingAddress,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, item := range order.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetWithDetails devuelve la orden con sus líneas, nombres de producto y el
// nombre completo del usuario resueltos vía JOIN. El LEFT JOIN a products
// tolera productos eliminados después de la compra.
func (r *OrderRepo) GetWithDetails(id string) (*entity.Order, error) {
	ctx := context.Background()
	var o entity.Order
	err := r.q.QueryRow(ctx, `
		SELECT o.id, o.user_id, u.first_name || ' ' || u.last_name,
			o.order_date, o.total_amount, o.status, o.shipping_address
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = $1`,
		id,
	).Scan(&o.ID, &o.UserID, &o.UserFullName, &o.OrderDate, &o.TotalAmount, &o.Status, &o.ShippingAddress)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT i.id, i.order_id, i.product_id, COALESCE(p.name, ''), i.quantity, i.unit_price, i.subtotal
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.Subtotal,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByUser lista las órdenes de un usuario (cabeceras con nombre resuelto).
func (r *OrderRepo) ListByUser(userID string, limit, offset int) ([]*entity.Order, error) {
	return r.list(`
		SELECT o.id, o.user_id, u.first_name || ' ' || u.last_name,
			o.order_date, o.total_amount, o.status, o.shipping_address
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.user_id = $1
		ORDER BY o.order_date DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
}

// ListAll lista todas las órdenes (vista administrativa).
func (r *OrderRepo) ListAll(limit, offset int) ([]*entity.Order, error) {
	return r.list(`
		SELECT o.id, o.user_id, u.first_name || ' ' || u.last_name,
			o.order_date, o.total_amount, o.status, o.shipping_address
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.order_date DESC LIMIT $1 OFFSET $2`,
		limit, offset)
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.UserFullName, &o.OrderDate,
			&o.TotalAmount, &o.Status, &o.ShippingAddress,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
