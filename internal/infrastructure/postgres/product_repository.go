package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, company_id, category_id, promotion_id, name, description, price,
		stock_quantity, image_url, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CompanyID, product.CategoryID, product.PromotionID,
		product.Name, product.Description, product.Price, product.StockQuantity,
		product.ImageURL, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.CategoryID, &p.PromotionID, &p.Name, &p.Description,
		&p.Price, &p.StockQuantity, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista el catálogo completo con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return r.scanMany(rows)
}

// ListByCategory lista productos de una categoría con paginación.
func (r *ProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return r.scanMany(rows)
}

// ListByCompany lista productos de una empresa con paginación.
func (r *ProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products by company: %w", err)
	}
	return r.scanMany(rows)
}

// ListByPromotion lista los productos asignados a una promoción (sin paginar:
// es el insumo para desasignar en lote y contar).
func (r *ProductRepo) ListByPromotion(promotionID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE promotion_id = $1`
	rows, err := r.q.Query(context.Background(), query, promotionID)
	if err != nil {
		return nil, fmt.Errorf("list products by promotion: %w", err)
	}
	return r.scanMany(rows)
}

// Search busca por palabra clave en nombre y descripción (ILIKE).
func (r *ProductRepo) Search(keyword string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, keyword, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return r.scanMany(rows)
}

// Update actualiza los campos editables del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, name = $3, description = $4, price = $5,
			stock_quantity = $6, image_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Description,
		product.Price, product.StockQuantity, product.ImageURL, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetPromotion asigna (o quita con nil) la promoción del producto.
func (r *ProductRepo) SetPromotion(productID string, promotionID *string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET promotion_id = $2, updated_at = now() WHERE id = $1`,
		productID, promotionID,
	)
	if err != nil {
		return fmt.Errorf("set product promotion: %w", err)
	}
	return nil
}

// DecrementStock resta quantity solo si el stock alcanza. La condición vive
// en el WHERE: dos órdenes compitiendo por las mismas unidades no pueden
// dejar el stock negativo, pierde la que encuentre la condición falsa.
func (r *ProductRepo) DecrementStock(productID string, quantity int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_quantity = stock_quantity - $2, updated_at = now()
		 WHERE id = $1 AND stock_quantity >= $2`,
		productID, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			// Ya figura en líneas de orden; el historial no se rompe.
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanMany(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.CategoryID, &p.PromotionID, &p.Name, &p.Description,
			&p.Price, &p.StockQuantity, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
