package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.PromotionRepository = (*PromotionRepo)(nil)

const promotionColumns = `id, name, description, discount_percentage, start_date, end_date, is_active, created_at`

// PromotionRepo implementación del puerto PromotionRepository sobre PostgreSQL.
type PromotionRepo struct {
	q Querier
}

// NewPromotionRepository construye el adaptador de persistencia para promociones.
func NewPromotionRepository(q Querier) *PromotionRepo {
	return &PromotionRepo{q: q}
}

// Create persiste una nueva promoción.
func (r *PromotionRepo) Create(promotion *entity.Promotion) error {
	query := `
		INSERT INTO promotions (` + promotionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		promotion.ID, promotion.Name, promotion.Description, promotion.DiscountPercentage,
		promotion.StartDate, promotion.EndDate, promotion.IsActive, promotion.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert promotion: %w", err)
	}
	return nil
}

// GetByID obtiene una promoción por ID.
func (r *PromotionRepo) GetByID(id string) (*entity.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`
	var p entity.Promotion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.DiscountPercentage,
		&p.StartDate, &p.EndDate, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion: %w", err)
	}
	return &p, nil
}

// GetByIDs resuelve varias promociones en un solo viaje (para decorar listados
// de catálogo). IDs inexistentes simplemente no aparecen en el mapa.
func (r *PromotionRepo) GetByIDs(ids []string) (map[string]*entity.Promotion, error) {
	result := make(map[string]*entity.Promotion, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get promotions by ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Promotion
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.DiscountPercentage,
			&p.StartDate, &p.EndDate, &p.IsActive, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		result[p.ID] = &p
	}
	return result, rows.Err()
}

// List lista promociones con paginación.
func (r *PromotionRepo) List(limit, offset int) ([]*entity.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Promotion
	for rows.Next() {
		var p entity.Promotion
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.DiscountPercentage,
			&p.StartDate, &p.EndDate, &p.IsActive, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza una promoción existente.
func (r *PromotionRepo) Update(promotion *entity.Promotion) error {
	query := `
		UPDATE promotions SET name = $2, description = $3, discount_percentage = $4,
			start_date = $5, end_date = $6, is_active = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		promotion.ID, promotion.Name, promotion.Description, promotion.DiscountPercentage,
		promotion.StartDate, promotion.EndDate, promotion.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update promotion: %w", err)
	}
	return nil
}

// Delete elimina una promoción por ID.
func (r *PromotionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	return nil
}
