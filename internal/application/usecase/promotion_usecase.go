package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// PromotionUseCase gestión de promociones y su asignación a productos.
// Las promociones son globales (no por empresa): cualquier Admin puede
// crearlas y asignarlas a productos de su empresa.
type PromotionUseCase struct {
	promoRepo   repository.PromotionRepository
	productRepo repository.ProductRepository
}

// NewPromotionUseCase construye el caso de uso.
func NewPromotionUseCase(
	promoRepo repository.PromotionRepository,
	productRepo repository.ProductRepository,
) *PromotionUseCase {
	return &PromotionUseCase{promoRepo: promoRepo, productRepo: productRepo}
}

// Create crea una promoción. La ventana debe ser válida (fin después del
// inicio) y el porcentaje estar en (0, 100].
func (uc *PromotionUseCase) Create(ident domain.Identity, in dto.CreatePromotionRequest) (*dto.PromotionResponse, error) {
	if !ident.IsStaff() {
		return nil, domain.ErrForbidden
	}
	if err := validatePromotionInput(in.Name, in.DiscountPercentage, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	promo := &entity.Promotion{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Description:        in.Description,
		DiscountPercentage: in.DiscountPercentage,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		IsActive:           in.IsActive,
		CreatedAt:          time.Now(),
	}
	if err := uc.promoRepo.Create(promo); err != nil {
		return nil, fmt.Errorf("crear promoción: %w", err)
	}
	return uc.toResponse(promo)
}

// GetByID obtiene una promoción con su conteo de productos asignados.
func (uc *PromotionUseCase) GetByID(id string) (*dto.PromotionResponse, error) {
	promo, err := uc.promoRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer promoción: %w", err)
	}
	if promo == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(promo)
}

// List lista promociones paginadas.
func (uc *PromotionUseCase) List(page dto.PageRequest) (*dto.PromotionListResponse, error) {
	page.DefaultPage()
	list, err := uc.promoRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar promociones: %w", err)
	}
	resp := &dto.PromotionListResponse{
		Items: make([]dto.PromotionResponse, 0, len(list)),
		Page:  page.Meta(),
	}
	for _, promo := range list {
		r, err := uc.toResponse(promo)
		if err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, *r)
	}
	return resp, nil
}

// Update reemplaza los campos de la promoción. El recálculo de precios es
// implícito: el catálogo resuelve el descuento al leer.
func (uc *PromotionUseCase) Update(ident domain.Identity, id string, in dto.UpdatePromotionRequest) (*dto.PromotionResponse, error) {
	if !ident.IsStaff() {
		return nil, domain.ErrForbidden
	}
	if err := validatePromotionInput(in.Name, in.DiscountPercentage, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	promo, err := uc.promoRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer promoción: %w", err)
	}
	if promo == nil {
		return nil, domain.ErrNotFound
	}

	promo.Name = in.Name
	promo.Description = in.Description
	promo.DiscountPercentage = in.DiscountPercentage
	promo.StartDate = in.StartDate
	promo.EndDate = in.EndDate
	promo.IsActive = in.IsActive

	if err := uc.promoRepo.Update(promo); err != nil {
		return nil, fmt.Errorf("actualizar promoción: %w", err)
	}
	return uc.toResponse(promo)
}

// Delete elimina la promoción desasignando antes todos sus productos:
// ningún producto puede quedar apuntando a una promoción inexistente.
func (uc *PromotionUseCase) Delete(ident domain.Identity, id string) error {
	if !ident.IsStaff() {
		return domain.ErrForbidden
	}
	promo, err := uc.promoRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("leer promoción: %w", err)
	}
	if promo == nil {
		return domain.ErrNotFound
	}

	assigned, err := uc.productRepo.ListByPromotion(id)
	if err != nil {
		return fmt.Errorf("listar productos de la promoción: %w", err)
	}
	for _, p := range assigned {
		if err := uc.productRepo.SetPromotion(p.ID, nil); err != nil {
			return fmt.Errorf("desasignar producto %s: %w", p.ID, err)
		}
	}

	if err := uc.promoRepo.Delete(id); err != nil {
		return fmt.Errorf("eliminar promoción: %w", err)
	}
	return nil
}

// AssignProducts asigna la promoción a los productos dados. Un producto
// tiene a lo sumo una promoción: asignar reemplaza la anterior. Admin solo
// puede tocar productos de su empresa.
func (uc *PromotionUseCase) AssignProducts(ident domain.Identity, id string, in dto.AssignProductsRequest) error {
	return uc.setProducts(ident, id, in.ProductIDs, true)
}

// RemoveProducts quita la promoción de los productos dados.
func (uc *PromotionUseCase) RemoveProducts(ident domain.Identity, id string, in dto.AssignProductsRequest) error {
	return uc.setProducts(ident, id, in.ProductIDs, false)
}

func (uc *PromotionUseCase) setProducts(ident domain.Identity, promoID string, productIDs []string, assign bool) error {
	if !ident.IsStaff() {
		return domain.ErrForbidden
	}
	if len(productIDs) == 0 {
		return domain.ErrInvalidInput
	}
	promo, err := uc.promoRepo.GetByID(promoID)
	if err != nil {
		return fmt.Errorf("leer promoción: %w", err)
	}
	if promo == nil {
		return domain.ErrNotFound
	}

	// Validar todo el lote antes de mutar nada.
	products := make([]*entity.Product, 0, len(productIDs))
	for _, pid := range productIDs {
		product, err := uc.productRepo.GetByID(pid)
		if err != nil {
			return fmt.Errorf("leer producto: %w", err)
		}
		if product == nil {
			return &domain.ProductNotFoundError{ProductID: pid}
		}
		if ident.Role == entity.RoleAdmin && product.CompanyID != ident.CompanyID {
			return domain.ErrForbidden
		}
		products = append(products, product)
	}

	for _, product := range products {
		var target *string
		if assign {
			target = &promo.ID
		} else if product.PromotionID == nil || *product.PromotionID != promo.ID {
			// Quitar una promoción que el producto no tiene es un no-op.
			continue
		}
		if err := uc.productRepo.SetPromotion(product.ID, target); err != nil {
			return fmt.Errorf("asignar promoción a producto %s: %w", product.ID, err)
		}
	}
	return nil
}

func validatePromotionInput(name string, pct decimal.Decimal, start, end time.Time) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	if !pct.IsPositive() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return domain.ErrInvalidInput
	}
	if !end.After(start) {
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *PromotionUseCase) toResponse(p *entity.Promotion) (*dto.PromotionResponse, error) {
	assigned, err := uc.productRepo.ListByPromotion(p.ID)
	if err != nil {
		return nil, fmt.Errorf("contar productos de la promoción: %w", err)
	}
	return &dto.PromotionResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		DiscountPercentage: p.DiscountPercentage,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		ProductCount:       len(assigned),
	}, nil
}
