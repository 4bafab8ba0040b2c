package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/pricing"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// ProductUseCase catálogo de productos. Las lecturas son públicas y aplican
// la promoción vigente al vuelo; las escrituras exigen Admin de la empresa
// dueña (o SuperAdmin).
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	companyRepo  repository.CompanyRepository
	promoRepo    repository.PromotionRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	companyRepo repository.CompanyRepository,
	promoRepo repository.PromotionRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		companyRepo:  companyRepo,
		promoRepo:    promoRepo,
	}
}

// Create crea un producto en la empresa del Admin autenticado.
func (uc *ProductUseCase) Create(ident domain.Identity, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !ident.IsStaff() {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.Price.IsNegative() || in.Price.IsZero() || in.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("leer categoría: %w", err)
	}
	if category == nil {
		return nil, domain.ErrInvalidInput
	}
	// La categoría ancla la empresa del producto; un Admin no puede colgar
	// productos de categorías ajenas.
	if ident.Role == entity.RoleAdmin && category.CompanyID != ident.CompanyID {
		return nil, domain.ErrForbidden
	}

	product := &entity.Product{
		ID:            uuid.New().String(),
		CompanyID:     category.CompanyID,
		CategoryID:    category.ID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		ImageURL:      in.ImageURL,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return uc.decorateOne(product)
}

// GetByID obtiene el detalle de un producto con nombres resueltos y el
// precio promocional si aplica "ahora". Lectura pública.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	resp, err := uc.decorateOne(product)
	if err != nil {
		return nil, err
	}
	if category, err := uc.categoryRepo.GetByID(product.CategoryID); err == nil && category != nil {
		resp.CategoryName = category.Name
	}
	if company, err := uc.companyRepo.GetByID(product.CompanyID); err == nil && company != nil {
		resp.CompanyName = company.Name
	}
	return resp, nil
}

// Update actualiza campos del producto. Admin solo dentro de su empresa.
func (uc *ProductUseCase) Update(ident domain.Identity, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.ownedProduct(ident, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() || in.Price.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.StockQuantity = *in.StockQuantity
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("leer categoría: %w", err)
		}
		if category == nil || category.CompanyID != product.CompanyID {
			return nil, domain.ErrInvalidInput
		}
		product.CategoryID = category.ID
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	return uc.decorateOne(product)
}

// Delete elimina un producto. Admin solo dentro de su empresa.
func (uc *ProductUseCase) Delete(ident domain.Identity, id string) error {
	if _, err := uc.ownedProduct(ident, id); err != nil {
		return err
	}
	if err := uc.productRepo.Delete(id); err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	return nil
}

// List catálogo completo paginado. Lectura pública.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return uc.decorateList(list, page)
}

// ListByCategory catálogo filtrado por categoría. Lectura pública.
func (uc *ProductUseCase) ListByCategory(categoryID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.productRepo.ListByCategory(categoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos por categoría: %w", err)
	}
	return uc.decorateList(list, page)
}

// ListByCompany catálogo de una empresa. Lectura pública.
func (uc *ProductUseCase) ListByCompany(companyID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.productRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos por empresa: %w", err)
	}
	return uc.decorateList(list, page)
}

// Search búsqueda por palabra clave en nombre y descripción. Lectura pública.
func (uc *ProductUseCase) Search(keyword string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	if keyword == "" {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	list, err := uc.productRepo.Search(keyword, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("buscar productos: %w", err)
	}
	return uc.decorateList(list, page)
}

// ListByPromotion lista los productos asignados a una promoción con su
// precio efectivo. Lectura pública.
func (uc *ProductUseCase) ListByPromotion(promotionID string) (*dto.ProductListResponse, error) {
	promo, err := uc.promoRepo.GetByID(promotionID)
	if err != nil {
		return nil, fmt.Errorf("leer promoción: %w", err)
	}
	if promo == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.productRepo.ListByPromotion(promotionID)
	if err != nil {
		return nil, fmt.Errorf("listar productos de la promoción: %w", err)
	}

	now := time.Now()
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp := baseProductResponse(p)
		applyPromotion(&resp, promo, p, now)
		items = append(items, resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items)},
	}, nil
}

// ownedProduct carga el producto y verifica que el caller pueda mutarlo.
func (uc *ProductUseCase) ownedProduct(ident domain.Identity, id string) (*entity.Product, error) {
	if !ident.IsStaff() {
		return nil, domain.ErrForbidden
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if ident.Role == entity.RoleAdmin && product.CompanyID != ident.CompanyID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

// decorateList arma las respuestas resolviendo las promociones del lote en
// un solo viaje y calculando el precio efectivo al instante actual.
func (uc *ProductUseCase) decorateList(list []*entity.Product, page dto.PageRequest) (*dto.ProductListResponse, error) {
	promoIDs := make([]string, 0, len(list))
	seen := map[string]bool{}
	for _, p := range list {
		if p.PromotionID != nil && !seen[*p.PromotionID] {
			seen[*p.PromotionID] = true
			promoIDs = append(promoIDs, *p.PromotionID)
		}
	}

	promos := map[string]*entity.Promotion{}
	if len(promoIDs) > 0 {
		var err error
		promos, err = uc.promoRepo.GetByIDs(promoIDs)
		if err != nil {
			return nil, fmt.Errorf("resolver promociones: %w", err)
		}
	}

	now := time.Now()
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp := baseProductResponse(p)
		if p.PromotionID != nil {
			applyPromotion(&resp, promos[*p.PromotionID], p, now)
		}
		items = append(items, resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  page.Meta(),
	}, nil
}

func (uc *ProductUseCase) decorateOne(p *entity.Product) (*dto.ProductResponse, error) {
	resp := baseProductResponse(p)
	if p.PromotionID != nil {
		promo, err := uc.promoRepo.GetByID(*p.PromotionID)
		if err != nil {
			return nil, fmt.Errorf("resolver promoción: %w", err)
		}
		applyPromotion(&resp, promo, p, time.Now())
	}
	return &resp, nil
}

func baseProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageURL,
		CategoryID:    p.CategoryID,
		CompanyID:     p.CompanyID,
		PromotionID:   p.PromotionID,
		CreatedAt:     p.CreatedAt,
	}
}

// applyPromotion anota el precio con descuento solo si la promoción está
// vigente en este instante; fuera de ventana la respuesta va sin descuento.
func applyPromotion(resp *dto.ProductResponse, promo *entity.Promotion, p *entity.Product, now time.Time) {
	if promo == nil {
		return
	}
	quote := pricing.Resolve(p.Price, promo, now)
	if !quote.Discounted {
		return
	}
	resp.PromotionName = promo.Name
	resp.DiscountPercentage = &quote.DiscountPercentage
	resp.DiscountedPrice = &quote.FinalPrice
}
