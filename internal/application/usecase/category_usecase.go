package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías. Lecturas públicas, escrituras de Admin
// sobre su propia empresa (SuperAdmin sobre cualquiera).
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// Create crea una categoría en la empresa del Admin autenticado.
func (uc *CategoryUseCase) Create(ident domain.Identity, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if !ident.IsStaff() {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	// SuperAdmin no pertenece a ninguna empresa: las categorías nacen
	// siempre de un Admin con empresa asignada.
	if ident.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}

	category := &entity.Category{
		ID:          uuid.New().String(),
		CompanyID:   ident.CompanyID,
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("crear categoría: %w", err)
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría. Lectura pública.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer categoría: %w", err)
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// List lista categorías paginadas. Lectura pública.
func (uc *CategoryUseCase) List(page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	list, err := uc.categoryRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	return toCategoryListResponse(list, page), nil
}

// ListByCompany lista las categorías de una empresa. Lectura pública.
func (uc *CategoryUseCase) ListByCompany(companyID string, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	list, err := uc.categoryRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar categorías por empresa: %w", err)
	}
	return toCategoryListResponse(list, page), nil
}

// Update actualiza una categoría. Admin solo dentro de su empresa.
func (uc *CategoryUseCase) Update(ident domain.Identity, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.ownedCategory(ident, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.ImageURL != nil {
		category.ImageURL = *in.ImageURL
	}

	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("actualizar categoría: %w", err)
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría. Admin solo dentro de su empresa.
func (uc *CategoryUseCase) Delete(ident domain.Identity, id string) error {
	if _, err := uc.ownedCategory(ident, id); err != nil {
		return err
	}
	if err := uc.categoryRepo.Delete(id); err != nil {
		return fmt.Errorf("eliminar categoría: %w", err)
	}
	return nil
}

func (uc *CategoryUseCase) ownedCategory(ident domain.Identity, id string) (*entity.Category, error) {
	if !ident.IsStaff() {
		return nil, domain.ErrForbidden
	}
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer categoría: %w", err)
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if ident.Role == entity.RoleAdmin && category.CompanyID != ident.CompanyID {
		return nil, domain.ErrForbidden
	}
	return category, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt,
	}
}

func toCategoryListResponse(list []*entity.Category, page dto.PageRequest) *dto.CategoryListResponse {
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  page.Meta(),
	}
}
