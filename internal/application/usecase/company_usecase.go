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

// CompanyUseCase administración de empresas. Crear, actualizar y eliminar
// son exclusivos del SuperAdmin; las lecturas son públicas (el catálogo
// enlaza empresas).
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// Create registra una empresa nueva, activa por defecto.
func (uc *CompanyUseCase) Create(ident domain.Identity, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if ident.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		City:        in.City,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		LogoURL:     in.LogoURL,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, fmt.Errorf("crear empresa: %w", err)
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa. Lectura pública.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// List lista empresas paginadas. Lectura pública.
func (uc *CompanyUseCase) List(page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	list, err := uc.companyRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar empresas: %w", err)
	}
	resp := &dto.CompanyListResponse{
		Items: make([]dto.CompanyResponse, 0, len(list)),
		Page:  page.Meta(),
	}
	for _, c := range list {
		resp.Items = append(resp.Items, *toCompanyResponse(c))
	}
	return resp, nil
}

// Update actualiza campos de la empresa (solo SuperAdmin).
func (uc *CompanyUseCase) Update(ident domain.Identity, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if ident.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		company.Name = *in.Name
	}
	if in.Description != nil {
		company.Description = *in.Description
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.City != nil {
		company.City = *in.City
	}
	if in.PhoneNumber != nil {
		company.PhoneNumber = *in.PhoneNumber
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.LogoURL != nil {
		company.LogoURL = *in.LogoURL
	}
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}

	if err := uc.companyRepo.Update(company); err != nil {
		return nil, fmt.Errorf("actualizar empresa: %w", err)
	}
	return toCompanyResponse(company), nil
}

// Delete elimina una empresa (solo SuperAdmin).
func (uc *CompanyUseCase) Delete(ident domain.Identity, id string) error {
	if ident.Role != entity.RoleSuperAdmin {
		return domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("leer empresa: %w", err)
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if err := uc.companyRepo.Delete(id); err != nil {
		return fmt.Errorf("eliminar empresa: %w", err)
	}
	return nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Address:     c.Address,
		City:        c.City,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		LogoURL:     c.LogoURL,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}
