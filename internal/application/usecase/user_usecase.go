package usecase

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
	"github.com/jhoicas/Comercio-api/pkg/password"
)

var emailFold = cases.Fold()

// UserUseCase administración de usuarios: aprovisionamiento de Admins por
// empresa (solo SuperAdmin), listados y activación/desactivación de cuentas.
// El registro público de clientes vive en el paquete auth, no aquí.
type UserUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, companyRepo: companyRepo}
}

// CreateAdmin crea un Admin ligado a una empresa existente (solo SuperAdmin).
// El rol queda fijo en Admin: este flujo nunca crea SuperAdmins ni clientes.
func (uc *UserUseCase) CreateAdmin(ident domain.Identity, in dto.CreateAdminRequest) (*dto.UserResponse, error) {
	if ident.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.FirstName == "" || in.LastName == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("leer empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrInvalidInput
	}

	normalized := emailFold.String(in.Email)
	existing, err := uc.userRepo.FindByEmail(normalized)
	if err != nil {
		return nil, fmt.Errorf("buscar email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, salt, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("derivar password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    &company.ID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        normalized,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		if err == domain.ErrEmailAlreadyExists {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("crear admin: %w", err)
	}
	return toUserResponse(user), nil
}

// GetByID devuelve el perfil de un usuario. Cada quien puede verse a sí
// mismo; SuperAdmin ve a cualquiera; Admin solo a usuarios de su empresa.
func (uc *UserUseCase) GetByID(ident domain.Identity, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !uc.canView(ident, user) {
		return nil, domain.ErrForbidden
	}
	return toUserResponse(user), nil
}

// List lista todos los usuarios (solo SuperAdmin).
func (uc *UserUseCase) List(ident domain.Identity, page dto.PageRequest) (*dto.UserListResponse, error) {
	if ident.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	return toUserListResponse(list, page), nil
}

// ListByCompany lista los usuarios de una empresa. SuperAdmin cualquiera;
// Admin solo la propia.
func (uc *UserUseCase) ListByCompany(ident domain.Identity, companyID string, page dto.PageRequest) (*dto.UserListResponse, error) {
	if !ident.IsStaff() {
		return nil, domain.ErrForbidden
	}
	if ident.Role == entity.RoleAdmin && ident.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.userRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios por empresa: %w", err)
	}
	return toUserListResponse(list, page), nil
}

// SetStatus activa o desactiva una cuenta. El SuperAdmin no se puede
// desactivar: siempre debe quedar una cuenta raíz operable.
func (uc *UserUseCase) SetStatus(ident domain.Identity, id string, in dto.UpdateUserStatusRequest) (*dto.UserResponse, error) {
	if ident.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("leer usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if user.Role == entity.RoleSuperAdmin && !in.IsActive {
		return nil, domain.ErrInvalidInput
	}

	user.IsActive = in.IsActive
	if err := uc.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("actualizar usuario: %w", err)
	}
	return toUserResponse(user), nil
}

func (uc *UserUseCase) canView(ident domain.Identity, user *entity.User) bool {
	if ident.UserID == user.ID || ident.Role == entity.RoleSuperAdmin {
		return true
	}
	if ident.Role == entity.RoleAdmin && user.CompanyID != nil && *user.CompanyID == ident.CompanyID {
		return true
	}
	return false
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FullName:    u.FullName(),
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		City:        u.City,
		Role:        u.Role,
		CompanyID:   u.CompanyID,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

func toUserListResponse(list []*entity.User, page dto.PageRequest) *dto.UserListResponse {
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  page.Meta(),
	}
}
