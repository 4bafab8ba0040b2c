package auth

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
	"github.com/jhoicas/Comercio-api/pkg/jwt"
	"github.com/jhoicas/Comercio-api/pkg/password"
)

// AuthUseCase casos de uso de autenticación: registro público y login.
// Solo deja salir dos clases de error hacia el caller (email duplicado y
// credenciales inválidas); cualquier fallo interno se colapsa en
// ErrStoreUnavailable para no filtrar causas.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtOpts     jwt.Options
	fold        cases.Caser
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtOpts jwt.Options) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtOpts:     jwtOpts,
		fold:        cases.Fold(),
	}
}

// NormalizeEmail pliega mayúsculas/minúsculas Unicode: el email es identidad
// única case-insensitive en todo el sistema.
func (uc *AuthUseCase) NormalizeEmail(email string) string {
	return uc.fold.String(email)
}

// Register crea un usuario con rol User (forzado: el registro público jamás
// crea Admin/SuperAdmin; ese aprovisionamiento es un flujo aparte).
// Devuelve la misma forma que Login: token firmado + perfil.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.FirstName == "" || in.LastName == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	normalized := uc.NormalizeEmail(in.Email)
	existing, err := uc.userRepo.FindByEmail(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if existing != nil {
		// No se revela más que "ya existe": mismo mensaje para cualquier variante.
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, salt, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        normalized,
		PasswordHash: hash,
		PasswordSalt: salt,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		City:         in.City,
		DateOfBirth:  in.DateOfBirth,
		Role:         entity.RoleUser, // siempre User, ignore lo que mande el caller
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		if err == domain.ErrEmailAlreadyExists {
			// Carrera con otro registro del mismo email: el índice único manda.
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return uc.buildAuthResponse(user)
}

// Login verifica email/password y emite el token firmado.
// "Usuario no existe", "password incorrecto" y "cuenta inactiva" devuelven
// todos ErrInvalidCredentials: el caller no puede enumerar cuentas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(uc.NormalizeEmail(in.Email))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(in.Password, user.PasswordHash, user.PasswordSalt) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.buildAuthResponse(user)
}

func (uc *AuthUseCase) buildAuthResponse(user *entity.User) (*dto.AuthResponse, error) {
	companyID := ""
	companyName := ""
	if user.CompanyID != nil {
		companyID = *user.CompanyID
		if company, err := uc.companyRepo.GetByID(companyID); err == nil && company != nil {
			companyName = company.Name
		}
	}

	token, exp, err := jwt.Generate(uc.jwtOpts, user.ID, companyID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return &dto.AuthResponse{
		Token:           token,
		Expiration:      exp,
		UserID:          user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		FullName:        user.FullName(),
		Email:           user.Email,
		PhoneNumber:     user.PhoneNumber,
		Address:         user.Address,
		City:            user.City,
		Role:            user.Role,
		ProfileImageURL: user.ProfileImageURL,
		CompanyID:       user.CompanyID,
		CompanyName:     companyName,
	}, nil
}
