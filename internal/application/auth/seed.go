package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/pkg/password"
)

// EnsureSuperAdmin crea el SuperAdmin global si la tabla de usuarios está vacía.
// Se ejecuta una vez al arranque; con usuarios existentes no hace nada.
// El SuperAdmin no pertenece a ninguna empresa (CompanyID nil, instancia única).
func (uc *AuthUseCase) EnsureSuperAdmin(email, plainPassword string) error {
	count, err := uc.userRepo.Count()
	if err != nil {
		return fmt.Errorf("contar usuarios: %w", err)
	}
	if count > 0 {
		return nil
	}
	if plainPassword == "" {
		return fmt.Errorf("seed: SEED_SUPERADMIN_PASSWORD vacío con base de datos sin usuarios")
	}

	hash, salt, err := password.Hash(plainPassword)
	if err != nil {
		return fmt.Errorf("hashear password del seed: %w", err)
	}

	superAdmin := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    "Super",
		LastName:     "Admin",
		Email:        uc.NormalizeEmail(email),
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         entity.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(superAdmin); err != nil {
		return fmt.Errorf("crear SuperAdmin inicial: %w", err)
	}
	return nil
}
