package domain

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// Identity contexto autenticado explícito: se extrae del token y se pasa como
// argumento a los casos de uso (nada de estado global por request).
type Identity struct {
	UserID    string
	CompanyID string // vacío si el usuario no pertenece a una empresa
	Role      string
}

// IsStaff indica si el rol puede ver recursos ajenos (Admin o SuperAdmin).
func (i Identity) IsStaff() bool {
	return i.Role == entity.RoleAdmin || i.Role == entity.RoleSuperAdmin
}
