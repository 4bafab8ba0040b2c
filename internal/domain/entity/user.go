package entity

import "time"

// Roles válidos para User. Un solo SuperAdmin global (sin empresa);
// Admin siempre pertenece a una empresa; User es el cliente final.
const (
	RoleSuperAdmin = "SuperAdmin"
	RoleAdmin      = "Admin"
	RoleUser       = "User"
)

// User representa un usuario del sistema.
// PasswordHash y PasswordSalt se almacenan en base64 en columnas separadas;
// el password en claro nunca se persiste.
type User struct {
	ID              string
	CompanyID       *string // nil para SuperAdmin y clientes finales
	FirstName       string
	LastName        string
	Email           string // único, comparación case-insensitive
	PasswordHash    string
	PasswordSalt    string
	PhoneNumber     string
	Address         string
	City            string
	DateOfBirth     *time.Time
	Role            string
	ProfileImageURL string
	IsActive        bool
	CreatedAt       time.Time
}

// FullName nombre para mostrar en órdenes y respuestas de auth.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
