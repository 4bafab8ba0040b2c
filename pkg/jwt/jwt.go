package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role y CompanyID viajan en el token para que el middleware RBAC y el scoping
// por empresa no tengan que consultar la DB en cada request.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id,omitempty"` // vacío para SuperAdmin y clientes finales
	Role      string `json:"role"`                 // "SuperAdmin" | "Admin" | "User"
}

// Options parámetros de emisión/validación de tokens. Issuer y Audience se
// validan en Parse; la clave es única por proceso.
type Options struct {
	Secret     string
	Issuer     string
	Audience   string
	ExpMinutes int
}

// Generate genera un token JWT HS256 firmado con subject=userID y los claims de la app.
// Devuelve también el instante de expiración para incluirlo en la respuesta de auth.
func Generate(opts Options, userID, companyID, role string) (string, time.Time, error) {
	if opts.Secret == "" {
		return "", time.Time{}, fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	exp := now.Add(time.Duration(opts.ExpMinutes) * time.Minute)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    opts.Issuer,
			Audience:  jwt.ClaimStrings{opts.Audience},
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(opts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse valida firma, expiración, issuer y audience, y devuelve los claims de la app.
// Retorna error si el token es inválido, expirado, de otro emisor o con firma incorrecta.
func Parse(opts Options, tokenString string) (*Claims, error) {
	if opts.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return []byte(opts.Secret), nil
		},
		jwt.WithIssuer(opts.Issuer),
		jwt.WithAudience(opts.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
