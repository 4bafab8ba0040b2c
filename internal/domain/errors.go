package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	// ErrInvalidCredentials cubre tanto "usuario no existe" como "password incorrecto":
	// el caller no debe poder distinguirlos (anti-enumeración de cuentas).
	ErrInvalidCredentials = errors.New("email o password incorrectos")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	// ErrConflict: la condición de stock pasó en validación pero falló al confirmar
	// (carrera perdida contra otra orden). El caller puede reintentar la orden completa.
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")
)

// ProductNotFoundError identifica qué producto de la orden no existe.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto %s no encontrado", e.ProductID)
}

// Is permite errors.Is(err, domain.ErrNotFound).
func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InsufficientStockError lleva las cantidades para diagnóstico del caller.
type InsufficientStockError struct {
	ProductID string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: disponible %d, solicitado %d",
		e.ProductID, e.Available, e.Requested)
}
