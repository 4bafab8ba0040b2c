package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
)

// UserHandler maneja la administración de usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// CreateAdmin aprovisiona un Admin ligado a una empresa (SuperAdmin).
func (h *UserHandler) CreateAdmin(c *fiber.Ctx) error {
	var in dto.CreateAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateAdmin(GetIdentity(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devuelve el perfil de un usuario (self, staff con scoping).
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetIdentity(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Me devuelve el perfil del usuario autenticado.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	ident := GetIdentity(c)
	out, err := h.uc.GetByID(ident, ident.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista todos los usuarios (SuperAdmin).
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetIdentity(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCompany lista los usuarios de una empresa (staff con scoping).
func (h *UserHandler) ListByCompany(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(GetIdentity(c), c.Params("id"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetStatus activa o desactiva una cuenta (SuperAdmin).
func (h *UserHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateUserStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetStatus(GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
