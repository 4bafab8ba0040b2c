package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
)

// PromotionHandler maneja promociones y su asignación a productos.
type PromotionHandler struct {
	uc        *usecase.PromotionUseCase
	productUC *usecase.ProductUseCase
}

// NewPromotionHandler construye el handler de promociones.
func NewPromotionHandler(uc *usecase.PromotionUseCase, productUC *usecase.ProductUseCase) *PromotionHandler {
	return &PromotionHandler{uc: uc, productUC: productUC}
}

// List lista promociones (público).
func (h *PromotionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una promoción (público).
func (h *PromotionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListProducts lista los productos de una promoción con precios efectivos (público).
func (h *PromotionHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.productUC.ListByPromotion(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create crea una promoción (staff).
func (h *PromotionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePromotionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(GetIdentity(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza los campos de una promoción (staff).
func (h *PromotionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePromotionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una promoción desasignando sus productos (staff).
func (h *PromotionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetIdentity(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignProducts asigna la promoción a una lista de productos (staff).
func (h *PromotionHandler) AssignProducts(c *fiber.Ctx) error {
	var in dto.AssignProductsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.AssignProducts(GetIdentity(c), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveProducts quita la promoción de una lista de productos (staff).
func (h *PromotionHandler) RemoveProducts(c *fiber.Ctx) error {
	var in dto.AssignProductsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.RemoveProducts(GetIdentity(c), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
