package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/order"
)

// OrderHandler maneja colocación y consulta de órdenes.
type OrderHandler struct {
	placeUC *order.PlaceOrderUseCase
	queryUC *order.OrderQueryUseCase
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(placeUC *order.PlaceOrderUseCase, queryUC *order.OrderQueryUseCase) *OrderHandler {
	return &OrderHandler{placeUC: placeUC, queryUC: queryUC}
}

// Create godoc
// @Summary      Colocar una orden
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "líneas de la orden"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.placeUC.PlaceOrder(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Consultar una orden (dueño o staff)
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.GetByID(GetIdentity(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Mis órdenes
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Security     BearerAuth
// @Router       /api/orders/mine [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.queryUC.ListMine(GetIdentity(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Todas las órdenes (Admin/SuperAdmin)
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders [get]
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.queryUC.ListAll(GetIdentity(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
