package order

import (
	"fmt"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// OrderQueryUseCase lecturas de órdenes con control de acceso por claims.
type OrderQueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrderQueryUseCase construye el caso de uso de lectura.
func NewOrderQueryUseCase(orderRepo repository.OrderRepository) *OrderQueryUseCase {
	return &OrderQueryUseCase{orderRepo: orderRepo}
}

// GetByID devuelve la orden con detalle. Un usuario solo ve sus propias
// órdenes; Admin y SuperAdmin ven cualquiera.
func (uc *OrderQueryUseCase) GetByID(ident domain.Identity, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetWithDetails(orderID)
	if err != nil {
		return nil, fmt.Errorf("leer orden: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.UserID != ident.UserID && !ident.IsStaff() {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(o), nil
}

// ListMine lista las órdenes del usuario autenticado.
func (uc *OrderQueryUseCase) ListMine(ident domain.Identity, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByUser(ident.UserID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes del usuario: %w", err)
	}
	return toOrderListResponse(orders, page), nil
}

// ListAll lista todas las órdenes (solo Admin/SuperAdmin).
func (uc *OrderQueryUseCase) ListAll(ident domain.Identity, page dto.PageRequest) (*dto.OrderListResponse, error) {
	if !ident.IsStaff() {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	orders, err := uc.orderRepo.ListAll(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes: %w", err)
	}
	return toOrderListResponse(orders, page), nil
}

func toOrderListResponse(orders []*entity.Order, page dto.PageRequest) *dto.OrderListResponse {
	resp := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(orders)),
		Page:  page.Meta(),
	}
	for _, o := range orders {
		resp.Items = append(resp.Items, *toOrderResponse(o))
	}
	return resp
}
