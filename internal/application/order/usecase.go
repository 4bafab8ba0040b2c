package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// PlaceOrderUseCase coloca una orden de compra de forma transaccional:
// valida cada línea contra el stock vivo, congela el precio base como
// UnitPrice y confirma orden + decrementos en una sola transacción.
type PlaceOrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
}

// NewPlaceOrderUseCase construye el caso de uso.
func NewPlaceOrderUseCase(txRunner TxRunner, orderRepo repository.OrderRepository) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// PlaceOrder valida y confirma la orden del usuario.
//
// Fase 1 (validación, en orden de la solicitud): producto existe, cantidad
// alcanza el stock leído, subtotal = precio base × cantidad. Cualquier fallo
// aborta la orden completa sin mutar nada.
// Fase 2 (misma transacción): decremento condicional por línea
// ("resta solo si el stock alcanza") e inserción de orden + líneas. Si el
// decremento no aplica —otra orden ganó la carrera entre validación y
// commit— se devuelve ErrConflict y la transacción entera se revierte.
//
// IDs de producto repetidos en la solicitud son líneas independientes: se
// validan y decrementan por separado, sin fusionar cantidades (comportamiento
// observado del sistema, cubierto por tests).
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity < 1 || item.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	newOrder := &entity.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		OrderDate:       now,
		Status:          entity.OrderStatusPending,
		ShippingAddress: in.ShippingAddress,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		total := decimal.Zero
		items := make([]entity.OrderItem, 0, len(in.Items))

		// Fase 1: validar línea por línea en el orden solicitado.
		for _, line := range in.Items {
			product, err := productRepo.GetByID(line.ProductID)
			if err != nil {
				return fmt.Errorf("leer producto: %w", err)
			}
			if product == nil {
				return &domain.ProductNotFoundError{ProductID: line.ProductID}
			}
			if line.Quantity > product.StockQuantity {
				return &domain.InsufficientStockError{
					ProductID: product.ID,
					Available: product.StockQuantity,
					Requested: line.Quantity,
				}
			}

			// UnitPrice congela el precio BASE del producto: las promociones
			// solo afectan la vista de catálogo, nunca la orden.
			unitPrice := product.Price
			subtotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)

			items = append(items, entity.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   newOrder.ID,
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: unitPrice,
				Subtotal:  subtotal,
			})
		}

		// Fase 2: decremento condicional por línea + inserción de la orden.
		// El UPDATE solo resta si el stock sigue alcanzando; si no aplica,
		// otra orden ganó la carrera y toda la transacción se revierte.
		for _, item := range items {
			ok, err := productRepo.DecrementStock(item.ProductID, item.Quantity)
			if err != nil {
				return fmt.Errorf("decrementar stock: %w", err)
			}
			if !ok {
				return domain.ErrConflict
			}
		}

		newOrder.TotalAmount = total
		newOrder.Items = items
		if err := orderRepo.Create(newOrder); err != nil {
			return fmt.Errorf("insertar orden: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Releer el estado confirmado para resolver nombres de producto y del usuario.
	created, err := uc.orderRepo.GetWithDetails(newOrder.ID)
	if err != nil {
		return nil, fmt.Errorf("releer orden creada: %w", err)
	}
	if created == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(created), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:              o.ID,
		OrderDate:       o.OrderDate,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		UserID:          o.UserID,
		UserFullName:    o.UserFullName,
		Items:           make([]dto.OrderItemResponse, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return resp
}
