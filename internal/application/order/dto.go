package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/order"
)

// CreateOrderRequest represents a request to convert a cart into an order
type CreateOrderRequest struct {
	CartID uuid.UUID `json:"cart_id" binding:"required"`
}

// UpdateOrderRequest represents a staff request to change the payment status
type UpdateOrderRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=P C F"`
}

// OrderListFilter represents filter options for listing orders
type OrderListFilter struct {
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=P C F"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// OrderItemResponse represents an order item in API responses
type OrderItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerID    uuid.UUID           `json:"customer"`
	PlacedAt      time.Time           `json:"placed_at"`
	PaymentStatus string              `json:"payment_status"`
	Items         []OrderItemResponse `json:"items"`
	TotalPrice    decimal.Decimal     `json:"total_price"`
}

// ToOrderResponse converts an order to a response DTO
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.Price,
			TotalPrice: item.Subtotal(),
		}
	}
	return OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		PlacedAt:      o.PlacedAt,
		PaymentStatus: string(o.PaymentStatus),
		Items:         items,
		TotalPrice:    o.Total(),
	}
}

// ToOrderResponses converts a slice of orders to response DTOs
func ToOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
