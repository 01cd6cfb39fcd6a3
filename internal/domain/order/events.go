package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// AggregateTypeOrder is the aggregate type of order events
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderCreated         = "order.created"
	EventTypePaymentStatusChanged = "order.payment_status_changed"
)

// OrderCreatedItem describes one line of a created order
type OrderCreatedItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderCreatedEvent is published after an order has been committed
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID    uuid.UUID          `json:"order_id"`
	CustomerID uuid.UUID          `json:"customer_id"`
	PlacedAt   time.Time          `json:"placed_at"`
	Total      decimal.Decimal    `json:"total"`
	Items      []OrderCreatedItem `json:"items"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(o *Order) *OrderCreatedEvent {
	items := make([]OrderCreatedItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderCreatedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		CustomerID:      o.CustomerID,
		PlacedAt:        o.PlacedAt,
		Total:           o.Total(),
		Items:           items,
	}
}

// PaymentStatusChangedEvent is published when an admin changes the payment status
type PaymentStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID   uuid.UUID     `json:"order_id"`
	OldStatus PaymentStatus `json:"old_status"`
	NewStatus PaymentStatus `json:"new_status"`
}

// NewPaymentStatusChangedEvent creates a new PaymentStatusChangedEvent
func NewPaymentStatusChangedEvent(o *Order, old PaymentStatus) *PaymentStatusChangedEvent {
	return &PaymentStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentStatusChanged, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OldStatus:       old,
		NewStatus:       o.PaymentStatus,
	}
}
