package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "P"
	PaymentStatusComplete PaymentStatus = "C"
	PaymentStatusFailed   PaymentStatus = "F"
)

// IsValid checks if the payment status is one of the known values
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusComplete, PaymentStatusFailed:
		return true
	}
	return false
}

// Label returns the human readable name of the status
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusComplete:
		return "Complete"
	case PaymentStatusFailed:
		return "Failed"
	}
	return string(s)
}

// ErrOrderNotFound is returned when an order does not exist or is not visible
var ErrOrderNotFound = shared.NewNotFoundError("No order with the given ID was found.")

// Line is the input for one order item: what was bought and at which price
type Line struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// Order is a durable record of a purchase.
// Items are a frozen snapshot; only the payment status changes after placement.
type Order struct {
	shared.BaseAggregateRoot
	PlacedAt      time.Time
	CustomerID    uuid.UUID
	PaymentStatus PaymentStatus
	Items         []OrderItem
}

// OrderItem is an immutable snapshot of a product line at order time
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
}

// Subtotal returns quantity times the snapshot price
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PlaceOrder creates a pending order for a customer from the given lines
func PlaceOrder(customerID uuid.UUID, lines []Line) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("Order requires a customer")
	}
	if len(lines) == 0 {
		return nil, shared.NewValidationError("Order must contain at least one item")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		PaymentStatus:     PaymentStatusPending,
		Items:             make([]OrderItem, 0, len(lines)),
	}
	o.PlacedAt = o.CreatedAt

	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, shared.NewValidationError("Ensure quantity is greater than or equal to 1")
		}
		if line.UnitPrice.IsNegative() {
			return nil, shared.NewValidationError("Price cannot be negative")
		}
		o.Items = append(o.Items, OrderItem{
			ID:        uuid.New(),
			OrderID:   o.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
		})
	}

	o.AddDomainEvent(NewOrderCreatedEvent(o))
	return o, nil
}

// UpdatePaymentStatus changes the payment status
func (o *Order) UpdatePaymentStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return shared.NewValidationError("\"" + string(status) + "\" is not a valid choice.")
	}
	if o.PaymentStatus == status {
		return nil
	}
	old := o.PaymentStatus
	o.PaymentStatus = status
	o.Touch()
	o.AddDomainEvent(NewPaymentStatusChangedEvent(o, old))
	return nil
}

// Total returns the sum of all item subtotals
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount returns the number of units in the order
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
