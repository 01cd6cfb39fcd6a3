package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll finds orders newest first.
	// Supported filter keys: customer_id, payment_status
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Create inserts the order and all its items in one batch
	Create(ctx context.Context, o *Order) error

	// UpdatePaymentStatus persists the payment status of an existing order
	UpdatePaymentStatus(ctx context.Context, o *Order) error

	// Delete deletes an order and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks if an order exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// CountItemsByProduct counts order items that reference a product
	CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
