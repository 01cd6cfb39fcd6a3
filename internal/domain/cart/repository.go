package cart

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	// FindByID finds a cart with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)

	// FindByIDForUpdate finds a cart with its items and locks the cart row
	// until the surrounding transaction ends
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Cart, error)

	// Create persists a new, empty cart
	Create(ctx context.Context, cart *Cart) error

	// SaveItem creates or updates a cart item
	SaveItem(ctx context.Context, item *CartItem) error

	// DeleteItem deletes a single item of a cart
	DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// Delete deletes a cart together with its items
	Delete(ctx context.Context, id uuid.UUID) error

	// CountItems counts the items of a cart.
	// It returns shared.ErrNotFound when the cart does not exist.
	CountItems(ctx context.Context, id uuid.UUID) (int64, error)
}
