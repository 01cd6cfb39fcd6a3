package customer

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByUserID finds the customer linked to a user identity
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Customer, error)

	// FindOrCreateByUserID returns the customer linked to a user identity,
	// creating a bronze customer on first access
	FindOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*Customer, error)

	// FindAll finds customers. Supported filter keys: membership
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// Count counts customers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a customer
	Save(ctx context.Context, c *Customer) error

	// ExistsByID checks if a customer exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// AddressRepository defines the interface for address persistence
type AddressRepository interface {
	// FindByCustomer lists addresses of a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Address, error)

	// Create inserts an address
	Create(ctx context.Context, address *Address) error

	// Delete deletes an address owned by the customer
	Delete(ctx context.Context, customerID, id uuid.UUID) error
}
