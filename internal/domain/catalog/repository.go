package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// CollectionRepository defines the interface for collection persistence
type CollectionRepository interface {
	// FindByID finds a collection by ID, including its product count
	FindByID(ctx context.Context, id uuid.UUID) (*CollectionSummary, error)

	// FindAll finds all collections ordered by title, including product counts
	FindAll(ctx context.Context, filter shared.Filter) ([]CollectionSummary, error)

	// Count counts collections matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a collection
	Save(ctx context.Context, collection *Collection) error

	// Delete deletes a collection
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks if a collection exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs finds products by IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindAll finds products matching the filter.
	// Supported filter keys: collection_id, min_price, max_price
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByCollection counts products that belong to a collection
	CountByCollection(ctx context.Context, collectionID uuid.UUID) (int64, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product and clears it as featured product of any collection
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks if a product exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	// FindByProduct lists reviews of a product, newest first
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]Review, error)

	// CountByProduct counts reviews of a product
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	// Create appends a review
	Create(ctx context.Context, review *Review) error
}
