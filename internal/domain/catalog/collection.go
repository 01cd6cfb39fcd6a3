package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Collection is a named grouping of products
type Collection struct {
	shared.BaseAggregateRoot
	Title             string
	FeaturedProductID *uuid.UUID
}

// CollectionSummary is a collection together with the number of products it owns
type CollectionSummary struct {
	Collection
	ProductsCount int64
}

// NewCollection creates a new collection
func NewCollection(title string) (*Collection, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	return &Collection{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
	}, nil
}

// Rename changes the collection title
func (c *Collection) Rename(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	c.Title = strings.TrimSpace(title)
	c.Touch()
	return nil
}

// Feature marks a product as the featured product of the collection, nil clears it
func (c *Collection) Feature(productID *uuid.UUID) {
	c.FeaturedProductID = productID
	c.Touch()
}
