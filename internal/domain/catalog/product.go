package catalog

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// Price bounds follow the decimal(6,2) storage column
var (
	MinProductPrice = decimal.NewFromInt(1)
	MaxProductPrice = decimal.RequireFromString("9999.99")
)

// Catalog errors
var (
	ErrProductNotFound    = shared.NewNotFoundError("No product with the given ID was found.")
	ErrCollectionNotFound = shared.NewNotFoundError("No collection with the given ID was found.")
)

// Product represents a sellable item in the catalog
// It is the aggregate root for product-related operations
type Product struct {
	shared.BaseAggregateRoot
	Title        string
	Description  *string
	Slug         string
	Price        decimal.Decimal
	Inventory    int
	CollectionID *uuid.UUID
}

// NewProduct creates a new product
// The slug is derived from the title when empty
func NewProduct(title, slug string, price decimal.Decimal, inventory int) (*Product, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateInventory(inventory); err != nil {
		return nil, err
	}

	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		Slug:              slug,
		Price:             price,
		Inventory:         inventory,
	}, nil
}

// Update replaces the descriptive fields of the product
func (p *Product) Update(title, slug string, description *string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if err := validateSlug(slug); err != nil {
		return err
	}

	p.Title = strings.TrimSpace(title)
	p.Slug = slug
	p.SetDescription(description)
	p.Touch()
	return nil
}

// SetDescription sets or clears the description
func (p *Product) SetDescription(description *string) {
	if description == nil || strings.TrimSpace(*description) == "" {
		p.Description = nil
		return
	}
	d := strings.TrimSpace(*description)
	p.Description = &d
}

// ChangePrice sets a new unit price
// Existing order items keep the price they were sold at
func (p *Product) ChangePrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.Price = price
	p.Touch()
	return nil
}

// SetInventory sets the on-hand inventory
func (p *Product) SetInventory(inventory int) error {
	if err := validateInventory(inventory); err != nil {
		return err
	}
	p.Inventory = inventory
	p.Touch()
	return nil
}

// AssignCollection moves the product into a collection, nil removes it from any collection
func (p *Product) AssignCollection(collectionID *uuid.UUID) {
	p.CollectionID = collectionID
	p.Touch()
}

// PriceWithTax returns the price including the given tax rate, rounded to cents
func (p *Product) PriceWithTax(taxRate decimal.Decimal) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(1).Add(taxRate)).Round(2)
}

// LastUpdate returns when the product was last modified
func (p *Product) LastUpdate() time.Time {
	return p.UpdatedAt
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewValidationError("Title cannot be empty")
	}
	if len(title) > 255 {
		return shared.NewValidationError("Title cannot exceed 255 characters")
	}
	return nil
}

func validateSlug(slug string) error {
	if slug == "" {
		return shared.NewValidationError("Slug cannot be empty")
	}
	if len(slug) > 255 {
		return shared.NewValidationError("Slug cannot exceed 255 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.LessThan(MinProductPrice) {
		return shared.NewValidationError("Ensure price is greater than or equal to 1")
	}
	if price.GreaterThan(MaxProductPrice) {
		return shared.NewValidationError("Ensure price is less than or equal to 9999.99")
	}
	if !price.Equal(price.Round(2)) {
		return shared.NewValidationError("Ensure price has no more than 2 decimal places")
	}
	return nil
}

// MaxInventory is the upper bound of the inventory column
const MaxInventory = math.MaxInt32

func validateInventory(inventory int) error {
	if inventory < 0 {
		return shared.NewValidationError("Ensure inventory is greater than or equal to 0")
	}
	if inventory > MaxInventory {
		return shared.NewValidationError("Ensure inventory is less than or equal to 2147483647")
	}
	return nil
}
