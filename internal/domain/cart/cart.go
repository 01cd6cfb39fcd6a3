package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Cart errors
var (
	ErrCartNotFound     = shared.NewNotFoundError("No cart with the given ID was found.")
	ErrCartItemNotFound = shared.NewNotFoundError("No cart item with the given ID was found.")
	ErrInvalidQuantity  = shared.NewValidationError("Ensure quantity is greater than or equal to 1")
	ErrQuantityTooLarge = shared.NewValidationError("Ensure quantity is less than or equal to 32767")
	ErrCartEmpty        = shared.NewValidationError("The cart is empty.")
	ErrUnknownProduct   = shared.NewValidationError("No product with the given ID was found.")
)

// MaxItemQuantity is the largest quantity a single cart item may hold
const MaxItemQuantity = 32767

// ValidateQuantity checks quantity is within 1..MaxItemQuantity
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if quantity > MaxItemQuantity {
		return ErrQuantityTooLarge
	}
	return nil
}

// Cart is an ephemeral basket of products identified by a random id.
// It is deleted once converted into an order.
type Cart struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Items     []CartItem
}

// CartItem is a product line inside a cart. (cart, product) is unique.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// NewCart creates an empty cart with a random identifier
func NewCart() *Cart {
	return &Cart{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Items:     make([]CartItem, 0),
	}
}

// AddItem adds quantity of a product to the cart.
// If the product is already in the cart its quantity is increased, otherwise a new item is created.
// It returns the resulting item. A merge going past MaxItemQuantity leaves the item unchanged.
func (c *Cart) AddItem(productID uuid.UUID, quantity int) (*CartItem, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if c.Items[i].Quantity > MaxItemQuantity-quantity {
				return nil, ErrQuantityTooLarge
			}
			c.Items[i].Quantity += quantity
			return &c.Items[i], nil
		}
	}

	c.Items = append(c.Items, CartItem{
		ID:        uuid.New(),
		CartID:    c.ID,
		ProductID: productID,
		Quantity:  quantity,
	})
	return &c.Items[len(c.Items)-1], nil
}

// UpdateItemQuantity sets the absolute quantity of an item
func (c *Cart) UpdateItemQuantity(itemID uuid.UUID, quantity int) (*CartItem, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	item := c.FindItem(itemID)
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	item.Quantity = quantity
	return item, nil
}

// RemoveItem removes an item from the cart
func (c *Cart) RemoveItem(itemID uuid.UUID) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return ErrCartItemNotFound
}

// FindItem returns the item with the given id, or nil
func (c *Cart) FindItem(itemID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// ProductIDs returns the distinct products in the cart
func (c *Cart) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

// IsEmpty returns true if the cart holds no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
