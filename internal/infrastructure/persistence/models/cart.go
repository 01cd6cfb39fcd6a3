package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
)

// CartModel is the persistence model for the Cart domain entity.
type CartModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time       `gorm:"not null"`
	Items     []CartItemModel `gorm:"foreignKey:CartID;references:ID"`
}

// TableName returns the table name for GORM
func (CartModel) TableName() string {
	return "carts"
}

// ToDomain converts the persistence model to a domain Cart.
func (m *CartModel) ToDomain() *cart.Cart {
	c := &cart.Cart{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		Items:     make([]cart.CartItem, len(m.Items)),
	}
	for i, item := range m.Items {
		c.Items[i] = *item.ToDomain()
	}
	return c
}

// CartModelFromDomain creates a persistence model for a cart header. Items are stored separately.
func CartModelFromDomain(c *cart.Cart) *CartModel {
	return &CartModel{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
	}
}

// CartItemModel is the persistence model for the CartItem domain entity.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product,priority:1"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product,priority:2"`
	Quantity  int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain converts the persistence model to a domain CartItem.
func (m *CartItemModel) ToDomain() *cart.CartItem {
	return &cart.CartItem{
		ID:        m.ID,
		CartID:    m.CartID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
	}
}

// CartItemModelFromDomain creates a persistence model from a domain CartItem.
func CartItemModelFromDomain(item *cart.CartItem) *CartItemModel {
	return &CartItemModel{
		ID:        item.ID,
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
}
