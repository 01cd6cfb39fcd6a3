package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/order"
)

// OrderModel is the persistence model for the Order domain entity.
type OrderModel struct {
	AggregateModel
	PlacedAt      time.Time           `gorm:"not null;index"`
	CustomerID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	PaymentStatus order.PaymentStatus `gorm:"type:varchar(1);not null;default:'P';index"`
	Items         []OrderItemModel    `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order.
func (m *OrderModel) ToDomain() *order.Order {
	o := &order.Order{
		BaseAggregateRoot: m.ToAggregateRoot(),
		PlacedAt:          m.PlacedAt,
		CustomerID:        m.CustomerID,
		PaymentStatus:     m.PaymentStatus,
		Items:             make([]order.OrderItem, len(m.Items)),
	}
	for i, item := range m.Items {
		o.Items[i] = *item.ToDomain()
	}
	return o
}

// FromDomain populates the persistence model from a domain Order, items included.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.PlacedAt = o.PlacedAt
	m.CustomerID = o.CustomerID
	m.PaymentStatus = o.PaymentStatus
	m.Items = make([]OrderItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i] = *OrderItemModelFromDomain(&o.Items[i])
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for the OrderItem domain entity.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem.
func (m *OrderItemModel) ToDomain() *order.OrderItem {
	return &order.OrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Price:     m.UnitPrice,
	}
}

// OrderItemModelFromDomain creates a persistence model from a domain OrderItem.
func OrderItemModelFromDomain(item *order.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.Price,
	}
}
