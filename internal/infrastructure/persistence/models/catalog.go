package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
)

// CollectionModel is the persistence model for the Collection domain entity.
type CollectionModel struct {
	AggregateModel
	Title             string     `gorm:"type:varchar(255);not null;index"`
	FeaturedProductID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (CollectionModel) TableName() string {
	return "collections"
}

// ToDomain converts the persistence model to a domain Collection entity.
func (m *CollectionModel) ToDomain() *catalog.Collection {
	return &catalog.Collection{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Title:             m.Title,
		FeaturedProductID: m.FeaturedProductID,
	}
}

// FromDomain populates the persistence model from a domain Collection entity.
func (m *CollectionModel) FromDomain(c *catalog.Collection) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Title = c.Title
	m.FeaturedProductID = c.FeaturedProductID
}

// CollectionModelFromDomain creates a new persistence model from a domain Collection entity.
func CollectionModelFromDomain(c *catalog.Collection) *CollectionModel {
	m := &CollectionModel{}
	m.FromDomain(c)
	return m
}

// CollectionSummaryRow is the scan target of collection queries joined with their product count.
type CollectionSummaryRow struct {
	CollectionModel
	ProductsCount int64
}

// ToDomain converts the row to a domain CollectionSummary.
func (r *CollectionSummaryRow) ToDomain() *catalog.CollectionSummary {
	return &catalog.CollectionSummary{
		Collection:    *r.CollectionModel.ToDomain(),
		ProductsCount: r.ProductsCount,
	}
}

// ProductModel is the persistence model for the Product domain entity.
// UpdatedAt doubles as the last_update column exposed by the API.
type ProductModel struct {
	AggregateModel
	Title        string          `gorm:"type:varchar(255);not null;index"`
	Slug         string          `gorm:"type:varchar(255);not null;index"`
	Description  *string         `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Inventory    int             `gorm:"not null;default:0"`
	CollectionID *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Title:             m.Title,
		Slug:              m.Slug,
		Description:       m.Description,
		Price:             m.Price,
		Inventory:         m.Inventory,
		CollectionID:      m.CollectionID,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Title = p.Title
	m.Slug = p.Slug
	m.Description = p.Description
	m.Price = p.Price
	m.Inventory = p.Inventory
	m.CollectionID = p.CollectionID
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// ReviewModel is the persistence model for the Review domain entity.
type ReviewModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Date        time.Time `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts the persistence model to a domain Review.
func (m *ReviewModel) ToDomain() *catalog.Review {
	return &catalog.Review{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Name:        m.Name,
		Description: m.Description,
		Date:        m.Date,
	}
}

// ReviewModelFromDomain creates a new persistence model from a domain Review.
func ReviewModelFromDomain(r *catalog.Review) *ReviewModel {
	return &ReviewModel{
		ID:          r.ID,
		ProductID:   r.ProductID,
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date,
	}
}
