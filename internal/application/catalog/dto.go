package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
)

// CreateCollectionRequest represents a request to create a collection
type CreateCollectionRequest struct {
	Title             string     `json:"title" binding:"required,min=1,max=255"`
	FeaturedProductID *uuid.UUID `json:"featured_product_id"`
}

// UpdateCollectionRequest represents a request to replace a collection
type UpdateCollectionRequest struct {
	Title             string     `json:"title" binding:"required,min=1,max=255"`
	FeaturedProductID *uuid.UUID `json:"featured_product_id"`
}

// CollectionResponse represents a collection in API responses
type CollectionResponse struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	FeaturedProductID *uuid.UUID `json:"featured_product_id"`
	ProductsCount     int64      `json:"products_count"`
}

// CollectionListFilter represents filter options for listing collections
type CollectionListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToCollectionResponse converts a collection summary to a response DTO
func ToCollectionResponse(c *catalog.CollectionSummary) CollectionResponse {
	return CollectionResponse{
		ID:                c.ID,
		Title:             c.Title,
		FeaturedProductID: c.FeaturedProductID,
		ProductsCount:     c.ProductsCount,
	}
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Title        string           `json:"title" binding:"required,min=1,max=255"`
	Slug         string           `json:"slug" binding:"omitempty,max=255"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price" binding:"required"`
	Inventory    *int             `json:"inventory" binding:"required,min=0,max=2147483647"`
	CollectionID *uuid.UUID       `json:"collection"`
}

// UpdateProductRequest represents a request to replace a product
type UpdateProductRequest struct {
	Title        string           `json:"title" binding:"required,min=1,max=255"`
	Slug         string           `json:"slug" binding:"omitempty,max=255"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price" binding:"required"`
	Inventory    *int             `json:"inventory" binding:"required,min=0,max=2147483647"`
	CollectionID *uuid.UUID       `json:"collection"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  *string         `json:"description"`
	Slug         string          `json:"slug"`
	Price        decimal.Decimal `json:"price"`
	Inventory    int             `json:"inventory"`
	PriceWithTax decimal.Decimal `json:"price_with_tax"`
	CollectionID *uuid.UUID      `json:"collection"`
	LastUpdate   time.Time       `json:"last_update"`
}

// ProductListFilter represents filter options for listing products
type ProductListFilter struct {
	Search       string `form:"search"`
	CollectionID string `form:"collection_id" binding:"omitempty,uuid"`
	MinPrice     string `form:"min_price" binding:"omitempty,numeric"`
	MaxPrice     string `form:"max_price" binding:"omitempty,numeric"`
	OrderBy      string `form:"order_by" binding:"omitempty,oneof=title price inventory last_update"`
	OrderDir     string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToProductResponse converts a product to a response DTO
func ToProductResponse(p *catalog.Product, taxRate decimal.Decimal) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Slug:         p.Slug,
		Price:        p.Price,
		Inventory:    p.Inventory,
		PriceWithTax: p.PriceWithTax(taxRate),
		CollectionID: p.CollectionID,
		LastUpdate:   p.LastUpdate(),
	}
}

// CreateReviewRequest represents a request to post a review
type CreateReviewRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"required"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
}

// ToReviewResponse converts a review to a response DTO
func ToReviewResponse(r *catalog.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date.Format("2006-01-02"),
	}
}
