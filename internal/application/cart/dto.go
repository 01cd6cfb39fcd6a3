package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
)

// AddItemRequest represents a request to add a product to a cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=32767"`
}

// UpdateItemRequest represents a request to change the quantity of a cart item
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=32767"`
}

// CartProductResponse is the product summary embedded in cart items
type CartProductResponse struct {
	ID    uuid.UUID       `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

// CartItemResponse represents a cart item in API responses
type CartItemResponse struct {
	ID         uuid.UUID           `json:"id"`
	Product    CartProductResponse `json:"product"`
	Quantity   int                 `json:"quantity"`
	TotalPrice decimal.Decimal     `json:"total_price"`
}

// CartResponse represents a cart in API responses
type CartResponse struct {
	ID         uuid.UUID          `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

// ToCartItemResponse converts a cart item and its product to a response DTO.
// The total price always uses the current product price.
func ToCartItemResponse(item *cart.CartItem, product *catalog.Product) CartItemResponse {
	resp := CartItemResponse{
		ID:         item.ID,
		Quantity:   item.Quantity,
		TotalPrice: decimal.Zero,
	}
	if product != nil {
		resp.Product = CartProductResponse{
			ID:    product.ID,
			Title: product.Title,
			Price: product.Price,
		}
		resp.TotalPrice = product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
	} else {
		resp.Product = CartProductResponse{ID: item.ProductID}
	}
	return resp
}
