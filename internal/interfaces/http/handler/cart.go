package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cartapp "github.com/storefront/backend/internal/application/cart"
)

// CartUseCase is the cart behavior the HTTP layer depends on
type CartUseCase interface {
	Create(ctx context.Context) (*cartapp.CartResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*cartapp.CartResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, cartID uuid.UUID) ([]cartapp.CartItemResponse, error)
	AddItem(ctx context.Context, cartID uuid.UUID, req cartapp.AddItemRequest) (*cartapp.CartItemResponse, error)
	GetItem(ctx context.Context, cartID, itemID uuid.UUID) (*cartapp.CartItemResponse, error)
	UpdateItem(ctx context.Context, cartID, itemID uuid.UUID, req cartapp.UpdateItemRequest) (*cartapp.CartItemResponse, error)
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error
}

// CartHandler handles the anonymous cart endpoints
type CartHandler struct {
	BaseHandler
	carts CartUseCase
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(carts CartUseCase) *CartHandler {
	return &CartHandler{carts: carts}
}

// Create godoc
// @ID           createCart
// @Summary      Create an empty cart
// @Tags         carts
// @Produce      json
// @Success      201 {object} APIResponse[cartapp.CartResponse]
// @Router       /carts [post]
func (h *CartHandler) Create(c *gin.Context) {
	cart, err := h.carts.Create(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, cart)
}

// Get godoc
// @ID           getCart
// @Summary      Get a cart with its items and total
// @Tags         carts
// @Produce      json
// @Param        id path string true "Cart ID" format(uuid)
// @Success      200 {object} APIResponse[cartapp.CartResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{id} [get]
func (h *CartHandler) Get(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	cart, err := h.carts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, cart)
}

// Delete godoc
// @ID           deleteCart
// @Summary      Delete a cart
// @Tags         carts
// @Param        id path string true "Cart ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{id} [delete]
func (h *CartHandler) Delete(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.carts.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListItems godoc
// @ID           listCartItems
// @Summary      List the items of a cart
// @Tags         carts
// @Produce      json
// @Param        id path string true "Cart ID" format(uuid)
// @Success      200 {object} APIResponse[[]cartapp.CartItemResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{id}/items [get]
func (h *CartHandler) ListItems(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	items, err := h.carts.ListItems(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, items)
}

// AddItem godoc
// @ID           addCartItem
// @Summary      Add a product to a cart
// @Description  Adding a product already in the cart increases that item's quantity
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        id      path string                 true "Cart ID" format(uuid)
// @Param        request body cartapp.AddItemRequest true "Item"
// @Success      201 {object} APIResponse[cartapp.CartItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req cartapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.carts.AddItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, item)
}

// GetItem godoc
// @ID           getCartItem
// @Summary      Get a cart item
// @Tags         carts
// @Produce      json
// @Param        id      path string true "Cart ID" format(uuid)
// @Param        item_id path string true "Item ID" format(uuid)
// @Success      200 {object} APIResponse[cartapp.CartItemResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{id}/items/{item_id} [get]
func (h *CartHandler) GetItem(c *gin.Context) {
	cartID, itemID, ok := h.itemParams(c)
	if !ok {
		return
	}

	item, err := h.carts.GetItem(c.Request.Context(), cartID, itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// UpdateItem godoc
// @ID           updateCartItem
// @Summary      Set the quantity of a cart item
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Cart ID" format(uuid)
// @Param        item_id path string                    true "Item ID" format(uuid)
// @Param        request body cartapp.UpdateItemRequest true "Quantity"
// @Success      200 {object} APIResponse[cartapp.CartItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{id}/items/{item_id} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cartID, itemID, ok := h.itemParams(c)
	if !ok {
		return
	}

	var req cartapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.carts.UpdateItem(c.Request.Context(), cartID, itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// RemoveItem godoc
// @ID           removeCartItem
// @Summary      Remove an item from a cart
// @Tags         carts
// @Param        id      path string true "Cart ID" format(uuid)
// @Param        item_id path string true "Item ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /carts/{id}/items/{item_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID, itemID, ok := h.itemParams(c)
	if !ok {
		return
	}

	if err := h.carts.RemoveItem(c.Request.Context(), cartID, itemID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *CartHandler) itemParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	cartID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	itemID, ok := h.parseUUIDParam(c, "item_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return cartID, itemID, true
}
