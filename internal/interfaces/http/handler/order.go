package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	orderapp "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/internal/domain/shared"
)

// OrderUseCase is the order behavior the HTTP layer depends on
type OrderUseCase interface {
	CreateFromCart(ctx context.Context, actor shared.Actor, req orderapp.CreateOrderRequest) (*orderapp.OrderResponse, error)
	List(ctx context.Context, actor shared.Actor, filter orderapp.OrderListFilter) ([]orderapp.OrderResponse, int64, error)
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*orderapp.OrderResponse, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, req orderapp.UpdateOrderRequest) (*orderapp.OrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderHandler handles order endpoints
type OrderHandler struct {
	BaseHandler
	orders OrderUseCase
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders OrderUseCase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create godoc
// @ID           createOrder
// @Summary      Convert a cart into an order
// @Description  The cart is consumed: on success it no longer exists
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body orderapp.CreateOrderRequest true "Cart to convert"
// @Success      201 {object} APIResponse[orderapp.OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.orders.CreateFromCart(c.Request.Context(), actor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, order)
}

// List godoc
// @ID           listOrders
// @Summary      List orders
// @Description  Staff see every order, customers their own
// @Tags         orders
// @Produce      json
// @Param        payment_status query string false "Payment status" Enums(P, C, F)
// @Param        page           query int    false "Page number" default(1)
// @Param        page_size      query int    false "Page size" default(20)
// @Success      200 {object} APIResponse[[]orderapp.OrderResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var filter orderapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	orders, total, err := h.orders.List(c.Request.Context(), actor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := pageOf(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, orders, total, page, pageSize)
}

// Get godoc
// @ID           getOrder
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[orderapp.OrderResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.GetByID(c.Request.Context(), actor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// Update godoc
// @ID           updateOrder
// @Summary      Change the payment status of an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path string                       true "Order ID" format(uuid)
// @Param        request body orderapp.UpdateOrderRequest true "Payment status"
// @Success      200 {object} APIResponse[orderapp.OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [patch]
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req orderapp.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.orders.UpdatePaymentStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// Delete godoc
// @ID           deleteOrder
// @Summary      Delete an order
// @Tags         orders
// @Param        id path string true "Order ID" format(uuid)
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
