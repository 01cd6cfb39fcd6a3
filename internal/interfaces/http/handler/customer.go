package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	customerapp "github.com/storefront/backend/internal/application/customer"
	orderapp "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/internal/domain/shared"
)

// CustomerUseCase is the customer behavior the HTTP layer depends on
type CustomerUseCase interface {
	GetMe(ctx context.Context, actor shared.Actor) (*customerapp.CustomerResponse, error)
	UpdateMe(ctx context.Context, actor shared.Actor, req customerapp.UpdateProfileRequest) (*customerapp.CustomerResponse, error)
	List(ctx context.Context, filter customerapp.CustomerListFilter) ([]customerapp.CustomerResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*customerapp.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req customerapp.UpdateCustomerRequest) (*customerapp.CustomerResponse, error)
	ListAddresses(ctx context.Context, actor shared.Actor) ([]customerapp.AddressResponse, error)
	AddAddress(ctx context.Context, actor shared.Actor, req customerapp.CreateAddressRequest) (*customerapp.AddressResponse, error)
	RemoveAddress(ctx context.Context, actor shared.Actor, addressID uuid.UUID) error
}

// OrderHistory lists the orders placed by one customer
type OrderHistory interface {
	ListForCustomer(ctx context.Context, customerID uuid.UUID, filter orderapp.OrderListFilter) ([]orderapp.OrderResponse, int64, error)
}

// CustomerHandler handles customer profile, address and history endpoints
type CustomerHandler struct {
	BaseHandler
	customers CustomerUseCase
	history   OrderHistory
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customers CustomerUseCase, history OrderHistory) *CustomerHandler {
	return &CustomerHandler{customers: customers, history: history}
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        membership query string false "Membership" Enums(B, S, G)
// @Param        page       query int    false "Page number" default(1)
// @Param        page_size  query int    false "Page size" default(20)
// @Success      200 {object} APIResponse[[]customerapp.CustomerResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var filter customerapp.CustomerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	customers, total, err := h.customers.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := pageOf(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, customers, total, page, pageSize)
}

// Get godoc
// @ID           getCustomer
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[customerapp.CustomerResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer, including membership
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id      path string                             true "Customer ID" format(uuid)
// @Param        request body customerapp.UpdateCustomerRequest true "Customer"
// @Success      200 {object} APIResponse[customerapp.CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req customerapp.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// History godoc
// @ID           getCustomerHistory
// @Summary      List the orders of a customer
// @Tags         customers
// @Produce      json
// @Param        id             path  string true  "Customer ID" format(uuid)
// @Param        payment_status query string false "Payment status" Enums(P, C, F)
// @Param        page           query int    false "Page number" default(1)
// @Param        page_size      query int    false "Page size" default(20)
// @Success      200 {object} APIResponse[[]orderapp.OrderResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id}/history [get]
func (h *CustomerHandler) History(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var filter orderapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	orders, total, err := h.history.ListForCustomer(c.Request.Context(), id, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := pageOf(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, orders, total, page, pageSize)
}

// GetMe godoc
// @ID           getMyProfile
// @Summary      Get the caller's customer profile
// @Description  The profile is created on first access
// @Tags         customers
// @Produce      json
// @Success      200 {object} APIResponse[customerapp.CustomerResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/me [get]
func (h *CustomerHandler) GetMe(c *gin.Context) {
	customer, err := h.customers.GetMe(c.Request.Context(), actor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// UpdateMe godoc
// @ID           updateMyProfile
// @Summary      Update the caller's customer profile
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body customerapp.UpdateProfileRequest true "Profile"
// @Success      200 {object} APIResponse[customerapp.CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/me [put]
func (h *CustomerHandler) UpdateMe(c *gin.Context) {
	var req customerapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	customer, err := h.customers.UpdateMe(c.Request.Context(), actor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// ListAddresses godoc
// @ID           listMyAddresses
// @Summary      List the caller's addresses
// @Tags         customers
// @Produce      json
// @Success      200 {object} APIResponse[[]customerapp.AddressResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/me/addresses [get]
func (h *CustomerHandler) ListAddresses(c *gin.Context) {
	addresses, err := h.customers.ListAddresses(c.Request.Context(), actor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, addresses)
}

// AddAddress godoc
// @ID           addMyAddress
// @Summary      Add an address to the caller's profile
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body customerapp.CreateAddressRequest true "Address"
// @Success      201 {object} APIResponse[customerapp.AddressResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/me/addresses [post]
func (h *CustomerHandler) AddAddress(c *gin.Context) {
	var req customerapp.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	address, err := h.customers.AddAddress(c.Request.Context(), actor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, address)
}

// RemoveAddress godoc
// @ID           removeMyAddress
// @Summary      Remove one of the caller's addresses
// @Tags         customers
// @Param        address_id path string true "Address ID" format(uuid)
// @Success      204
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /customers/me/addresses/{address_id} [delete]
func (h *CustomerHandler) RemoveAddress(c *gin.Context) {
	addressID, ok := h.parseUUIDParam(c, "address_id")
	if !ok {
		return
	}

	if err := h.customers.RemoveAddress(c.Request.Context(), actor(c), addressID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
