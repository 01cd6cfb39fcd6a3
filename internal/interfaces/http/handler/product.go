package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// ProductUseCase is the product behavior the HTTP layer depends on
type ProductUseCase interface {
	Create(ctx context.Context, req catalogapp.CreateProductRequest) (*catalogapp.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*catalogapp.ProductResponse, error)
	List(ctx context.Context, filter catalogapp.ProductListFilter) ([]catalogapp.ProductResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req catalogapp.UpdateProductRequest) (*catalogapp.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewUseCase is the review behavior the HTTP layer depends on
type ReviewUseCase interface {
	List(ctx context.Context, productID uuid.UUID, page, pageSize int) ([]catalogapp.ReviewResponse, int64, error)
	Create(ctx context.Context, productID uuid.UUID, req catalogapp.CreateReviewRequest) (*catalogapp.ReviewResponse, error)
}

// ProductHandler handles product and product review endpoints
type ProductHandler struct {
	BaseHandler
	products ProductUseCase
	reviews  ReviewUseCase
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products ProductUseCase, reviews ReviewUseCase) *ProductHandler {
	return &ProductHandler{products: products, reviews: reviews}
}

// List godoc
// @ID           listProducts
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        search        query string false "Search over title and description"
// @Param        collection_id query string false "Collection ID" format(uuid)
// @Param        min_price     query number false "Minimum price"
// @Param        max_price     query number false "Maximum price"
// @Param        order_by      query string false "Sort field" Enums(title, price, inventory, last_update)
// @Param        order_dir     query string false "Sort direction" Enums(asc, desc)
// @Param        page          query int    false "Page number" default(1)
// @Param        page_size     query int    false "Page size" default(20)
// @Success      200 {object} APIResponse[[]catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	products, total, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := pageOf(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, products, total, page, pageSize)
}

// Create godoc
// @ID           createProduct
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateProductRequest true "Product"
// @Success      201 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, product)
}

// Get godoc
// @ID           getProduct
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Update godoc
// @ID           updateProduct
// @Summary      Replace a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id      path string                           true "Product ID" format(uuid)
// @Param        request body catalogapp.UpdateProductRequest true "Product"
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete godoc
// @ID           deleteProduct
// @Summary      Delete a product
// @Description  Refused with 405 while order items reference the product
// @Tags         products
// @Param        id path string true "Product ID" format(uuid)
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      405 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// reviewListQuery holds the paging parameters of a review listing
type reviewListQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ListReviews godoc
// @ID           listProductReviews
// @Summary      List product reviews
// @Tags         reviews
// @Produce      json
// @Param        id        path  string true  "Product ID" format(uuid)
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20)
// @Success      200 {object} APIResponse[[]catalogapp.ReviewResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /products/{id}/reviews [get]
func (h *ProductHandler) ListReviews(c *gin.Context) {
	productID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var query reviewListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}
	page, pageSize := pageOf(query.Page, query.PageSize)

	reviews, total, err := h.reviews.List(c.Request.Context(), productID, page, pageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, reviews, total, page, pageSize)
}

// CreateReview godoc
// @ID           createProductReview
// @Summary      Post a product review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id      path string                          true "Product ID" format(uuid)
// @Param        request body catalogapp.CreateReviewRequest true "Review"
// @Success      201 {object} APIResponse[catalogapp.ReviewResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /products/{id}/reviews [post]
func (h *ProductHandler) CreateReview(c *gin.Context) {
	productID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req catalogapp.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	review, err := h.reviews.Create(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, review)
}
