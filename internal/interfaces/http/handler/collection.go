package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// CollectionUseCase is the collection behavior the HTTP layer depends on
type CollectionUseCase interface {
	Create(ctx context.Context, req catalogapp.CreateCollectionRequest) (*catalogapp.CollectionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*catalogapp.CollectionResponse, error)
	List(ctx context.Context, filter catalogapp.CollectionListFilter) ([]catalogapp.CollectionResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req catalogapp.UpdateCollectionRequest) (*catalogapp.CollectionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CollectionHandler handles collection endpoints
type CollectionHandler struct {
	BaseHandler
	collections CollectionUseCase
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(collections CollectionUseCase) *CollectionHandler {
	return &CollectionHandler{collections: collections}
}

// List godoc
// @ID           listCollections
// @Summary      List collections
// @Description  Collections ordered by title, each with its product count
// @Tags         collections
// @Produce      json
// @Param        search    query string false "Title search"
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20)
// @Success      200 {object} APIResponse[[]catalogapp.CollectionResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	var filter catalogapp.CollectionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	collections, total, err := h.collections.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := pageOf(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, collections, total, page, pageSize)
}

// Create godoc
// @ID           createCollection
// @Summary      Create a collection
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateCollectionRequest true "Collection"
// @Success      201 {object} APIResponse[catalogapp.CollectionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /collections [post]
func (h *CollectionHandler) Create(c *gin.Context) {
	var req catalogapp.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	collection, err := h.collections.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, collection)
}

// Get godoc
// @ID           getCollection
// @Summary      Get a collection
// @Tags         collections
// @Produce      json
// @Param        id path string true "Collection ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.CollectionResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /collections/{id} [get]
func (h *CollectionHandler) Get(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	collection, err := h.collections.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, collection)
}

// Update godoc
// @ID           updateCollection
// @Summary      Replace a collection
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        id      path string                              true "Collection ID" format(uuid)
// @Param        request body catalogapp.UpdateCollectionRequest true "Collection"
// @Success      200 {object} APIResponse[catalogapp.CollectionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /collections/{id} [put]
func (h *CollectionHandler) Update(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req catalogapp.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	collection, err := h.collections.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, collection)
}

// Delete godoc
// @ID           deleteCollection
// @Summary      Delete a collection
// @Description  Refused with 405 while products still belong to the collection
// @Tags         collections
// @Param        id path string true "Collection ID" format(uuid)
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      405 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /collections/{id} [delete]
func (h *CollectionHandler) Delete(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.collections.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
