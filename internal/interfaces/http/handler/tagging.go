package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	taggingapp "github.com/storefront/backend/internal/application/tagging"
	"github.com/storefront/backend/internal/domain/shared"
)

// TaggingUseCase is the tag and like behavior the HTTP layer depends on
type TaggingUseCase interface {
	CreateTag(ctx context.Context, req taggingapp.CreateTagRequest) (*taggingapp.TagResponse, error)
	ListTags(ctx context.Context, filter taggingapp.TagListFilter) ([]taggingapp.TagResponse, int64, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
	TagsFor(ctx context.Context, query taggingapp.EntityQuery) ([]taggingapp.TaggedItemResponse, error)
	TagEntity(ctx context.Context, req taggingapp.TagEntityRequest) (*taggingapp.TaggedItemResponse, error)
	UntagItem(ctx context.Context, id uuid.UUID) error
	Like(ctx context.Context, actor shared.Actor, req taggingapp.LikeRequest) (*taggingapp.LikeSummaryResponse, error)
	Unlike(ctx context.Context, actor shared.Actor, req taggingapp.LikeRequest) error
	LikeSummary(ctx context.Context, actor shared.Actor, query taggingapp.EntityQuery) (*taggingapp.LikeSummaryResponse, error)
}

// TaggingHandler handles tag, tagged item and like endpoints
type TaggingHandler struct {
	BaseHandler
	tagging TaggingUseCase
}

// NewTaggingHandler creates a new TaggingHandler
func NewTaggingHandler(tagging TaggingUseCase) *TaggingHandler {
	return &TaggingHandler{tagging: tagging}
}

// ListTags godoc
// @ID           listTags
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Param        search    query string false "Label search"
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20)
// @Success      200 {object} APIResponse[[]taggingapp.TagResponse]
// @Router       /tags [get]
func (h *TaggingHandler) ListTags(c *gin.Context) {
	var filter taggingapp.TagListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	tags, total, err := h.tagging.ListTags(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := pageOf(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, tags, total, page, pageSize)
}

// CreateTag godoc
// @ID           createTag
// @Summary      Create a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        request body taggingapp.CreateTagRequest true "Tag"
// @Success      201 {object} APIResponse[taggingapp.TagResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags [post]
func (h *TaggingHandler) CreateTag(c *gin.Context) {
	var req taggingapp.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	tag, err := h.tagging.CreateTag(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, tag)
}

// DeleteTag godoc
// @ID           deleteTag
// @Summary      Delete a tag and its associations
// @Tags         tags
// @Param        id path string true "Tag ID" format(uuid)
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags/{id} [delete]
func (h *TaggingHandler) DeleteTag(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tagging.DeleteTag(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListTaggedItems godoc
// @ID           listTaggedItems
// @Summary      List the tags attached to an entity
// @Tags         tags
// @Produce      json
// @Param        kind query string true "Entity kind" Enums(product, collection, customer, order)
// @Param        id   query string true "Entity ID" format(uuid)
// @Success      200 {object} APIResponse[[]taggingapp.TaggedItemResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags/items [get]
func (h *TaggingHandler) ListTaggedItems(c *gin.Context) {
	var query taggingapp.EntityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	items, err := h.tagging.TagsFor(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, items)
}

// TagEntity godoc
// @ID           tagEntity
// @Summary      Attach a tag to an entity
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        request body taggingapp.TagEntityRequest true "Association"
// @Success      201 {object} APIResponse[taggingapp.TaggedItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags/items [post]
func (h *TaggingHandler) TagEntity(c *gin.Context) {
	var req taggingapp.TagEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.tagging.TagEntity(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, item)
}

// UntagItem godoc
// @ID           untagItem
// @Summary      Remove a tag association
// @Tags         tags
// @Param        id path string true "Tagged item ID" format(uuid)
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags/items/{id} [delete]
func (h *TaggingHandler) UntagItem(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tagging.UntagItem(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// LikeSummary godoc
// @ID           getLikes
// @Summary      Like count of an entity
// @Description  liked is reported for authenticated callers
// @Tags         likes
// @Produce      json
// @Param        kind query string true "Entity kind" Enums(product, collection, customer, order)
// @Param        id   query string true "Entity ID" format(uuid)
// @Success      200 {object} APIResponse[taggingapp.LikeSummaryResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /likes [get]
func (h *TaggingHandler) LikeSummary(c *gin.Context) {
	var query taggingapp.EntityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	summary, err := h.tagging.LikeSummary(c.Request.Context(), actor(c), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// Like godoc
// @ID           like
// @Summary      Like an entity
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        request body taggingapp.LikeRequest true "Entity"
// @Success      201 {object} APIResponse[taggingapp.LikeSummaryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /likes [post]
func (h *TaggingHandler) Like(c *gin.Context) {
	var req taggingapp.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	summary, err := h.tagging.Like(c.Request.Context(), actor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, summary)
}

// Unlike godoc
// @ID           unlike
// @Summary      Withdraw a like
// @Tags         likes
// @Accept       json
// @Param        request body taggingapp.LikeRequest true "Entity"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /likes [delete]
func (h *TaggingHandler) Unlike(c *gin.Context) {
	var req taggingapp.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.tagging.Unlike(c.Request.Context(), actor(c), req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
