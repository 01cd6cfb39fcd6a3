package tagging

import (
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/tagging"
)

// CreateTagRequest represents a request to create a tag
type CreateTagRequest struct {
	Label string `json:"label" binding:"required,max=255"`
}

// TagListFilter represents filter options for listing tags
type TagListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// EntityQuery identifies a taggable entity in query strings
type EntityQuery struct {
	Kind string `form:"kind" binding:"required"`
	ID   string `form:"id" binding:"required,uuid"`
}

// TagEntityRequest represents a request to attach a tag to an entity
type TagEntityRequest struct {
	TagID    uuid.UUID `json:"tag_id" binding:"required"`
	Kind     string    `json:"kind" binding:"required"`
	ObjectID uuid.UUID `json:"object_id" binding:"required"`
}

// LikeRequest represents a request to like or unlike an entity
type LikeRequest struct {
	Kind     string    `json:"kind" binding:"required"`
	ObjectID uuid.UUID `json:"object_id" binding:"required"`
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

// TaggedItemResponse represents a tag association in API responses
type TaggedItemResponse struct {
	ID       uuid.UUID `json:"id"`
	TagID    uuid.UUID `json:"tag_id"`
	Label    string    `json:"label"`
	Kind     string    `json:"kind"`
	ObjectID uuid.UUID `json:"object_id"`
}

// LikeSummaryResponse reports how often an entity is liked and whether the caller likes it
type LikeSummaryResponse struct {
	Kind     string    `json:"kind"`
	ObjectID uuid.UUID `json:"object_id"`
	Count    int64     `json:"count"`
	Liked    bool      `json:"liked"`
}

// ToTagResponse converts a tag to a response DTO
func ToTagResponse(t *tagging.Tag) TagResponse {
	return TagResponse{ID: t.ID, Label: t.Label}
}

// ToTaggedItemResponse converts a tag association to a response DTO
func ToTaggedItemResponse(item *tagging.TaggedItem) TaggedItemResponse {
	return TaggedItemResponse{
		ID:       item.ID,
		TagID:    item.TagID,
		Label:    item.Label,
		Kind:     string(item.Entity.Kind),
		ObjectID: item.Entity.ID,
	}
}
