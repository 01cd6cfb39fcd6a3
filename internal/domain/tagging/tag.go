package tagging

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Error values of the tagging context
var (
	ErrTagNotFound        = shared.NewNotFoundError("No tag with the given ID was found.")
	ErrTaggedItemNotFound = shared.NewNotFoundError("No tagged item with the given ID was found.")
	ErrLikeNotFound       = shared.NewNotFoundError("No like for the given entity was found.")
)

// Tag is a label that can be attached to any taggable entity
type Tag struct {
	ID    uuid.UUID
	Label string
}

// NewTag creates a new tag
func NewTag(label string) (*Tag, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewValidationError("Label cannot be empty")
	}
	if len(label) > 255 {
		return nil, shared.NewValidationError("Label cannot exceed 255 characters")
	}
	return &Tag{ID: uuid.New(), Label: label}, nil
}

// TaggedItem binds a tag to an entity
type TaggedItem struct {
	ID     uuid.UUID
	TagID  uuid.UUID
	Label  string
	Entity EntityRef
}

// NewTaggedItem creates a new tag association
func NewTaggedItem(tag *Tag, entity EntityRef) *TaggedItem {
	return &TaggedItem{
		ID:     uuid.New(),
		TagID:  tag.ID,
		Label:  tag.Label,
		Entity: entity,
	}
}

// LikedItem records that a user likes an entity
type LikedItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Entity    EntityRef
	CreatedAt time.Time
}

// NewLikedItem creates a new like
func NewLikedItem(userID uuid.UUID, entity EntityRef) (*LikedItem, error) {
	if userID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	return &LikedItem{
		ID:        uuid.New(),
		UserID:    userID,
		Entity:    entity,
		CreatedAt: time.Now(),
	}, nil
}
