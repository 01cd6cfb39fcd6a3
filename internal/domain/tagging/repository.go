package tagging

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// TagRepository defines the interface for tag persistence
type TagRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tag, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Tag, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByLabel(ctx context.Context, label string) (bool, error)
	Save(ctx context.Context, tag *Tag) error
	// Delete deletes a tag and every association that uses it
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaggedItemRepository defines the interface for tag associations
type TaggedItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TaggedItem, error)
	// FindByEntity lists the tags attached to an entity
	FindByEntity(ctx context.Context, entity EntityRef) ([]TaggedItem, error)
	// Create inserts an association, returning ErrAlreadyExists for a duplicate
	Create(ctx context.Context, item *TaggedItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByEntity removes every association pointing at an entity
	DeleteByEntity(ctx context.Context, entity EntityRef) (int64, error)
}

// LikedItemRepository defines the interface for likes
type LikedItemRepository interface {
	// Create inserts a like; liking twice is a no-op
	Create(ctx context.Context, item *LikedItem) error
	Delete(ctx context.Context, userID uuid.UUID, entity EntityRef) error
	CountByEntity(ctx context.Context, entity EntityRef) (int64, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID, entity EntityRef) (bool, error)
	// DeleteByEntity removes every like pointing at an entity
	DeleteByEntity(ctx context.Context, entity EntityRef) (int64, error)
}
