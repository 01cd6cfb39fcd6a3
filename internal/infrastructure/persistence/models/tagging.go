package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/tagging"
)

// TagModel is the persistence model for the Tag domain entity.
type TagModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Label string    `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (TagModel) TableName() string {
	return "tags"
}

// ToDomain converts the persistence model to a domain Tag.
func (m *TagModel) ToDomain() *tagging.Tag {
	return &tagging.Tag{ID: m.ID, Label: m.Label}
}

// TagModelFromDomain creates a persistence model from a domain Tag.
func TagModelFromDomain(t *tagging.Tag) *TagModel {
	return &TagModel{ID: t.ID, Label: t.Label}
}

// TaggedItemModel is the persistence model for the TaggedItem domain entity.
// (entity_kind, entity_id) is a weak reference without a foreign key.
type TaggedItemModel struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key"`
	TagID      uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_tagged_items_tag_entity,priority:1"`
	EntityKind tagging.EntityKind `gorm:"type:varchar(32);not null;uniqueIndex:idx_tagged_items_tag_entity,priority:2;index:idx_tagged_items_entity,priority:1"`
	EntityID   uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_tagged_items_tag_entity,priority:3;index:idx_tagged_items_entity,priority:2"`
	Tag        *TagModel          `gorm:"foreignKey:TagID;references:ID"`
}

// TableName returns the table name for GORM
func (TaggedItemModel) TableName() string {
	return "tagged_items"
}

// ToDomain converts the persistence model to a domain TaggedItem.
// The label is only populated when the Tag association was preloaded.
func (m *TaggedItemModel) ToDomain() *tagging.TaggedItem {
	item := &tagging.TaggedItem{
		ID:     m.ID,
		TagID:  m.TagID,
		Entity: tagging.EntityRef{Kind: m.EntityKind, ID: m.EntityID},
	}
	if m.Tag != nil {
		item.Label = m.Tag.Label
	}
	return item
}

// TaggedItemModelFromDomain creates a persistence model from a domain TaggedItem.
func TaggedItemModelFromDomain(item *tagging.TaggedItem) *TaggedItemModel {
	return &TaggedItemModel{
		ID:         item.ID,
		TagID:      item.TagID,
		EntityKind: item.Entity.Kind,
		EntityID:   item.Entity.ID,
	}
}

// LikedItemModel is the persistence model for the LikedItem domain entity.
type LikedItemModel struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_liked_items_user_entity,priority:1"`
	EntityKind tagging.EntityKind `gorm:"type:varchar(32);not null;uniqueIndex:idx_liked_items_user_entity,priority:2;index:idx_liked_items_entity,priority:1"`
	EntityID   uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_liked_items_user_entity,priority:3;index:idx_liked_items_entity,priority:2"`
	CreatedAt  time.Time          `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LikedItemModel) TableName() string {
	return "liked_items"
}

// LikedItemModelFromDomain creates a persistence model from a domain LikedItem.
func LikedItemModelFromDomain(item *tagging.LikedItem) *LikedItemModel {
	return &LikedItemModel{
		ID:         item.ID,
		UserID:     item.UserID,
		EntityKind: item.Entity.Kind,
		EntityID:   item.Entity.ID,
		CreatedAt:  item.CreatedAt,
	}
}
