package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tagging"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTagRepository implements TagRepository using GORM
type GormTagRepository struct {
	db *gorm.DB
}

// NewGormTagRepository creates a new GormTagRepository
func NewGormTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// FindByID finds a tag by its ID
func (r *GormTagRepository) FindByID(ctx context.Context, id uuid.UUID) (*tagging.Tag, error) {
	var model models.TagModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all tags matching the filter
func (r *GormTagRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tagging.Tag, error) {
	var tagModels []models.TagModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TagModel{}), filter)
	query = paginate(query.Order(orderClause(filter, TagSortFields, "label", "ASC")), filter)

	if err := query.Find(&tagModels).Error; err != nil {
		return nil, err
	}

	tags := make([]tagging.Tag, len(tagModels))
	for i := range tagModels {
		tags[i] = *tagModels[i].ToDomain()
	}
	return tags, nil
}

// Count counts tags matching the filter
func (r *GormTagRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TagModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByLabel checks case-insensitively if a tag with the label exists
func (r *GormTagRepository) ExistsByLabel(ctx context.Context, label string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TagModel{}).
		Where("LOWER(label) = LOWER(?)", label).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a tag
func (r *GormTagRepository) Save(ctx context.Context, tag *tagging.Tag) error {
	return r.db.WithContext(ctx).Save(models.TagModelFromDomain(tag)).Error
}

// Delete deletes a tag and every association that uses it
func (r *GormTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.TaggedItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.TagModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormTagRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(label) LIKE ?", likePattern(filter.Search))
	}
	return query
}

// GormTaggedItemRepository implements TaggedItemRepository using GORM
type GormTaggedItemRepository struct {
	db *gorm.DB
}

// NewGormTaggedItemRepository creates a new GormTaggedItemRepository
func NewGormTaggedItemRepository(db *gorm.DB) *GormTaggedItemRepository {
	return &GormTaggedItemRepository{db: db}
}

// FindByID finds an association with its tag label
func (r *GormTaggedItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*tagging.TaggedItem, error) {
	var model models.TaggedItemModel
	if err := r.db.WithContext(ctx).Preload("Tag").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEntity lists the tags attached to an entity
func (r *GormTaggedItemRepository) FindByEntity(ctx context.Context, entity tagging.EntityRef) ([]tagging.TaggedItem, error) {
	var itemModels []models.TaggedItemModel
	if err := r.db.WithContext(ctx).
		Preload("Tag").
		Where("entity_kind = ? AND entity_id = ?", entity.Kind, entity.ID).
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]tagging.TaggedItem, len(itemModels))
	for i := range itemModels {
		items[i] = *itemModels[i].ToDomain()
	}
	return items, nil
}

// Create inserts an association, returning ErrAlreadyExists when the tag is already attached
func (r *GormTaggedItemRepository) Create(ctx context.Context, item *tagging.TaggedItem) error {
	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(models.TaggedItemModelFromDomain(item))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrAlreadyExists
	}
	return nil
}

// Delete deletes an association
func (r *GormTaggedItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TaggedItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByEntity removes every association pointing at an entity
func (r *GormTaggedItemRepository) DeleteByEntity(ctx context.Context, entity tagging.EntityRef) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("entity_kind = ? AND entity_id = ?", entity.Kind, entity.ID).
		Delete(&models.TaggedItemModel{})
	return result.RowsAffected, result.Error
}

// GormLikedItemRepository implements LikedItemRepository using GORM
type GormLikedItemRepository struct {
	db *gorm.DB
}

// NewGormLikedItemRepository creates a new GormLikedItemRepository
func NewGormLikedItemRepository(db *gorm.DB) *GormLikedItemRepository {
	return &GormLikedItemRepository{db: db}
}

// Create inserts a like; liking twice is a no-op
func (r *GormLikedItemRepository) Create(ctx context.Context, item *tagging.LikedItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(models.LikedItemModelFromDomain(item)).Error
}

// Delete removes the like of a user on an entity
func (r *GormLikedItemRepository) Delete(ctx context.Context, userID uuid.UUID, entity tagging.EntityRef) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND entity_kind = ? AND entity_id = ?", userID, entity.Kind, entity.ID).
		Delete(&models.LikedItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByEntity counts the likes of an entity
func (r *GormLikedItemRepository) CountByEntity(ctx context.Context, entity tagging.EntityRef) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LikedItemModel{}).
		Where("entity_kind = ? AND entity_id = ?", entity.Kind, entity.ID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsForUser checks if a user likes an entity
func (r *GormLikedItemRepository) ExistsForUser(ctx context.Context, userID uuid.UUID, entity tagging.EntityRef) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LikedItemModel{}).
		Where("user_id = ? AND entity_kind = ? AND entity_id = ?", userID, entity.Kind, entity.ID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByEntity removes every like pointing at an entity
func (r *GormLikedItemRepository) DeleteByEntity(ctx context.Context, entity tagging.EntityRef) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("entity_kind = ? AND entity_id = ?", entity.Kind, entity.ID).
		Delete(&models.LikedItemModel{})
	return result.RowsAffected, result.Error
}

// Ensure repositories implement their interfaces
var (
	_ tagging.TagRepository        = (*GormTagRepository)(nil)
	_ tagging.TaggedItemRepository = (*GormTaggedItemRepository)(nil)
	_ tagging.LikedItemRepository  = (*GormLikedItemRepository)(nil)
)
