package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const collectionSummarySelect = "collections.*, " +
	"(SELECT COUNT(*) FROM products WHERE products.collection_id = collections.id) AS products_count"

// GormCollectionRepository implements CollectionRepository using GORM
type GormCollectionRepository struct {
	db *gorm.DB
}

// NewGormCollectionRepository creates a new GormCollectionRepository
func NewGormCollectionRepository(db *gorm.DB) *GormCollectionRepository {
	return &GormCollectionRepository{db: db}
}

// FindByID finds a collection by its ID together with its product count
func (r *GormCollectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.CollectionSummary, error) {
	var row models.CollectionSummaryRow
	result := r.db.WithContext(ctx).
		Table("collections").
		Select(collectionSummarySelect).
		Where("collections.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return row.ToDomain(), nil
}

// FindAll finds all collections matching the filter
func (r *GormCollectionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.CollectionSummary, error) {
	var rows []models.CollectionSummaryRow
	query := r.db.WithContext(ctx).Table("collections").Select(collectionSummarySelect)
	query = r.applyFilter(query, filter)
	query = paginate(query.Order(orderClause(filter, CollectionSortFields, "title", "ASC")), filter)

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	collections := make([]catalog.CollectionSummary, len(rows))
	for i := range rows {
		collections[i] = *rows[i].ToDomain()
	}
	return collections, nil
}

// Count counts collections matching the filter
func (r *GormCollectionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CollectionModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a collection
func (r *GormCollectionRepository) Save(ctx context.Context, collection *catalog.Collection) error {
	return r.db.WithContext(ctx).Save(models.CollectionModelFromDomain(collection)).Error
}

// Delete deletes a collection
func (r *GormCollectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CollectionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByID checks if a collection exists
func (r *GormCollectionRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CollectionModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCollectionRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(collections.title) LIKE ?", likePattern(filter.Search))
	}
	return query
}

// Ensure GormCollectionRepository implements CollectionRepository
var _ catalog.CollectionRepository = (*GormCollectionRepository)(nil)
