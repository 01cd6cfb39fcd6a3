package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByProduct lists reviews of a product, newest first
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]catalog.Review, error) {
	var reviewModels []models.ReviewModel
	query := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("date DESC, id")
	if err := paginate(query, filter).Find(&reviewModels).Error; err != nil {
		return nil, err
	}

	reviews := make([]catalog.Review, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = *reviewModels[i].ToDomain()
	}
	return reviews, nil
}

// CountByProduct counts reviews of a product
func (r *GormReviewRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReviewModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create appends a review
func (r *GormReviewRepository) Create(ctx context.Context, review *catalog.Review) error {
	return r.db.WithContext(ctx).Create(models.ReviewModelFromDomain(review)).Error
}

// Ensure GormReviewRepository implements ReviewRepository
var _ catalog.ReviewRepository = (*GormReviewRepository)(nil)
