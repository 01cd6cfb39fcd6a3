package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// ReviewService handles product reviews
type ReviewService struct {
	reviewRepo  catalog.ReviewRepository
	productRepo catalog.ProductRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewRepo catalog.ReviewRepository, productRepo catalog.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// List lists the reviews of a product, newest first
func (s *ReviewService) List(ctx context.Context, productID uuid.UUID, page, pageSize int) ([]ReviewResponse, int64, error) {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, 0, err
	}

	reviews, err := s.reviewRepo.FindByProduct(ctx, productID, shared.Filter{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, 0, err
	}
	total, err := s.reviewRepo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = ToReviewResponse(&reviews[i])
	}
	return responses, total, nil
}

// Create posts a review for a product
func (s *ReviewService) Create(ctx context.Context, productID uuid.UUID, req CreateReviewRequest) (*ReviewResponse, error) {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	review, err := catalog.NewReview(productID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	response := ToReviewResponse(review)
	return &response, nil
}

func (s *ReviewService) ensureProduct(ctx context.Context, productID uuid.UUID) error {
	exists, err := s.productRepo.ExistsByID(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return catalog.ErrProductNotFound
	}
	return nil
}
