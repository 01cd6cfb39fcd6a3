package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tagging"
	"go.uber.org/zap"
)

// Guard messages shown to API clients
const (
	MsgCollectionHasProducts = "Collection cannot be deleted because it includes one or more products."
	MsgProductHasOrderItems  = "Product cannot be deleted because it is associated with an order item."
)

// TaggableCleaner removes tag associations and likes that point at a deleted entity
type TaggableCleaner interface {
	RemoveEntity(ctx context.Context, entity tagging.EntityRef) error
}

// removeTaggingRows runs after the entity row is gone, so a failure is logged and not returned
func removeTaggingRows(ctx context.Context, cleaner TaggableCleaner, logger *zap.Logger, ref tagging.EntityRef) {
	if cleaner == nil {
		return
	}
	if err := cleaner.RemoveEntity(ctx, ref); err != nil {
		logger.Warn("Failed to remove tagging rows of deleted entity",
			zap.String("entity", ref.String()),
			zap.Error(err),
		)
	}
}

// CollectionService handles collection-related business operations
type CollectionService struct {
	collectionRepo catalog.CollectionRepository
	productRepo    catalog.ProductRepository
	cleaner        TaggableCleaner
	logger         *zap.Logger
}

// NewCollectionService creates a new CollectionService
func NewCollectionService(
	collectionRepo catalog.CollectionRepository,
	productRepo catalog.ProductRepository,
	cleaner TaggableCleaner,
) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		productRepo:    productRepo,
		cleaner:        cleaner,
		logger:         zap.NewNop(),
	}
}

// SetLogger sets the logger used for best-effort cleanup failures
func (s *CollectionService) SetLogger(logger *zap.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Create creates a new collection
func (s *CollectionService) Create(ctx context.Context, req CreateCollectionRequest) (*CollectionResponse, error) {
	collection, err := catalog.NewCollection(req.Title)
	if err != nil {
		return nil, err
	}

	if err := s.checkFeaturedProduct(ctx, req.FeaturedProductID); err != nil {
		return nil, err
	}
	collection.FeaturedProductID = req.FeaturedProductID

	if err := s.collectionRepo.Save(ctx, collection); err != nil {
		return nil, err
	}

	response := ToCollectionResponse(&catalog.CollectionSummary{Collection: *collection})
	return &response, nil
}

// GetByID retrieves a collection with its product count
func (s *CollectionService) GetByID(ctx context.Context, id uuid.UUID) (*CollectionResponse, error) {
	summary, err := s.collectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, collectionNotFound(err)
	}
	response := ToCollectionResponse(summary)
	return &response, nil
}

// List retrieves collections ordered by title
func (s *CollectionService) List(ctx context.Context, filter CollectionListFilter) ([]CollectionResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		OrderBy:  "title",
		OrderDir: "asc",
	}

	summaries, err := s.collectionRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.collectionRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CollectionResponse, len(summaries))
	for i := range summaries {
		responses[i] = ToCollectionResponse(&summaries[i])
	}
	return responses, total, nil
}

// Update replaces a collection
func (s *CollectionService) Update(ctx context.Context, id uuid.UUID, req UpdateCollectionRequest) (*CollectionResponse, error) {
	summary, err := s.collectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, collectionNotFound(err)
	}

	if err := summary.Rename(req.Title); err != nil {
		return nil, err
	}
	if err := s.checkFeaturedProduct(ctx, req.FeaturedProductID); err != nil {
		return nil, err
	}
	summary.Feature(req.FeaturedProductID)

	if err := s.collectionRepo.Save(ctx, &summary.Collection); err != nil {
		return nil, err
	}

	response := ToCollectionResponse(summary)
	return &response, nil
}

// Delete deletes a collection.
// A collection that still owns products cannot be deleted.
func (s *CollectionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.collectionRepo.FindByID(ctx, id); err != nil {
		return collectionNotFound(err)
	}

	count, err := s.productRepo.CountByCollection(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewIntegrityGuardError(MsgCollectionHasProducts)
	}

	if err := s.collectionRepo.Delete(ctx, id); err != nil {
		return err
	}

	removeTaggingRows(ctx, s.cleaner, s.logger, tagging.EntityRef{Kind: tagging.KindCollection, ID: id})
	return nil
}

func (s *CollectionService) checkFeaturedProduct(ctx context.Context, productID *uuid.UUID) error {
	if productID == nil {
		return nil
	}
	exists, err := s.productRepo.ExistsByID(ctx, *productID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewValidationError("No product with the given ID was found.")
	}
	return nil
}

func collectionNotFound(err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return catalog.ErrCollectionNotFound
	}
	return err
}

func productNotFound(err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return catalog.ErrProductNotFound
	}
	return err
}
