package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tagging"
	"go.uber.org/zap"
)

// OrderItemCounter reports how many order items reference a product
type OrderItemCounter interface {
	CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}

// ProductService handles product-related business operations
type ProductService struct {
	productRepo    catalog.ProductRepository
	collectionRepo catalog.CollectionRepository
	orderItems     OrderItemCounter
	cleaner        TaggableCleaner
	taxRate        decimal.Decimal
	logger         *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	collectionRepo catalog.CollectionRepository,
	orderItems OrderItemCounter,
	cleaner TaggableCleaner,
	taxRate decimal.Decimal,
) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		collectionRepo: collectionRepo,
		orderItems:     orderItems,
		cleaner:        cleaner,
		taxRate:        taxRate,
		logger:         zap.NewNop(),
	}
}

// SetLogger sets the logger used for best-effort cleanup failures
func (s *ProductService) SetLogger(logger *zap.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if req.Price == nil || req.Inventory == nil {
		return nil, shared.NewValidationError("Price and inventory are required")
	}

	product, err := catalog.NewProduct(req.Title, req.Slug, *req.Price, *req.Inventory)
	if err != nil {
		return nil, err
	}
	product.SetDescription(req.Description)

	if err := s.checkCollection(ctx, req.CollectionID); err != nil {
		return nil, err
	}
	product.CollectionID = req.CollectionID

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product, s.taxRate)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, productNotFound(err)
	}
	response := ToProductResponse(product, s.taxRate)
	return &response, nil
}

// List retrieves products with filtering, search and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
	}
	if domainFilter.OrderBy == "" {
		domainFilter.OrderBy = "title"
	}

	if filter.CollectionID != "" {
		collectionID, err := uuid.Parse(filter.CollectionID)
		if err != nil {
			return nil, 0, shared.NewValidationError("collection_id must be a valid UUID")
		}
		domainFilter.Set("collection_id", collectionID)
	}
	if filter.MinPrice != "" {
		minPrice, err := decimal.NewFromString(filter.MinPrice)
		if err != nil {
			return nil, 0, shared.NewValidationError("min_price must be a number")
		}
		domainFilter.Set("min_price", minPrice)
	}
	if filter.MaxPrice != "" {
		maxPrice, err := decimal.NewFromString(filter.MaxPrice)
		if err != nil {
			return nil, 0, shared.NewValidationError("max_price must be a number")
		}
		domainFilter.Set("max_price", maxPrice)
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i], s.taxRate)
	}
	return responses, total, nil
}

// Update replaces a product.
// Past order items keep the price they were sold at.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	if req.Price == nil || req.Inventory == nil {
		return nil, shared.NewValidationError("Price and inventory are required")
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, productNotFound(err)
	}

	if err := product.Update(req.Title, req.Slug, req.Description); err != nil {
		return nil, err
	}
	if err := product.ChangePrice(*req.Price); err != nil {
		return nil, err
	}
	if err := product.SetInventory(*req.Inventory); err != nil {
		return nil, err
	}
	if err := s.checkCollection(ctx, req.CollectionID); err != nil {
		return nil, err
	}
	product.AssignCollection(req.CollectionID)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product, s.taxRate)
	return &response, nil
}

// Delete deletes a product.
// A product referenced by any order item cannot be deleted.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return productNotFound(err)
	}

	count, err := s.orderItems.CountItemsByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewIntegrityGuardError(MsgProductHasOrderItems)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	removeTaggingRows(ctx, s.cleaner, s.logger, tagging.EntityRef{Kind: tagging.KindProduct, ID: id})
	return nil
}

func (s *ProductService) checkCollection(ctx context.Context, collectionID *uuid.UUID) error {
	if collectionID == nil {
		return nil
	}
	exists, err := s.collectionRepo.ExistsByID(ctx, *collectionID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewValidationError("No collection with the given ID was found.")
	}
	return nil
}
