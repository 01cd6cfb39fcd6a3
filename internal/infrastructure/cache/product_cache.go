package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

const productKeyPrefix = "storefront:product:"

// CachedProductRepository serves product reads by ID from a Store and
// evicts the entry on every write. Prices used for order conversion are
// always read inside the conversion transaction, never through this cache.
type CachedProductRepository struct {
	catalog.ProductRepository
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedProductRepository decorates repo with a read cache
func NewCachedProductRepository(repo catalog.ProductRepository, store Store, ttl time.Duration, logger *zap.Logger) *CachedProductRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedProductRepository{
		ProductRepository: repo,
		store:             store,
		ttl:               ttl,
		logger:            logger.Named("product_cache"),
	}
}

func productKey(id uuid.UUID) string {
	return productKeyPrefix + id.String()
}

// FindByID returns the cached product or loads and caches it.
// Cache failures degrade to a repository read.
func (r *CachedProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	key := productKey(id)

	data, err := r.store.Get(ctx, key)
	switch {
	case err == nil:
		var product catalog.Product
		if err := json.Unmarshal(data, &product); err == nil {
			return &product, nil
		}
		r.logger.Warn("discarding undecodable cache entry", zap.String("key", key))
	case !errors.Is(err, ErrCacheMiss):
		r.logger.Warn("product cache read failed", zap.String("key", key), zap.Error(err))
	}

	product, err := r.ProductRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(product); err == nil {
		if err := r.store.Set(ctx, key, data, r.ttl); err != nil {
			r.logger.Warn("product cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return product, nil
}

// Save persists the product and evicts its cache entry
func (r *CachedProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	if err := r.ProductRepository.Save(ctx, product); err != nil {
		return err
	}
	r.evict(ctx, product.ID)
	return nil
}

// Delete removes the product and evicts its cache entry
func (r *CachedProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ProductRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *CachedProductRepository) evict(ctx context.Context, id uuid.UUID) {
	if err := r.store.Delete(ctx, productKey(id)); err != nil {
		r.logger.Error("product cache eviction failed", zap.String("product_id", id.String()), zap.Error(err))
	}
}

var _ catalog.ProductRepository = (*CachedProductRepository)(nil)
