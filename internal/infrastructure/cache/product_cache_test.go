package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	values map[string][]byte
	ttls   map[string]time.Duration
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (s *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	v, ok := s.values[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return v, nil
}

func (s *fakeStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.values[key] = value
	s.ttls[key] = ttl
	return nil
}

func (s *fakeStore) Delete(_ context.Context, keys ...string) error {
	if s.err != nil {
		return s.err
	}
	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) CountByCollection(ctx context.Context, collectionID uuid.UUID) (int64, error) {
	args := m.Called(ctx, collectionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newProduct(t *testing.T) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct("Espresso Beans", "", decimal.RequireFromString("12.50"), 4)
	require.NoError(t, err)
	return p
}

func TestCachedProductRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("loads once then serves from the store", func(t *testing.T) {
		repo := new(mockProductRepository)
		store := newFakeStore()
		cached := NewCachedProductRepository(repo, store, 5*time.Minute, nil)
		product := newProduct(t)

		repo.On("FindByID", ctx, product.ID).Return(product, nil).Once()

		first, err := cached.FindByID(ctx, product.ID)
		require.NoError(t, err)
		second, err := cached.FindByID(ctx, product.ID)
		require.NoError(t, err)

		assert.Equal(t, product.ID, second.ID)
		assert.Equal(t, first.Title, second.Title)
		assert.True(t, second.Price.Equal(product.Price))
		assert.Equal(t, 5*time.Minute, store.ttls[productKey(product.ID)])
		repo.AssertExpectations(t)
	})

	t.Run("does not cache misses", func(t *testing.T) {
		repo := new(mockProductRepository)
		store := newFakeStore()
		cached := NewCachedProductRepository(repo, store, time.Minute, nil)
		id := uuid.New()

		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound).Twice()

		_, err := cached.FindByID(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = cached.FindByID(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Empty(t, store.values)
		repo.AssertExpectations(t)
	})

	t.Run("falls back to the repository when the store fails", func(t *testing.T) {
		repo := new(mockProductRepository)
		store := newFakeStore()
		store.err = errors.New("connection refused")
		cached := NewCachedProductRepository(repo, store, time.Minute, nil)
		product := newProduct(t)

		repo.On("FindByID", ctx, product.ID).Return(product, nil)

		got, err := cached.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("replaces an undecodable entry", func(t *testing.T) {
		repo := new(mockProductRepository)
		store := newFakeStore()
		cached := NewCachedProductRepository(repo, store, time.Minute, nil)
		product := newProduct(t)
		store.values[productKey(product.ID)] = []byte("{not json")

		repo.On("FindByID", ctx, product.ID).Return(product, nil).Once()

		_, err := cached.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "{not json", string(store.values[productKey(product.ID)]))
	})
}

func TestCachedProductRepository_WritesEvict(t *testing.T) {
	ctx := context.Background()
	repo := new(mockProductRepository)
	store := newFakeStore()
	cached := NewCachedProductRepository(repo, store, time.Minute, nil)
	product := newProduct(t)
	key := productKey(product.ID)

	store.values[key] = []byte("stale")
	repo.On("Save", ctx, product).Return(nil).Once()
	require.NoError(t, cached.Save(ctx, product))
	assert.NotContains(t, store.values, key)

	store.values[key] = []byte("stale")
	repo.On("Delete", ctx, product.ID).Return(shared.NewIntegrityGuardError("referenced")).Once()
	assert.Error(t, cached.Delete(ctx, product.ID))
	assert.Contains(t, store.values, key)

	repo.On("Delete", ctx, product.ID).Return(nil).Once()
	require.NoError(t, cached.Delete(ctx, product.ID))
	assert.NotContains(t, store.values, key)

	repo.AssertExpectations(t)
}

func TestCachedProductRepository_DelegatesOtherReads(t *testing.T) {
	ctx := context.Background()
	repo := new(mockProductRepository)
	cached := NewCachedProductRepository(repo, newFakeStore(), time.Minute, nil)
	id := uuid.New()

	repo.On("ExistsByID", ctx, id).Return(true, nil)

	exists, err := cached.ExistsByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)
}
