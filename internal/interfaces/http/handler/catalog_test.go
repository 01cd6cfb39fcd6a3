package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCollectionRouter(svc *MockCollectionService) http.Handler {
	h := NewCollectionHandler(svc)
	router := newTestRouter(nil)
	router.GET("/collections", h.List)
	router.POST("/collections", h.Create)
	router.GET("/collections/:id", h.Get)
	router.PUT("/collections/:id", h.Update)
	router.DELETE("/collections/:id", h.Delete)
	return router
}

func TestCollectionHandler_List(t *testing.T) {
	svc := new(MockCollectionService)
	router := setupCollectionRouter(svc)

	collections := []catalogapp.CollectionResponse{
		{ID: uuid.New(), Title: "Beauty", ProductsCount: 3},
		{ID: uuid.New(), Title: "Toys", ProductsCount: 0},
	}
	svc.On("List", mock.Anything, catalogapp.CollectionListFilter{Search: "o", Page: 2}).
		Return(collections, int64(22), nil)

	w := performRequest(router, http.MethodGet, "/collections?search=o&page=2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(22), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, dto.DefaultPageSize, resp.Meta.PageSize)
	assert.Len(t, decodeData[[]catalogapp.CollectionResponse](t, w), 2)
	svc.AssertExpectations(t)
}

func TestCollectionHandler_Create(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc := new(MockCollectionService)
		router := setupCollectionRouter(svc)

		created := &catalogapp.CollectionResponse{ID: uuid.New(), Title: "Garden"}
		svc.On("Create", mock.Anything, catalogapp.CreateCollectionRequest{Title: "Garden"}).Return(created, nil)

		w := performRequest(router, http.MethodPost, "/collections", map[string]any{"title": "Garden"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, created.ID, decodeData[catalogapp.CollectionResponse](t, w).ID)
	})

	t.Run("missing title", func(t *testing.T) {
		svc := new(MockCollectionService)
		router := setupCollectionRouter(svc)

		w := performRequest(router, http.MethodPost, "/collections", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "title", resp.Error.Details[0].Field)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCollectionHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"empty collection", nil, http.StatusNoContent},
		{"collection with products", shared.NewIntegrityGuardError("Collection cannot be deleted because it includes one or more products."), http.StatusMethodNotAllowed},
		{"missing collection", catalog.ErrCollectionNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCollectionService)
			router := setupCollectionRouter(svc)
			id := uuid.New()
			svc.On("Delete", mock.Anything, id).Return(tt.err)

			w := performRequest(router, http.MethodDelete, "/collections/"+id.String(), nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestCollectionHandler_UpdateAndGet(t *testing.T) {
	svc := new(MockCollectionService)
	router := setupCollectionRouter(svc)
	id := uuid.New()

	svc.On("Update", mock.Anything, id, catalogapp.UpdateCollectionRequest{Title: "Renamed"}).
		Return(&catalogapp.CollectionResponse{ID: id, Title: "Renamed"}, nil)
	svc.On("GetByID", mock.Anything, id).Return(nil, catalog.ErrCollectionNotFound)

	w := performRequest(router, http.MethodPut, "/collections/"+id.String(), map[string]any{"title": "Renamed"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Renamed", decodeData[catalogapp.CollectionResponse](t, w).Title)

	w = performRequest(router, http.MethodGet, "/collections/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, catalog.ErrCollectionNotFound.Message, decodeResponse(t, w).Error.Message)

	w = performRequest(router, http.MethodGet, "/collections/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func setupProductRouter(products *MockProductService, reviews *MockReviewService) http.Handler {
	h := NewProductHandler(products, reviews)
	router := newTestRouter(nil)
	router.GET("/products", h.List)
	router.POST("/products", h.Create)
	router.GET("/products/:id", h.Get)
	router.PUT("/products/:id", h.Update)
	router.DELETE("/products/:id", h.Delete)
	router.GET("/products/:id/reviews", h.ListReviews)
	router.POST("/products/:id/reviews", h.CreateReview)
	return router
}

func TestProductHandler_List(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		products := new(MockProductService)
		router := setupProductRouter(products, new(MockReviewService))
		collectionID := uuid.NewString()

		expected := catalogapp.ProductListFilter{
			CollectionID: collectionID,
			MinPrice:     "10",
			MaxPrice:     "50.5",
			OrderBy:      "price",
			OrderDir:     "desc",
			PageSize:     5,
		}
		products.On("List", mock.Anything, expected).Return([]catalogapp.ProductResponse{}, int64(0), nil)

		w := performRequest(router, http.MethodGet,
			"/products?collection_id="+collectionID+"&min_price=10&max_price=50.5&order_by=price&order_dir=desc&page_size=5", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, decodeResponse(t, w).Meta.PageSize)
		products.AssertExpectations(t)
	})

	t.Run("rejects unknown ordering", func(t *testing.T) {
		products := new(MockProductService)
		router := setupProductRouter(products, new(MockReviewService))

		w := performRequest(router, http.MethodGet, "/products?order_by=secret", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "order_by", decodeResponse(t, w).Error.Details[0].Field)
	})

	t.Run("rejects oversized pages", func(t *testing.T) {
		router := setupProductRouter(new(MockProductService), new(MockReviewService))

		w := performRequest(router, http.MethodGet, "/products?page_size=1000", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_Create(t *testing.T) {
	products := new(MockProductService)
	router := setupProductRouter(products, new(MockReviewService))

	created := &catalogapp.ProductResponse{
		ID:           uuid.New(),
		Title:        "Lamp",
		Slug:         "lamp",
		Price:        decimal.RequireFromString("10.00"),
		PriceWithTax: decimal.RequireFromString("11.00"),
		Inventory:    4,
	}
	products.On("Create", mock.Anything, mock.MatchedBy(func(req catalogapp.CreateProductRequest) bool {
		return req.Title == "Lamp" && req.Price.Equal(decimal.RequireFromString("10")) && *req.Inventory == 4
	})).Return(created, nil)

	w := performRequest(router, http.MethodPost, "/products", `{"title":"Lamp","price":"10","inventory":4}`)

	require.Equal(t, http.StatusCreated, w.Code)
	got := decodeData[catalogapp.ProductResponse](t, w)
	assert.True(t, got.PriceWithTax.Equal(decimal.RequireFromString("11")))

	t.Run("inventory is required", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/products", `{"title":"Lamp","price":"10"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "inventory", decodeResponse(t, w).Error.Details[0].Field)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/products", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidJSON, decodeResponse(t, w).Error.Code)
	})
}

func TestProductHandler_DeleteGuard(t *testing.T) {
	products := new(MockProductService)
	router := setupProductRouter(products, new(MockReviewService))
	id := uuid.New()
	products.On("Delete", mock.Anything, id).
		Return(shared.NewIntegrityGuardError("Product cannot be deleted because it is associated with an order item."))

	w := performRequest(router, http.MethodDelete, "/products/"+id.String(), nil)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, dto.ErrCodeIntegrityGuard, decodeResponse(t, w).Error.Code)
}

func TestProductHandler_Reviews(t *testing.T) {
	reviews := new(MockReviewService)
	router := setupProductRouter(new(MockProductService), reviews)
	productID := uuid.New()

	reviews.On("List", mock.Anything, productID, 1, dto.DefaultPageSize).
		Return([]catalogapp.ReviewResponse{{ID: uuid.New(), ProductID: productID, Name: "Ann", Description: "Great", Date: "2026-01-02"}}, int64(1), nil)
	reviews.On("Create", mock.Anything, productID, catalogapp.CreateReviewRequest{Name: "Bob", Description: "Fine"}).
		Return(&catalogapp.ReviewResponse{ID: uuid.New(), ProductID: productID, Name: "Bob", Description: "Fine"}, nil)

	w := performRequest(router, http.MethodGet, "/products/"+productID.String()+"/reviews", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeData[[]catalogapp.ReviewResponse](t, w), 1)

	w = performRequest(router, http.MethodPost, "/products/"+productID.String()+"/reviews", map[string]any{"name": "Bob", "description": "Fine"})
	assert.Equal(t, http.StatusCreated, w.Code)

	missing := uuid.New()
	reviews.On("List", mock.Anything, missing, 1, dto.DefaultPageSize).Return(nil, int64(0), catalog.ErrProductNotFound)
	w = performRequest(router, http.MethodGet, "/products/"+missing.String()+"/reviews", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	reviews.AssertExpectations(t)
}
