package handler

import (
	"context"

	"github.com/google/uuid"
	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	customerapp "github.com/storefront/backend/internal/application/customer"
	orderapp "github.com/storefront/backend/internal/application/order"
	taggingapp "github.com/storefront/backend/internal/application/tagging"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockCollectionService is a mock implementation of CollectionUseCase
type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) Create(ctx context.Context, req catalogapp.CreateCollectionRequest) (*catalogapp.CollectionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.CollectionResponse), args.Error(1)
}

func (m *MockCollectionService) GetByID(ctx context.Context, id uuid.UUID) (*catalogapp.CollectionResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.CollectionResponse), args.Error(1)
}

func (m *MockCollectionService) List(ctx context.Context, filter catalogapp.CollectionListFilter) ([]catalogapp.CollectionResponse, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]catalogapp.CollectionResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockCollectionService) Update(ctx context.Context, id uuid.UUID, req catalogapp.UpdateCollectionRequest) (*catalogapp.CollectionResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.CollectionResponse), args.Error(1)
}

func (m *MockCollectionService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockProductService is a mock implementation of ProductUseCase
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, req catalogapp.CreateProductRequest) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ProductResponse), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uuid.UUID) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ProductResponse), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, filter catalogapp.ProductListFilter) ([]catalogapp.ProductResponse, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]catalogapp.ProductResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) Update(ctx context.Context, id uuid.UUID, req catalogapp.UpdateProductRequest) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ProductResponse), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockReviewService is a mock implementation of ReviewUseCase
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) List(ctx context.Context, productID uuid.UUID, page, pageSize int) ([]catalogapp.ReviewResponse, int64, error) {
	args := m.Called(ctx, productID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]catalogapp.ReviewResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewService) Create(ctx context.Context, productID uuid.UUID, req catalogapp.CreateReviewRequest) (*catalogapp.ReviewResponse, error) {
	args := m.Called(ctx, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ReviewResponse), args.Error(1)
}

// MockCartService is a mock implementation of CartUseCase
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Create(ctx context.Context) (*cartapp.CartResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartapp.CartResponse), args.Error(1)
}

func (m *MockCartService) GetByID(ctx context.Context, id uuid.UUID) (*cartapp.CartResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartapp.CartResponse), args.Error(1)
}

func (m *MockCartService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCartService) ListItems(ctx context.Context, cartID uuid.UUID) ([]cartapp.CartItemResponse, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cartapp.CartItemResponse), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, cartID uuid.UUID, req cartapp.AddItemRequest) (*cartapp.CartItemResponse, error) {
	args := m.Called(ctx, cartID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartapp.CartItemResponse), args.Error(1)
}

func (m *MockCartService) GetItem(ctx context.Context, cartID, itemID uuid.UUID) (*cartapp.CartItemResponse, error) {
	args := m.Called(ctx, cartID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartapp.CartItemResponse), args.Error(1)
}

func (m *MockCartService) UpdateItem(ctx context.Context, cartID, itemID uuid.UUID, req cartapp.UpdateItemRequest) (*cartapp.CartItemResponse, error) {
	args := m.Called(ctx, cartID, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartapp.CartItemResponse), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	return m.Called(ctx, cartID, itemID).Error(0)
}

// MockCustomerService is a mock implementation of CustomerUseCase
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetMe(ctx context.Context, actor shared.Actor) (*customerapp.CustomerResponse, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerapp.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) UpdateMe(ctx context.Context, actor shared.Actor, req customerapp.UpdateProfileRequest) (*customerapp.CustomerResponse, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerapp.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) List(ctx context.Context, filter customerapp.CustomerListFilter) ([]customerapp.CustomerResponse, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]customerapp.CustomerResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerService) GetByID(ctx context.Context, id uuid.UUID) (*customerapp.CustomerResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerapp.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) Update(ctx context.Context, id uuid.UUID, req customerapp.UpdateCustomerRequest) (*customerapp.CustomerResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerapp.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) ListAddresses(ctx context.Context, actor shared.Actor) ([]customerapp.AddressResponse, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]customerapp.AddressResponse), args.Error(1)
}

func (m *MockCustomerService) AddAddress(ctx context.Context, actor shared.Actor, req customerapp.CreateAddressRequest) (*customerapp.AddressResponse, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerapp.AddressResponse), args.Error(1)
}

func (m *MockCustomerService) RemoveAddress(ctx context.Context, actor shared.Actor, addressID uuid.UUID) error {
	return m.Called(ctx, actor, addressID).Error(0)
}

// MockOrderService is a mock implementation of OrderUseCase and OrderHistory
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateFromCart(ctx context.Context, actor shared.Actor, req orderapp.CreateOrderRequest) (*orderapp.OrderResponse, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderapp.OrderResponse), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, actor shared.Actor, filter orderapp.OrderListFilter) ([]orderapp.OrderResponse, int64, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]orderapp.OrderResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderService) ListForCustomer(ctx context.Context, customerID uuid.UUID, filter orderapp.OrderListFilter) ([]orderapp.OrderResponse, int64, error) {
	args := m.Called(ctx, customerID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]orderapp.OrderResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderService) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*orderapp.OrderResponse, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderapp.OrderResponse), args.Error(1)
}

func (m *MockOrderService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, req orderapp.UpdateOrderRequest) (*orderapp.OrderResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderapp.OrderResponse), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockTaggingService is a mock implementation of TaggingUseCase
type MockTaggingService struct {
	mock.Mock
}

func (m *MockTaggingService) CreateTag(ctx context.Context, req taggingapp.CreateTagRequest) (*taggingapp.TagResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taggingapp.TagResponse), args.Error(1)
}

func (m *MockTaggingService) ListTags(ctx context.Context, filter taggingapp.TagListFilter) ([]taggingapp.TagResponse, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]taggingapp.TagResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockTaggingService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaggingService) TagsFor(ctx context.Context, query taggingapp.EntityQuery) ([]taggingapp.TaggedItemResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]taggingapp.TaggedItemResponse), args.Error(1)
}

func (m *MockTaggingService) TagEntity(ctx context.Context, req taggingapp.TagEntityRequest) (*taggingapp.TaggedItemResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taggingapp.TaggedItemResponse), args.Error(1)
}

func (m *MockTaggingService) UntagItem(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaggingService) Like(ctx context.Context, actor shared.Actor, req taggingapp.LikeRequest) (*taggingapp.LikeSummaryResponse, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taggingapp.LikeSummaryResponse), args.Error(1)
}

func (m *MockTaggingService) Unlike(ctx context.Context, actor shared.Actor, req taggingapp.LikeRequest) error {
	return m.Called(ctx, actor, req).Error(0)
}

func (m *MockTaggingService) LikeSummary(ctx context.Context, actor shared.Actor, query taggingapp.EntityQuery) (*taggingapp.LikeSummaryResponse, error) {
	args := m.Called(ctx, actor, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taggingapp.LikeSummaryResponse), args.Error(1)
}
