package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/customer"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tagging"
	"go.uber.org/zap"
)

// ErrNoSuchCart is returned when an order is requested for a cart that does not exist
var ErrNoSuchCart = shared.NewValidationError("No cart with the given ID was found.")

// TaggableCleaner removes tag associations and likes that point at a deleted order
type TaggableCleaner interface {
	RemoveEntity(ctx context.Context, entity tagging.EntityRef) error
}

// OrderService handles orders and the conversion of carts into orders
type OrderService struct {
	orderRepo      order.OrderRepository
	cartRepo       cart.CartRepository
	customerRepo   customer.CustomerRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	cleaner        TaggableCleaner
	logger         *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo order.OrderRepository,
	cartRepo cart.CartRepository,
	customerRepo customer.CustomerRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
		txScope:      txScope,
		logger:       logger,
	}
}

// SetEventPublisher sets the publisher notified after an order is committed
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetTaggableCleaner sets the cleaner run after an order is deleted
func (s *OrderService) SetTaggableCleaner(cleaner TaggableCleaner) {
	s.cleaner = cleaner
}

// CreateFromCart converts a cart into an order owned by the acting customer.
//
// The cart must exist and hold at least one item. The order, its item snapshots and
// the removal of the cart happen in one transaction; observers are notified only after
// the commit and cannot change the outcome.
func (s *OrderService) CreateFromCart(ctx context.Context, actor shared.Actor, req CreateOrderRequest) (*OrderResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}

	// Preconditions are checked before any mutation
	count, err := s.cartRepo.CountItems(ctx, req.CartID)
	if err != nil {
		return nil, noSuchCart(err)
	}
	if count == 0 {
		return nil, cart.ErrCartEmpty
	}

	var created *order.Order
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		// The row lock serializes concurrent conversions of the same cart;
		// the loser finds the cart gone.
		c, err := repos.CartRepo().FindByIDForUpdate(ctx, req.CartID)
		if err != nil {
			return noSuchCart(err)
		}
		if c.IsEmpty() {
			return cart.ErrCartEmpty
		}

		cust, err := repos.CustomerRepo().FindOrCreateByUserID(ctx, actor.UserID)
		if err != nil {
			return err
		}

		lines, err := snapshotLines(ctx, repos.ProductRepo(), c)
		if err != nil {
			return err
		}

		o, err := order.PlaceOrder(cust.ID, lines)
		if err != nil {
			return err
		}
		if err := repos.OrderRepo().Create(ctx, o); err != nil {
			return err
		}
		if err := repos.CartRepo().Delete(ctx, c.ID); err != nil {
			return err
		}

		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, created)

	response := ToOrderResponse(created)
	return &response, nil
}

// List lists orders visible to the actor: staff see every order, customers their own
func (s *OrderService) List(ctx context.Context, actor shared.Actor, filter OrderListFilter) ([]OrderResponse, int64, error) {
	if !actor.IsAuthenticated() {
		return nil, 0, shared.ErrUnauthorized
	}

	domainFilter := toDomainFilter(filter)
	if !actor.IsStaff {
		cust, err := s.customerRepo.FindOrCreateByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, 0, err
		}
		domainFilter.Set("customer_id", cust.ID)
	}

	return s.list(ctx, domainFilter)
}

// ListForCustomer lists the order history of a customer
func (s *OrderService) ListForCustomer(ctx context.Context, customerID uuid.UUID, filter OrderListFilter) ([]OrderResponse, int64, error) {
	exists, err := s.customerRepo.ExistsByID(ctx, customerID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, customer.ErrCustomerNotFound
	}

	domainFilter := toDomainFilter(filter)
	domainFilter.Set("customer_id", customerID)
	return s.list(ctx, domainFilter)
}

// GetByID retrieves an order. Customers only see their own orders.
func (s *OrderService) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}

	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, orderNotFound(err)
	}

	if !actor.IsStaff {
		cust, err := s.customerRepo.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, orderNotFound(err)
		}
		if cust.ID != o.CustomerID {
			return nil, order.ErrOrderNotFound
		}
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// UpdatePaymentStatus changes the payment status of an order
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, orderNotFound(err)
	}

	if err := o.UpdatePaymentStatus(order.PaymentStatus(req.PaymentStatus)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdatePaymentStatus(ctx, o); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// Delete deletes an order with its items.
// Tag and like rows of the order are removed afterwards; a failure there is only logged.
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return orderNotFound(err)
	}
	if s.cleaner == nil {
		return nil
	}
	ref := tagging.EntityRef{Kind: tagging.KindOrder, ID: id}
	if err := s.cleaner.RemoveEntity(ctx, ref); err != nil {
		s.logger.Warn("Failed to remove tagging rows of deleted order",
			zap.String("order_id", id.String()),
			zap.Error(err),
		)
	}
	return nil
}

func (s *OrderService) list(ctx context.Context, filter shared.Filter) ([]OrderResponse, int64, error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToOrderResponses(orders), total, nil
}

// publishEvents hands the pending domain events to the publisher.
// Failures are logged and never returned: the order is already committed.
func (s *OrderService) publishEvents(ctx context.Context, o *order.Order) {
	defer o.ClearDomainEvents()
	if s.eventPublisher == nil {
		return
	}
	for _, event := range o.GetDomainEvents() {
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish order event",
				zap.String("event_type", event.EventType()),
				zap.String("order_id", o.ID.String()),
				zap.Error(err),
			)
		}
	}
}

// snapshotLines captures the current price of every product in the cart
func snapshotLines(ctx context.Context, products catalog.ProductRepository, c *cart.Cart) ([]order.Line, error) {
	found, err := products.FindByIDs(ctx, c.ProductIDs())
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}

	lines := make([]order.Line, 0, len(c.Items))
	for _, item := range c.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, cart.ErrUnknownProduct
		}
		lines = append(lines, order.Line{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}
	return lines, nil
}

func toDomainFilter(filter OrderListFilter) shared.Filter {
	f := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "placed_at",
		OrderDir: "desc",
	}
	if filter.PaymentStatus != "" {
		f.Set("payment_status", filter.PaymentStatus)
	}
	return f
}

func noSuchCart(err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return ErrNoSuchCart
	}
	return err
}

func orderNotFound(err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return order.ErrOrderNotFound
	}
	return err
}
