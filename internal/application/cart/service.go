package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// CartService handles anonymous shopping carts
type CartService struct {
	cartRepo    cart.CartRepository
	productRepo catalog.ProductRepository
	txScope     TransactionScope
}

// NewCartService creates a new CartService
func NewCartService(cartRepo cart.CartRepository, productRepo catalog.ProductRepository, txScope TransactionScope) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		txScope:     txScope,
	}
}

// Create creates an empty cart
func (s *CartService) Create(ctx context.Context) (*CartResponse, error) {
	c := cart.NewCart()
	if err := s.cartRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.toCartResponse(ctx, c)
}

// GetByID retrieves a cart with its items and totals
func (s *CartService) GetByID(ctx context.Context, id uuid.UUID) (*CartResponse, error) {
	c, err := s.findCart(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toCartResponse(ctx, c)
}

// Delete deletes a cart and its items
func (s *CartService) Delete(ctx context.Context, id uuid.UUID) error {
	return cartNotFound(s.cartRepo.Delete(ctx, id))
}

// ListItems lists the items of a cart
func (s *CartService) ListItems(ctx context.Context, cartID uuid.UUID) ([]CartItemResponse, error) {
	resp, err := s.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AddItem adds a product to a cart.
// Adding a product already in the cart increases the quantity of the existing item.
func (s *CartService) AddItem(ctx context.Context, cartID uuid.UUID, req AddItemRequest) (*CartItemResponse, error) {
	if err := cart.ValidateQuantity(req.Quantity); err != nil {
		return nil, err
	}

	var (
		saved   cart.CartItem
		product *catalog.Product
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		c, err := repos.CartRepo().FindByIDForUpdate(ctx, cartID)
		if err != nil {
			return cartNotFound(err)
		}

		product, err = repos.ProductRepo().FindByID(ctx, req.ProductID)
		if err != nil {
			if shared.IsNotFound(err) {
				return cart.ErrUnknownProduct
			}
			return err
		}

		item, err := c.AddItem(req.ProductID, req.Quantity)
		if err != nil {
			return err
		}
		if err := repos.CartRepo().SaveItem(ctx, item); err != nil {
			return err
		}
		saved = *item
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := ToCartItemResponse(&saved, product)
	return &resp, nil
}

// GetItem retrieves one item of a cart
func (s *CartService) GetItem(ctx context.Context, cartID, itemID uuid.UUID) (*CartItemResponse, error) {
	c, err := s.findCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	item := c.FindItem(itemID)
	if item == nil {
		return nil, cart.ErrCartItemNotFound
	}

	product, err := s.productRepo.FindByID(ctx, item.ProductID)
	if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}
	resp := ToCartItemResponse(item, product)
	return &resp, nil
}

// UpdateItem sets the absolute quantity of a cart item
func (s *CartService) UpdateItem(ctx context.Context, cartID, itemID uuid.UUID, req UpdateItemRequest) (*CartItemResponse, error) {
	var saved cart.CartItem
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		c, err := repos.CartRepo().FindByIDForUpdate(ctx, cartID)
		if err != nil {
			return cartNotFound(err)
		}
		item, err := c.UpdateItemQuantity(itemID, req.Quantity)
		if err != nil {
			return err
		}
		if err := repos.CartRepo().SaveItem(ctx, item); err != nil {
			return err
		}
		saved = *item
		return nil
	})
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, saved.ProductID)
	if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}
	resp := ToCartItemResponse(&saved, product)
	return &resp, nil
}

// RemoveItem deletes one item of a cart
func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	if _, err := s.findCart(ctx, cartID); err != nil {
		return err
	}
	if err := s.cartRepo.DeleteItem(ctx, cartID, itemID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return cart.ErrCartItemNotFound
		}
		return err
	}
	return nil
}

func (s *CartService) findCart(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	c, err := s.cartRepo.FindByID(ctx, id)
	if err != nil {
		return nil, cartNotFound(err)
	}
	return c, nil
}

func (s *CartService) toCartResponse(ctx context.Context, c *cart.Cart) (*CartResponse, error) {
	products := make(map[uuid.UUID]*catalog.Product)
	if !c.IsEmpty() {
		found, err := s.productRepo.FindByIDs(ctx, c.ProductIDs())
		if err != nil {
			return nil, err
		}
		for i := range found {
			products[found[i].ID] = &found[i]
		}
	}

	resp := &CartResponse{
		ID:         c.ID,
		Items:      make([]CartItemResponse, 0, len(c.Items)),
		TotalPrice: decimal.Zero,
	}
	for i := range c.Items {
		item := ToCartItemResponse(&c.Items[i], products[c.Items[i].ProductID])
		resp.Items = append(resp.Items, item)
		resp.TotalPrice = resp.TotalPrice.Add(item.TotalPrice)
	}
	return resp, nil
}

// cartNotFound replaces the generic not found error with the cart specific one
func cartNotFound(err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return cart.ErrCartNotFound
	}
	return err
}
