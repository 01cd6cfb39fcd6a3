package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByID finds a cart with its items
func (r *GormCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// FindByIDForUpdate finds a cart with its items and locks the cart and item rows
// with SELECT ... FOR UPDATE. It must run inside a transaction for the lock to hold.
func (r *GormCartRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	locked := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Session(&gorm.Session{})
	return r.find(locked, id)
}

func (r *GormCartRepository) find(db *gorm.DB, id uuid.UUID) (*cart.Cart, error) {
	var model models.CartModel
	if err := db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := db.Where("cart_id = ?", id).Find(&model.Items).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Create persists a new, empty cart
func (r *GormCartRepository) Create(ctx context.Context, c *cart.Cart) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(models.CartModelFromDomain(c)).Error
}

// SaveItem creates or updates a cart item
func (r *GormCartRepository) SaveItem(ctx context.Context, item *cart.CartItem) error {
	return r.db.WithContext(ctx).Save(models.CartItemModelFromDomain(item)).Error
}

// DeleteItem deletes a single item of a cart
func (r *GormCartRepository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CartItemModel{}, "cart_id = ? AND id = ?", cartID, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a cart together with its items
func (r *GormCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", id).Delete(&models.CartItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.CartModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// CountItems counts the items of a cart, returning ErrNotFound when the cart is missing
func (r *GormCartRepository) CountItems(ctx context.Context, id uuid.UUID) (int64, error) {
	db := r.db.WithContext(ctx)

	var carts int64
	if err := db.Model(&models.CartModel{}).Where("id = ?", id).Count(&carts).Error; err != nil {
		return 0, err
	}
	if carts == 0 {
		return 0, shared.ErrNotFound
	}

	var items int64
	if err := db.Model(&models.CartItemModel{}).Where("cart_id = ?", id).Count(&items).Error; err != nil {
		return 0, err
	}
	return items, nil
}

// Ensure GormCartRepository implements CartRepository
var _ cart.CartRepository = (*GormCartRepository)(nil)
