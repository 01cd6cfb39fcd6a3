package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/customer"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByUserID finds the customer linked to a user identity
func (r *GormCustomerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*customer.Customer, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *GormCustomerRepository) findOne(ctx context.Context, query string, arg any) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindOrCreateByUserID returns the customer of a user, creating a bronze customer on first access.
// A concurrent creation for the same user is absorbed by the unique user_id index.
func (r *GormCustomerRepository) FindOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*customer.Customer, error) {
	existing, err := r.FindByUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	c, err := customer.NewCustomer(userID)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(models.CustomerModelFromDomain(c))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return r.FindByUserID(ctx, userID)
	}
	return c, nil
}

// FindAll finds all customers matching the filter
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customer.Customer, error) {
	var customerModels []models.CustomerModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CustomerModel{}), filter)
	query = paginate(query.Order(orderClause(filter, CustomerSortFields, "created_at", "ASC")), filter)

	if err := query.Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]customer.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = *customerModels[i].ToDomain()
	}
	return customers, nil
}

// Count counts customers matching the filter
func (r *GormCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CustomerModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	return r.db.WithContext(ctx).Save(models.CustomerModelFromDomain(c)).Error
}

// ExistsByID checks if a customer exists
func (r *GormCustomerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCustomerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(phone) LIKE ?", likePattern(filter.Search))
	}
	for key, value := range filter.Filters {
		switch key {
		case "membership":
			query = query.Where("membership = ?", value)
		}
	}
	return query
}

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindByCustomer lists addresses of a customer
func (r *GormAddressRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]customer.Address, error) {
	var addressModels []models.AddressModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("city, street").
		Find(&addressModels).Error; err != nil {
		return nil, err
	}

	addresses := make([]customer.Address, len(addressModels))
	for i := range addressModels {
		addresses[i] = *addressModels[i].ToDomain()
	}
	return addresses, nil
}

// Create inserts an address
func (r *GormAddressRepository) Create(ctx context.Context, address *customer.Address) error {
	return r.db.WithContext(ctx).Create(models.AddressModelFromDomain(address)).Error
}

// Delete deletes an address owned by the customer
func (r *GormAddressRepository) Delete(ctx context.Context, customerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "customer_id = ? AND id = ?", customerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure repositories implement their interfaces
var (
	_ customer.CustomerRepository = (*GormCustomerRepository)(nil)
	_ customer.AddressRepository  = (*GormAddressRepository)(nil)
)
