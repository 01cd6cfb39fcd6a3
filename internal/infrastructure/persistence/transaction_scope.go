package persistence

import (
	"context"

	appcart "github.com/storefront/backend/internal/application/cart"
	apporder "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/customer"
	"github.com/storefront/backend/internal/domain/order"
	"gorm.io/gorm"
)

// GormOrderTransactionScope implements the order TransactionScope using GORM transactions.
// It provides atomic execution of the cart to order conversion.
type GormOrderTransactionScope struct {
	db *gorm.DB
}

// NewGormOrderTransactionScope creates a new GormOrderTransactionScope.
func NewGormOrderTransactionScope(db *gorm.DB) *GormOrderTransactionScope {
	return &GormOrderTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormOrderTransactionScope) Execute(ctx context.Context, fn func(repos apporder.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// GormCartTransactionScope implements the cart TransactionScope using GORM transactions.
type GormCartTransactionScope struct {
	db *gorm.DB
}

// NewGormCartTransactionScope creates a new GormCartTransactionScope.
func NewGormCartTransactionScope(db *gorm.DB) *GormCartTransactionScope {
	return &GormCartTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormCartTransactionScope) Execute(ctx context.Context, fn func(repos appcart.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// CartRepo returns the cart repository scoped to the current transaction.
func (r *gormTransactionalRepositories) CartRepo() cart.CartRepository {
	return NewGormCartRepository(r.tx)
}

// OrderRepo returns the order repository scoped to the current transaction.
func (r *gormTransactionalRepositories) OrderRepo() order.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// CustomerRepo returns the customer repository scoped to the current transaction.
func (r *gormTransactionalRepositories) CustomerRepo() customer.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

// ProductRepo returns the product repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

var (
	_ apporder.TransactionScope          = (*GormOrderTransactionScope)(nil)
	_ appcart.TransactionScope           = (*GormCartTransactionScope)(nil)
	_ apporder.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
	_ appcart.TransactionalRepositories  = (*gormTransactionalRepositories)(nil)
)
