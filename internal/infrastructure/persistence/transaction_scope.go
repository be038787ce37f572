package persistence

import (
	"context"

	appidentity "github.com/amunitsiia/shop/internal/application/identity"
	appinv "github.com/amunitsiia/shop/internal/application/inventory"
	appreview "github.com/amunitsiia/shop/internal/application/review"
	apptrade "github.com/amunitsiia/shop/internal/application/trade"
	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/identity"
	"github.com/amunitsiia/shop/internal/domain/inventory"
	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/review"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"gorm.io/gorm"
)

// txRepositories hands out repositories bound to one open transaction
type txRepositories struct {
	tx *gorm.DB
}

func (r *txRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *txRepositories) IncomeRepo() inventory.IncomeRepository {
	return NewGormIncomeRepository(r.tx)
}

func (r *txRepositories) StockRepo() inventory.StockRepository {
	return NewGormStockRepository(r.tx)
}

func (r *txRepositories) OrderRepo() trade.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

func (r *txRepositories) SaleRepo() trade.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

func (r *txRepositories) BuyerRepo() partner.BuyerRepository {
	return NewGormBuyerRepository(r.tx)
}

func (r *txRepositories) UserRepo() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

func (r *txRepositories) ReviewRepo() review.ReviewRepository {
	return NewGormReviewRepository(r.tx)
}

func (r *txRepositories) LikeRepo() review.LikeRepository {
	return NewGormLikeRepository(r.tx)
}

// InventoryTransactionScope runs income and stock changes atomically
type InventoryTransactionScope struct {
	db *gorm.DB
}

// NewInventoryTransactionScope creates a new InventoryTransactionScope
func NewInventoryTransactionScope(db *gorm.DB) *InventoryTransactionScope {
	return &InventoryTransactionScope{db: db}
}

// Execute runs fn in a transaction, rolling back when it returns an error
func (s *InventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositories{tx: tx})
	})
}

// CheckoutTransactionScope runs order completion, sale and stock consumption atomically
type CheckoutTransactionScope struct {
	db *gorm.DB
}

// NewCheckoutTransactionScope creates a new CheckoutTransactionScope
func NewCheckoutTransactionScope(db *gorm.DB) *CheckoutTransactionScope {
	return &CheckoutTransactionScope{db: db}
}

// Execute runs fn in a transaction, rolling back when it returns an error
func (s *CheckoutTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositories{tx: tx})
	})
}

// ReviewTransactionScope keeps like rows and review counters consistent
type ReviewTransactionScope struct {
	db *gorm.DB
}

// NewReviewTransactionScope creates a new ReviewTransactionScope
func NewReviewTransactionScope(db *gorm.DB) *ReviewTransactionScope {
	return &ReviewTransactionScope{db: db}
}

// Execute runs fn in a transaction, rolling back when it returns an error
func (s *ReviewTransactionScope) Execute(ctx context.Context, fn func(repos appreview.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositories{tx: tx})
	})
}

// RegistrationTransactionScope creates a user and its buyer profile atomically
type RegistrationTransactionScope struct {
	db *gorm.DB
}

// NewRegistrationTransactionScope creates a new RegistrationTransactionScope
func NewRegistrationTransactionScope(db *gorm.DB) *RegistrationTransactionScope {
	return &RegistrationTransactionScope{db: db}
}

// Execute runs fn in a transaction, rolling back when it returns an error
func (s *RegistrationTransactionScope) Execute(ctx context.Context, fn func(repos appidentity.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositories{tx: tx})
	})
}

var (
	_ appinv.TransactionScope      = (*InventoryTransactionScope)(nil)
	_ apptrade.TransactionScope    = (*CheckoutTransactionScope)(nil)
	_ appreview.TransactionScope   = (*ReviewTransactionScope)(nil)
	_ appidentity.TransactionScope = (*RegistrationTransactionScope)(nil)

	_ appinv.TransactionalRepositories      = (*txRepositories)(nil)
	_ apptrade.TransactionalRepositories    = (*txRepositories)(nil)
	_ appreview.TransactionalRepositories   = (*txRepositories)(nil)
	_ appidentity.TransactionalRepositories = (*txRepositories)(nil)
)
