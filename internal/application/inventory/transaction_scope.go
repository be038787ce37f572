package inventory

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/inventory"
)

// TransactionScope runs a unit of work against repositories sharing one database transaction.
// An error returned from fn rolls the transaction back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories an inventory unit of work needs
type TransactionalRepositories interface {
	IncomeRepo() inventory.IncomeRepository
	StockRepo() inventory.StockRepository
	ProductRepo() catalog.ProductRepository
}

// NoOpTransactionScope executes without a transaction. Used in tests.
type NoOpTransactionScope struct {
	incomeRepo  inventory.IncomeRepository
	stockRepo   inventory.StockRepository
	productRepo catalog.ProductRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	incomeRepo inventory.IncomeRepository,
	stockRepo inventory.StockRepository,
	productRepo catalog.ProductRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{incomeRepo: incomeRepo, stockRepo: stockRepo, productRepo: productRepo}
}

func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) IncomeRepo() inventory.IncomeRepository { return s.incomeRepo }
func (s *NoOpTransactionScope) StockRepo() inventory.StockRepository   { return s.stockRepo }
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository { return s.productRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
