package trade

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/inventory"
	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/trade"
)

// TransactionScope runs a unit of work against repositories sharing one database transaction
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories cart and checkout writes need
type TransactionalRepositories interface {
	OrderRepo() trade.OrderRepository
	SaleRepo() trade.SaleRepository
	StockRepo() inventory.StockRepository
	ProductRepo() catalog.ProductRepository
	BuyerRepo() partner.BuyerRepository
}

// NoOpTransactionScope executes without a transaction. Used in tests.
type NoOpTransactionScope struct {
	Orders   trade.OrderRepository
	Sales    trade.SaleRepository
	Stock    inventory.StockRepository
	Products catalog.ProductRepository
	Buyers   partner.BuyerRepository
}

func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) OrderRepo() trade.OrderRepository       { return s.Orders }
func (s *NoOpTransactionScope) SaleRepo() trade.SaleRepository         { return s.Sales }
func (s *NoOpTransactionScope) StockRepo() inventory.StockRepository   { return s.Stock }
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository { return s.Products }
func (s *NoOpTransactionScope) BuyerRepo() partner.BuyerRepository     { return s.Buyers }

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
