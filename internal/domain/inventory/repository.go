package inventory

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// IncomeRepository defines persistence for incomes.
// Filter keys: "product_id", "supplier_id".
type IncomeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Income, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Income, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, income *Income) error
}

// StockRepository defines persistence for stock lots
type StockRepository interface {
	// FindByIncomeIDForUpdate returns the lot opened by an income, locking
	// the row against concurrent checkouts
	FindByIncomeIDForUpdate(ctx context.Context, incomeID uuid.UUID) (*Stock, error)
	// FindByProductForUpdate returns the product lots oldest first,
	// locking the rows for the rest of the transaction
	FindByProductForUpdate(ctx context.Context, productID uuid.UUID) ([]Stock, error)
	// AvailableQuantities sums lot quantities per product
	AvailableQuantities(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]int, error)
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	// FindAll lists lots; filter keys "product_id", "supplier_id"
	FindAll(ctx context.Context, filter shared.Filter) ([]Stock, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Summary(ctx context.Context) ([]ProductStock, error)
	Save(ctx context.Context, stock *Stock) error
	Delete(ctx context.Context, id uuid.UUID) error
}
