package mockrepo

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/inventory"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// IncomeRepository mocks inventory.IncomeRepository
type IncomeRepository struct {
	mock.Mock
}

func (m *IncomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Income, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Income), args.Error(1)
}

func (m *IncomeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Income, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Income), args.Error(1)
}

func (m *IncomeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *IncomeRepository) Save(ctx context.Context, income *inventory.Income) error {
	return m.Called(ctx, income).Error(0)
}

// StockRepository mocks inventory.StockRepository
type StockRepository struct {
	mock.Mock
}

func (m *StockRepository) FindByIncomeIDForUpdate(ctx context.Context, incomeID uuid.UUID) (*inventory.Stock, error) {
	args := m.Called(ctx, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Stock), args.Error(1)
}

func (m *StockRepository) FindByProductForUpdate(ctx context.Context, productID uuid.UUID) ([]inventory.Stock, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]inventory.Stock), args.Error(1)
}

func (m *StockRepository) AvailableQuantities(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, productIDs)
	return args.Get(0).(map[uuid.UUID]int), args.Error(1)
}

func (m *StockRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Stock, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Stock), args.Error(1)
}

func (m *StockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StockRepository) Summary(ctx context.Context) ([]inventory.ProductStock, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inventory.ProductStock), args.Error(1)
}

func (m *StockRepository) Save(ctx context.Context, stock *inventory.Stock) error {
	return m.Called(ctx, stock).Error(0)
}

func (m *StockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

var (
	_ inventory.IncomeRepository = (*IncomeRepository)(nil)
	_ inventory.StockRepository  = (*StockRepository)(nil)
)
