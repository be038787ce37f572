package mockrepo

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// OrderRepository mocks trade.OrderRepository
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) order(args mock.Arguments) (*trade.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	return m.order(m.Called(ctx, id))
}

func (m *OrderRepository) FindPendingByBuyer(ctx context.Context, buyerID uuid.UUID) (*trade.Order, error) {
	return m.order(m.Called(ctx, buyerID))
}

func (m *OrderRepository) FindLastByBuyer(ctx context.Context, buyerID uuid.UUID) (*trade.Order, error) {
	return m.order(m.Called(ctx, buyerID))
}

func (m *OrderRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]trade.Order, error) {
	args := m.Called(ctx, buyerID)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *OrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *OrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) Save(ctx context.Context, order *trade.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *OrderRepository) FindItem(ctx context.Context, orderID, productID uuid.UUID) (*trade.OrderItem, error) {
	args := m.Called(ctx, orderID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.OrderItem), args.Error(1)
}

func (m *OrderRepository) SaveItem(ctx context.Context, item *trade.OrderItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *OrderRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *OrderRepository) DeleteItems(ctx context.Context, orderID uuid.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *OrderRepository) CreateItems(ctx context.Context, items []trade.OrderItem) error {
	return m.Called(ctx, items).Error(0)
}

// SaleRepository mocks trade.SaleRepository
type SaleRepository struct {
	mock.Mock
}

func (m *SaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Sale), args.Error(1)
}

func (m *SaleRepository) FindByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID]trade.Sale, error) {
	args := m.Called(ctx, orderIDs)
	return args.Get(0).(map[uuid.UUID]trade.Sale), args.Error(1)
}

func (m *SaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Sale, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.Sale), args.Error(1)
}

func (m *SaleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SaleRepository) Save(ctx context.Context, sale *trade.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

var (
	_ trade.OrderRepository = (*OrderRepository)(nil)
	_ trade.SaleRepository  = (*SaleRepository)(nil)
)
