package persistence

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("added_at ASC")
	})
}

// FindByID loads an order with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.withItems(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

// FindPendingByBuyer returns the buyer's open order
func (r *GormOrderRepository) FindPendingByBuyer(ctx context.Context, buyerID uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.withItems(ctx).
		Where("buyer_id = ? AND complete = ?", buyerID, false).
		Order("created_at DESC").
		First(&order).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

// FindLastByBuyer returns the buyer's most recent order
func (r *GormOrderRepository) FindLastByBuyer(ctx context.Context, buyerID uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.withItems(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		First(&order).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

// FindByBuyer returns every order of a buyer, newest first
func (r *GormOrderRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]trade.Order, error) {
	var orders []trade.Order
	if err := r.withItems(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindAll lists orders matching the filter with items
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	var orders []trade.Order
	query := orderAndPage(r.applyFilter(r.withItems(ctx), filter), filter, OrderSortFields, "created_at")
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&trade.Order{}), filter).Count(&count).Error
	return count, err
}

// Save creates or updates the order row. Items are persisted separately.
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Save(order).Error
}

// Delete removes an order with its items and sales
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&trade.Sale{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&trade.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&trade.Order{}, "id = ?", id).Error
	})
}

// FindItem finds the line of a product within an order
func (r *GormOrderRepository) FindItem(ctx context.Context, orderID, productID uuid.UUID) (*trade.OrderItem, error) {
	var item trade.OrderItem
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// SaveItem creates or updates an order line
func (r *GormOrderRepository) SaveItem(ctx context.Context, item *trade.OrderItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteItem removes a single order line
func (r *GormOrderRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&trade.OrderItem{}, "id = ?", id).Error
}

// DeleteItems empties an order
func (r *GormOrderRepository) DeleteItems(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&trade.OrderItem{}).Error
}

// CreateItems inserts order lines in one batch
func (r *GormOrderRepository) CreateItems(ctx context.Context, items []trade.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "complete":
			query = query.Where("complete = ?", value)
		case "buyer_id":
			query = query.Where("buyer_id = ?", value)
		}
	}
	return query
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)
