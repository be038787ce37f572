package persistence

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/inventory"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// FindByIncomeIDForUpdate finds the lot opened by an income and locks it.
// Must run inside a transaction for the lock to be held.
func (r *GormStockRepository) FindByIncomeIDForUpdate(ctx context.Context, incomeID uuid.UUID) (*inventory.Stock, error) {
	var stock inventory.Stock
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("income_id = ?", incomeID).
		First(&stock).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &stock, nil
}

// FindByProductForUpdate returns the product's lots oldest first and locks them.
// Must run inside a transaction for the lock to be held.
func (r *GormStockRepository) FindByProductForUpdate(ctx context.Context, productID uuid.UUID) ([]inventory.Stock, error) {
	var lots []inventory.Stock
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ?", productID).
		Order("created_at ASC, id ASC").
		Find(&lots).Error
	if err != nil {
		return nil, err
	}
	return lots, nil
}

// AvailableQuantities sums lot quantities for each product. Products without lots map to zero.
func (r *GormStockRepository) AvailableQuantities(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	result := make(map[uuid.UUID]int, len(productIDs))
	for _, id := range productIDs {
		result[id] = 0
	}
	if len(productIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		ProductID uuid.UUID
		Total     int
	}
	err := r.db.WithContext(ctx).Model(&inventory.Stock{}).
		Select("product_id, COALESCE(SUM(quantity), 0) AS total").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ProductID] = row.Total
	}
	return result, nil
}

// CountByProduct counts the remaining lots of a product
func (r *GormStockRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&inventory.Stock{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

// FindAll lists stock lots matching the filter
func (r *GormStockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Stock, error) {
	var lots []inventory.Stock
	query := orderAndPage(r.applyFilter(r.db.WithContext(ctx), filter), filter, StockSortFields, "created_at")
	if err := query.Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

// Count counts stock lots matching the filter
func (r *GormStockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Stock{}), filter).Count(&count).Error
	return count, err
}

// Summary aggregates lots per product
func (r *GormStockRepository) Summary(ctx context.Context) ([]inventory.ProductStock, error) {
	var rows []struct {
		ProductID  uuid.UUID
		Quantity   int
		PriceTotal decimal.Decimal
		Lots       int
	}
	err := r.db.WithContext(ctx).Model(&inventory.Stock{}).
		Select("product_id, SUM(quantity) AS quantity, SUM(price * quantity) AS price_total, COUNT(*) AS lots").
		Group("product_id").
		Order("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := make([]inventory.ProductStock, 0, len(rows))
	for _, row := range rows {
		summary = append(summary, inventory.ProductStock{
			ProductID:  row.ProductID,
			Quantity:   row.Quantity,
			PriceTotal: row.PriceTotal.Round(2),
			Lots:       row.Lots,
		})
	}
	return summary, nil
}

// Save creates or updates a stock lot
func (r *GormStockRepository) Save(ctx context.Context, stock *inventory.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

// Delete removes a stock lot
func (r *GormStockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&inventory.Stock{}, "id = ?", id).Error
}

func (r *GormStockRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		}
	}
	return query
}

var _ inventory.StockRepository = (*GormStockRepository)(nil)
