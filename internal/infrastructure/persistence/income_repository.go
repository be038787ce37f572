package persistence

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/inventory"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormIncomeRepository implements IncomeRepository using GORM
type GormIncomeRepository struct {
	db *gorm.DB
}

// NewGormIncomeRepository creates a new GormIncomeRepository
func NewGormIncomeRepository(db *gorm.DB) *GormIncomeRepository {
	return &GormIncomeRepository{db: db}
}

// FindByID finds an income by its ID
func (r *GormIncomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Income, error) {
	var income inventory.Income
	if err := r.db.WithContext(ctx).First(&income, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &income, nil
}

// FindAll lists incomes, newest delivery first unless ordered otherwise
func (r *GormIncomeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Income, error) {
	var incomes []inventory.Income
	query := orderAndPage(r.applyFilter(r.db.WithContext(ctx), filter), filter, IncomeSortFields, "income_date")
	if err := query.Find(&incomes).Error; err != nil {
		return nil, err
	}
	return incomes, nil
}

// Count counts incomes matching the filter
func (r *GormIncomeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Income{}), filter).Count(&count).Error
	return count, err
}

// Save creates or updates an income
func (r *GormIncomeRepository) Save(ctx context.Context, income *inventory.Income) error {
	return r.db.WithContext(ctx).Save(income).Error
}

func (r *GormIncomeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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

var _ inventory.IncomeRepository = (*GormIncomeRepository)(nil)
