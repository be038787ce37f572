package persistence

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBuyerRepository implements BuyerRepository using GORM
type GormBuyerRepository struct {
	db *gorm.DB
}

// NewGormBuyerRepository creates a new GormBuyerRepository
func NewGormBuyerRepository(db *gorm.DB) *GormBuyerRepository {
	return &GormBuyerRepository{db: db}
}

// FindByID finds a buyer by its ID
func (r *GormBuyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Buyer, error) {
	var buyer partner.Buyer
	if err := r.db.WithContext(ctx).First(&buyer, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &buyer, nil
}

// FindByUserID finds the buyer profile of a user
func (r *GormBuyerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Buyer, error) {
	var buyer partner.Buyer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&buyer).Error; err != nil {
		return nil, notFound(err)
	}
	return &buyer, nil
}

// FindAll finds buyers matching the filter
func (r *GormBuyerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Buyer, error) {
	var buyers []partner.Buyer
	query := orderAndPage(r.applyFilter(r.db.WithContext(ctx), filter), filter, BuyerSortFields, "created_at")
	if err := query.Find(&buyers).Error; err != nil {
		return nil, err
	}
	return buyers, nil
}

// Count counts buyers matching the filter
func (r *GormBuyerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&partner.Buyer{}), filter).Count(&count).Error
	return count, err
}

// Save creates or updates a buyer
func (r *GormBuyerRepository) Save(ctx context.Context, buyer *partner.Buyer) error {
	return r.db.WithContext(ctx).Save(buyer).Error
}

// Delete removes a buyer with their orders, order items and sales
func (r *GormBuyerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cleanup := []string{
			"DELETE FROM sales WHERE order_id IN (SELECT id FROM orders WHERE buyer_id = ?)",
			"DELETE FROM order_items WHERE order_id IN (SELECT id FROM orders WHERE buyer_id = ?)",
			"DELETE FROM orders WHERE buyer_id = ?",
		}
		for _, stmt := range cleanup {
			if err := tx.Exec(stmt, id).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&partner.Buyer{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormBuyerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where("("+ilike("name")+" OR "+ilike("email")+" OR "+ilike("tel")+")", p, p, p)
	}
	for key, value := range filter.Filters {
		switch key {
		case "has_user":
			if value == true {
				query = query.Where("user_id IS NOT NULL")
			} else {
				query = query.Where("user_id IS NULL")
			}
		}
	}
	return query
}

var _ partner.BuyerRepository = (*GormBuyerRepository)(nil)
