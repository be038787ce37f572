package persistence

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBrandRepository implements BrandRepository using GORM
type GormBrandRepository struct {
	db *gorm.DB
}

// NewGormBrandRepository creates a new GormBrandRepository
func NewGormBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

// FindByID finds a brand by its ID
func (r *GormBrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Brand, error) {
	var brand catalog.Brand
	if err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &brand, nil
}

// FindByIDs loads several brands at once
func (r *GormBrandRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Brand, error) {
	if len(ids) == 0 {
		return []catalog.Brand{}, nil
	}
	var brands []catalog.Brand
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// FindPage returns a page of brands and the total count
func (r *GormBrandRepository) FindPage(ctx context.Context, filter shared.Filter) ([]catalog.Brand, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Brand{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var brands []catalog.Brand
	query := orderAndPage(r.applyFilter(r.db.WithContext(ctx), filter), filter, CatalogSortFields, "name")
	if err := query.Find(&brands).Error; err != nil {
		return nil, 0, err
	}
	return brands, total, nil
}

// ExistsBySlug reports whether another brand already uses slug
func (r *GormBrandRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Brand{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a brand
func (r *GormBrandRepository) Save(ctx context.Context, brand *catalog.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

// Delete removes a brand and detaches its products
func (r *GormBrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&catalog.Product{}).Where("brand_id = ?", id).
			Update("brand_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&catalog.Brand{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormBrandRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where(ilike("name"), likePattern(filter.Search))
	}
	return query
}

var _ catalog.BrandRepository = (*GormBrandRepository)(nil)
