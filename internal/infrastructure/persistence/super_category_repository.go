package persistence

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSuperCategoryRepository implements SuperCategoryRepository using GORM
type GormSuperCategoryRepository struct {
	db *gorm.DB
}

// NewGormSuperCategoryRepository creates a new GormSuperCategoryRepository
func NewGormSuperCategoryRepository(db *gorm.DB) *GormSuperCategoryRepository {
	return &GormSuperCategoryRepository{db: db}
}

// FindByID finds a super category by its ID
func (r *GormSuperCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.SuperCategory, error) {
	var sc catalog.SuperCategory
	if err := r.db.WithContext(ctx).First(&sc, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &sc, nil
}

// FindAll returns all super categories ordered by name
func (r *GormSuperCategoryRepository) FindAll(ctx context.Context) ([]catalog.SuperCategory, error) {
	var items []catalog.SuperCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a super category
func (r *GormSuperCategoryRepository) Save(ctx context.Context, sc *catalog.SuperCategory) error {
	return r.db.WithContext(ctx).Save(sc).Error
}

// Delete removes a super category
func (r *GormSuperCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.SuperCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}
	return nil
}

// HasCategories reports whether categories still reference the super category
func (r *GormSuperCategoryRepository) HasCategories(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Category{}).
		Where("super_category_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

var _ catalog.SuperCategoryRepository = (*GormSuperCategoryRepository)(nil)
