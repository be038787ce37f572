package persistence

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID with the super category preloaded
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).Preload("SuperCategory").First(&category, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

// FindBySlug finds a category by its slug
func (r *GormCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).Preload("SuperCategory").
		Where("slug = ?", slug).
		First(&category).Error; err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

// FindAll returns all categories ordered by creation, oldest first
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	var items []catalog.Category
	if err := r.db.WithContext(ctx).Preload("SuperCategory").
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindPage returns a filtered page of categories and the total count
func (r *GormCategoryRepository) FindPage(ctx context.Context, filter shared.Filter) ([]catalog.Category, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Category{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []catalog.Category
	query := r.applyFilter(r.db.WithContext(ctx).Preload("SuperCategory"), filter)
	if err := orderAndPage(query, filter, CatalogSortFields, "created_at").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ExistsBySlug reports whether another category already uses slug
func (r *GormCategoryRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Category{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Omit("SuperCategory").Save(category).Error
}

// Delete removes a category together with its feature definitions
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&catalog.CategoryFeature{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&catalog.Category{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// HasProducts reports whether products still belong to the category
func (r *GormCategoryRepository) HasProducts(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Product{}).Where("category_id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindFeatures lists the feature definitions of a category
func (r *GormCategoryRepository) FindFeatures(ctx context.Context, categoryID uuid.UUID) ([]catalog.CategoryFeature, error) {
	var features []catalog.CategoryFeature
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("feature_name ASC").
		Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

// FindFeatureByID finds a feature definition
func (r *GormCategoryRepository) FindFeatureByID(ctx context.Context, id uuid.UUID) (*catalog.CategoryFeature, error) {
	var feature catalog.CategoryFeature
	if err := r.db.WithContext(ctx).First(&feature, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &feature, nil
}

// SaveFeature creates or updates a feature definition
func (r *GormCategoryRepository) SaveFeature(ctx context.Context, feature *catalog.CategoryFeature) error {
	return r.db.WithContext(ctx).Save(feature).Error
}

// DeleteFeature removes a feature definition and the product values using it
func (r *GormCategoryRepository) DeleteFeature(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_feature_id = ?", id).Delete(&catalog.ProductFeature{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&catalog.CategoryFeature{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormCategoryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where(ilike("name"), likePattern(filter.Search))
	}
	for key, value := range filter.Filters {
		switch key {
		case "super_category_id":
			query = query.Where("super_category_id = ?", value)
		}
	}
	return query
}

var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
