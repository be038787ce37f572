package persistence

import (
	"context"
	"time"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// productSupplier is the link row between products and suppliers
type productSupplier struct {
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (productSupplier) TableName() string {
	return "product_suppliers"
}

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

// FindBySlug finds a product by its slug
func (r *GormProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&product).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

// FindByIDs loads the given products. Missing ids are skipped.
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindAll returns products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := orderAndPage(r.applyFilter(r.db.WithContext(ctx), filter), filter, ProductSortFields, "created_at")
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count counts products matching the filter
func (r *GormProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Product{}), filter).Count(&count).Error
	return count, err
}

// ExistsBySlug reports whether another product already uses slug
func (r *GormProductRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Product{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// BrandNames returns the sorted distinct brand names used in a category
func (r *GormProductRepository) BrandNames(ctx context.Context, categoryID uuid.UUID) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("products").
		Joins("JOIN brands ON brands.id = products.brand_id").
		Where("products.category_id = ?", categoryID).
		Distinct().
		Order("brands.name ASC").
		Pluck("brands.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes a product with its features, images, reviews and supplier links
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cleanup := []string{
			"DELETE FROM likes WHERE review_id IN (SELECT id FROM reviews WHERE product_id = ?)",
			"DELETE FROM reviews WHERE product_id = ?",
			"DELETE FROM product_features WHERE product_id = ?",
			"DELETE FROM product_images WHERE product_id = ?",
			"DELETE FROM product_suppliers WHERE product_id = ?",
		}
		for _, stmt := range cleanup {
			if err := tx.Exec(stmt, id).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&catalog.Product{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// RecordAccess increments the view counter in place
func (r *GormProductRepository) RecordAccess(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"access_number":  gorm.Expr("access_number + 1"),
			"last_access_at": at,
		}).Error
}

// SetSold flips the sold-out flag
func (r *GormProductRepository) SetSold(ctx context.Context, id uuid.UUID, sold bool) error {
	return r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"sold": sold, "updated_at": time.Now()}).Error
}

// ReplaceSuppliers rewrites the product's supplier links
func (r *GormProductRepository) ReplaceSuppliers(ctx context.Context, productID uuid.UUID, supplierIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&productSupplier{}).Error; err != nil {
			return err
		}
		if len(supplierIDs) == 0 {
			return nil
		}
		links := make([]productSupplier, 0, len(supplierIDs))
		for _, sid := range supplierIDs {
			links = append(links, productSupplier{ProductID: productID, SupplierID: sid})
		}
		return tx.Create(&links).Error
	})
}

// FindSupplierIDs lists the suppliers linked to a product
func (r *GormProductRepository) FindSupplierIDs(ctx context.Context, productID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&productSupplier{}).
		Where("product_id = ?", productID).
		Pluck("supplier_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *GormProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("("+ilike("name")+" OR "+ilike("model")+" OR "+ilike("vendor_code")+")",
			pattern, pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "category_id":
			query = query.Where("category_id = ?", value)
		case "brand_id":
			query = query.Where("brand_id = ?", value)
		case "brand_names":
			if names, ok := value.([]string); ok && len(names) > 0 {
				query = query.Where("brand_id IN (SELECT id FROM brands WHERE name IN ?)", names)
			}
		case "sold":
			query = query.Where("sold = ?", value)
		case "min_price":
			query = query.Where("price >= ?", value)
		case "max_price":
			query = query.Where("price <= ?", value)
		case "name_contains":
			if s, ok := value.(string); ok && s != "" {
				query = query.Where(ilike("name"), likePattern(s))
			}
		}
	}
	return query
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
