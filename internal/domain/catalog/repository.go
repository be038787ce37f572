package catalog

import (
	"context"
	"time"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// SuperCategoryRepository defines persistence for super categories
type SuperCategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SuperCategory, error)
	// FindAll returns every super category ordered by name
	FindAll(ctx context.Context) ([]SuperCategory, error)
	Save(ctx context.Context, sc *SuperCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	// HasCategories reports whether any category references the super category
	HasCategories(ctx context.Context, id uuid.UUID) (bool, error)
}

// CategoryRepository defines persistence for categories and their feature definitions
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	// FindAll returns every category with its super category preloaded
	FindAll(ctx context.Context) ([]Category, error)
	// FindPage lists categories matching the filter ("super_category_id")
	FindPage(ctx context.Context, filter shared.Filter) ([]Category, int64, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	HasProducts(ctx context.Context, id uuid.UUID) (bool, error)

	FindFeatures(ctx context.Context, categoryID uuid.UUID) ([]CategoryFeature, error)
	FindFeatureByID(ctx context.Context, id uuid.UUID) (*CategoryFeature, error)
	SaveFeature(ctx context.Context, feature *CategoryFeature) error
	DeleteFeature(ctx context.Context, id uuid.UUID) error
}

// BrandRepository defines persistence for brands
type BrandRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Brand, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Brand, error)
	FindPage(ctx context.Context, filter shared.Filter) ([]Brand, int64, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
	Save(ctx context.Context, brand *Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines persistence for products.
//
// Supported filter keys: "category_id", "brand_id", "brand_names" ([]string),
// "sold" (bool), "min_price", "max_price" (decimal.Decimal), "name_contains".
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
	// BrandNames returns the distinct brand names of products in a category
	BrandNames(ctx context.Context, categoryID uuid.UUID) ([]string, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	// RecordAccess atomically increments the view counter
	RecordAccess(ctx context.Context, id uuid.UUID, at time.Time) error
	SetSold(ctx context.Context, id uuid.UUID, sold bool) error
	// ReplaceSuppliers rewrites the product/supplier links
	ReplaceSuppliers(ctx context.Context, productID uuid.UUID, supplierIDs []uuid.UUID) error
	FindSupplierIDs(ctx context.Context, productID uuid.UUID) ([]uuid.UUID, error)
}

// ProductFeatureRepository defines persistence for product feature values
type ProductFeatureRepository interface {
	// FindByProduct returns feature values with FeatureName populated
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]ProductFeature, error)
	ReplaceForProduct(ctx context.Context, productID uuid.UUID, features []ProductFeature) error
}

// ProductImageRepository defines persistence for product images
type ProductImageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductImage, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]ProductImage, error)
	// FirstImages maps each product to its earliest image key
	FirstImages(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]string, error)
	Save(ctx context.Context, image *ProductImage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PageRepository defines persistence for static page content
type PageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PageData, error)
	FindByName(ctx context.Context, name string) (*PageData, error)
	FindAll(ctx context.Context) ([]PageData, error)
	Save(ctx context.Context, page *PageData) error
	Delete(ctx context.Context, id uuid.UUID) error
}
