package catalog

import (
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductFeature is the value of one category feature for a product
type ProductFeature struct {
	shared.BaseEntity
	ProductID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryFeatureID uuid.UUID `gorm:"type:uuid;not null;index"`
	Feature           string    `gorm:"type:text;not null"`
	// FeatureName is loaded from category_features, never written
	FeatureName string `gorm:"->;-:migration"`
}

// TableName returns the table name for GORM
func (ProductFeature) TableName() string {
	return "product_features"
}

// NewProductFeature attaches a feature value to a product.
// The feature definition must belong to the product's category.
func NewProductFeature(product *Product, def *CategoryFeature, value string) (*ProductFeature, error) {
	if product == nil || def == nil {
		return nil, shared.ErrInvalidInput
	}
	if def.CategoryID != product.CategoryID {
		return nil, shared.NewDomainError("FEATURE_CATEGORY_MISMATCH", "Feature does not belong to the product category")
	}
	if value == "" {
		return nil, shared.NewDomainError("INVALID_FEATURE", "Feature value cannot be empty")
	}
	return &ProductFeature{
		BaseEntity:        shared.NewBaseEntity(),
		ProductID:         product.ID,
		CategoryFeatureID: def.ID,
		Feature:           value,
		FeatureName:       def.FeatureName,
	}, nil
}

// ProductImage references an image object stored for a product
type ProductImage struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Image     string    `gorm:"type:varchar(500);not null"`
}

// TableName returns the table name for GORM
func (ProductImage) TableName() string {
	return "product_images"
}

// NewProductImage registers an uploaded image object key
func NewProductImage(productID uuid.UUID, key string) (*ProductImage, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is required")
	}
	if key == "" || len(key) > 500 {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image key must be 1-500 characters")
	}
	return &ProductImage{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Image:      key,
	}, nil
}
