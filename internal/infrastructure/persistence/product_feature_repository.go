package persistence

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductFeatureRepository implements ProductFeatureRepository using GORM
type GormProductFeatureRepository struct {
	db *gorm.DB
}

// NewGormProductFeatureRepository creates a new GormProductFeatureRepository
func NewGormProductFeatureRepository(db *gorm.DB) *GormProductFeatureRepository {
	return &GormProductFeatureRepository{db: db}
}

// FindByProduct returns the product's feature values with their names
func (r *GormProductFeatureRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductFeature, error) {
	var features []catalog.ProductFeature
	err := r.db.WithContext(ctx).
		Select("product_features.*, category_features.feature_name AS feature_name").
		Joins("JOIN category_features ON category_features.id = product_features.category_feature_id").
		Where("product_features.product_id = ?", productID).
		Order("category_features.feature_name ASC").
		Find(&features).Error
	if err != nil {
		return nil, err
	}
	return features, nil
}

// ReplaceForProduct swaps all feature values of a product
func (r *GormProductFeatureRepository) ReplaceForProduct(ctx context.Context, productID uuid.UUID, features []catalog.ProductFeature) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&catalog.ProductFeature{}).Error; err != nil {
			return err
		}
		if len(features) == 0 {
			return nil
		}
		return tx.Create(&features).Error
	})
}

var _ catalog.ProductFeatureRepository = (*GormProductFeatureRepository)(nil)

// GormProductImageRepository implements ProductImageRepository using GORM
type GormProductImageRepository struct {
	db *gorm.DB
}

// NewGormProductImageRepository creates a new GormProductImageRepository
func NewGormProductImageRepository(db *gorm.DB) *GormProductImageRepository {
	return &GormProductImageRepository{db: db}
}

func (r *GormProductImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductImage, error) {
	var img catalog.ProductImage
	if err := r.db.WithContext(ctx).First(&img, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &img, nil
}

func (r *GormProductImageRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductImage, error) {
	var images []catalog.ProductImage
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// FirstImages maps each product to its oldest image. Products without images are absent.
func (r *GormProductImageRepository) FirstImages(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	result := make(map[uuid.UUID]string, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	var images []catalog.ProductImage
	if err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("created_at ASC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	for _, img := range images {
		if _, ok := result[img.ProductID]; !ok {
			result[img.ProductID] = img.Image
		}
	}
	return result, nil
}

func (r *GormProductImageRepository) Save(ctx context.Context, image *catalog.ProductImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *GormProductImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ProductImage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}
	return nil
}

var _ catalog.ProductImageRepository = (*GormProductImageRepository)(nil)
