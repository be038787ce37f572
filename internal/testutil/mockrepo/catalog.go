// Package mockrepo holds testify mocks of the domain repositories shared by service tests.
package mockrepo

import (
	"context"
	"time"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// SuperCategoryRepository mocks catalog.SuperCategoryRepository
type SuperCategoryRepository struct {
	mock.Mock
}

func (m *SuperCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.SuperCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SuperCategory), args.Error(1)
}

func (m *SuperCategoryRepository) FindAll(ctx context.Context) ([]catalog.SuperCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.SuperCategory), args.Error(1)
}

func (m *SuperCategoryRepository) Save(ctx context.Context, sc *catalog.SuperCategory) error {
	return m.Called(ctx, sc).Error(0)
}

func (m *SuperCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SuperCategoryRepository) HasCategories(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// CategoryRepository mocks catalog.CategoryRepository
type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *CategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *CategoryRepository) FindPage(ctx context.Context, filter shared.Filter) ([]catalog.Category, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Get(1).(int64), args.Error(2)
}

func (m *CategoryRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *CategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CategoryRepository) HasProducts(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *CategoryRepository) FindFeatures(ctx context.Context, categoryID uuid.UUID) ([]catalog.CategoryFeature, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]catalog.CategoryFeature), args.Error(1)
}

func (m *CategoryRepository) FindFeatureByID(ctx context.Context, id uuid.UUID) (*catalog.CategoryFeature, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CategoryFeature), args.Error(1)
}

func (m *CategoryRepository) SaveFeature(ctx context.Context, feature *catalog.CategoryFeature) error {
	return m.Called(ctx, feature).Error(0)
}

func (m *CategoryRepository) DeleteFeature(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// BrandRepository mocks catalog.BrandRepository
type BrandRepository struct {
	mock.Mock
}

func (m *BrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Brand), args.Error(1)
}

func (m *BrandRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Brand, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Brand), args.Error(1)
}

func (m *BrandRepository) FindPage(ctx context.Context, filter shared.Filter) ([]catalog.Brand, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Brand), args.Get(1).(int64), args.Error(2)
}

func (m *BrandRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *BrandRepository) Save(ctx context.Context, brand *catalog.Brand) error {
	return m.Called(ctx, brand).Error(0)
}

func (m *BrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// ProductRepository mocks catalog.ProductRepository
type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *ProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *ProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *ProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *ProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *ProductRepository) BrandNames(ctx context.Context, categoryID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *ProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductRepository) RecordAccess(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *ProductRepository) SetSold(ctx context.Context, id uuid.UUID, sold bool) error {
	return m.Called(ctx, id, sold).Error(0)
}

func (m *ProductRepository) ReplaceSuppliers(ctx context.Context, productID uuid.UUID, supplierIDs []uuid.UUID) error {
	return m.Called(ctx, productID, supplierIDs).Error(0)
}

func (m *ProductRepository) FindSupplierIDs(ctx context.Context, productID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// ProductFeatureRepository mocks catalog.ProductFeatureRepository
type ProductFeatureRepository struct {
	mock.Mock
}

func (m *ProductFeatureRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductFeature, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]catalog.ProductFeature), args.Error(1)
}

func (m *ProductFeatureRepository) ReplaceForProduct(ctx context.Context, productID uuid.UUID, features []catalog.ProductFeature) error {
	return m.Called(ctx, productID, features).Error(0)
}

// ProductImageRepository mocks catalog.ProductImageRepository
type ProductImageRepository struct {
	mock.Mock
}

func (m *ProductImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductImage), args.Error(1)
}

func (m *ProductImageRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductImage, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]catalog.ProductImage), args.Error(1)
}

func (m *ProductImageRepository) FirstImages(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	args := m.Called(ctx, productIDs)
	return args.Get(0).(map[uuid.UUID]string), args.Error(1)
}

func (m *ProductImageRepository) Save(ctx context.Context, image *catalog.ProductImage) error {
	return m.Called(ctx, image).Error(0)
}

func (m *ProductImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// PageRepository mocks catalog.PageRepository
type PageRepository struct {
	mock.Mock
}

func (m *PageRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.PageData, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PageData), args.Error(1)
}

func (m *PageRepository) FindByName(ctx context.Context, name string) (*catalog.PageData, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PageData), args.Error(1)
}

func (m *PageRepository) FindAll(ctx context.Context) ([]catalog.PageData, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.PageData), args.Error(1)
}

func (m *PageRepository) Save(ctx context.Context, page *catalog.PageData) error {
	return m.Called(ctx, page).Error(0)
}

func (m *PageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

var (
	_ catalog.SuperCategoryRepository  = (*SuperCategoryRepository)(nil)
	_ catalog.CategoryRepository       = (*CategoryRepository)(nil)
	_ catalog.BrandRepository          = (*BrandRepository)(nil)
	_ catalog.ProductRepository        = (*ProductRepository)(nil)
	_ catalog.ProductFeatureRepository = (*ProductFeatureRepository)(nil)
	_ catalog.ProductImageRepository   = (*ProductImageRepository)(nil)
	_ catalog.PageRepository           = (*PageRepository)(nil)
)
