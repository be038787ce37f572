package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/amunitsiia/shop/internal/testutil/mockrepo"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type productFixture struct {
	svc        *ProductService
	products   *mockrepo.ProductRepository
	categories *mockrepo.CategoryRepository
	brands     *mockrepo.BrandRepository
	suppliers  *mockrepo.SupplierRepository
	features   *mockrepo.ProductFeatureRepository
	images     *mockrepo.ProductImageRepository
	storage    *mockStorage
}

func newProductFixture() *productFixture {
	f := &productFixture{
		products:   new(mockrepo.ProductRepository),
		categories: new(mockrepo.CategoryRepository),
		brands:     new(mockrepo.BrandRepository),
		suppliers:  new(mockrepo.SupplierRepository),
		features:   new(mockrepo.ProductFeatureRepository),
		images:     new(mockrepo.ProductImageRepository),
		storage:    new(mockStorage),
	}
	f.svc = NewProductService(f.products, f.categories, f.brands, f.suppliers, f.features, f.images, f.storage, zap.NewNop())
	return f
}

func newTestProduct(t *testing.T, categoryID uuid.UUID) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(catalog.ProductDetails{
		Name:       "Ніж тактичний (чорний)",
		CategoryID: categoryID,
		Price:      decimal.NewFromInt(1200),
	})
	require.NoError(t, err)
	return p
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()
	category, _ := catalog.NewCategory("Ножі", "", uuid.New(), "")

	t.Run("with brand and suppliers", func(t *testing.T) {
		f := newProductFixture()
		brand, _ := catalog.NewBrand("Mora", "")
		supplier := partner.Supplier{BaseEntity: shared.NewBaseEntity(), Name: gofakeit.Company()}
		f.categories.On("FindByID", ctx, category.ID).Return(category, nil)
		f.brands.On("FindByID", ctx, brand.ID).Return(brand, nil)
		f.suppliers.On("FindByIDs", ctx, []uuid.UUID{supplier.ID}).Return([]partner.Supplier{supplier}, nil)
		f.products.On("ExistsBySlug", ctx, "mora-companion", (*uuid.UUID)(nil)).Return(false, nil)
		f.products.On("Save", ctx, mock.MatchedBy(func(p *catalog.Product) bool {
			return p.Sold && p.BrandID != nil && *p.BrandID == brand.ID
		})).Return(nil)
		f.products.On("ReplaceSuppliers", ctx, mock.Anything, []uuid.UUID{supplier.ID}).Return(nil)

		resp, err := f.svc.Create(ctx, ProductRequest{
			Name:        "Mora Companion",
			BrandID:     &brand.ID,
			CategoryID:  category.ID,
			Price:       decimal.RequireFromString("649.50"),
			SupplierIDs: []uuid.UUID{supplier.ID, supplier.ID},
		})

		require.NoError(t, err)
		assert.Equal(t, "mora-companion", resp.Slug)
		assert.True(t, resp.Sold)
		assert.Equal(t, []uuid.UUID{supplier.ID}, resp.SupplierIDs)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		f := newProductFixture()
		missing := uuid.New()
		f.categories.On("FindByID", ctx, category.ID).Return(category, nil)
		f.suppliers.On("FindByIDs", ctx, []uuid.UUID{missing}).Return([]partner.Supplier{}, nil)

		_, err := f.svc.Create(ctx, ProductRequest{Name: "X", CategoryID: category.ID, SupplierIDs: []uuid.UUID{missing}})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		f := newProductFixture()
		f.categories.On("FindByID", ctx, category.ID).Return(category, nil)
		f.products.On("ExistsBySlug", ctx, "x", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := f.svc.Create(ctx, ProductRequest{Name: "X", CategoryID: category.ID})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestProductService_Update_ChangingCategoryDropsFeatures(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	p := newTestProduct(t, uuid.New())
	target, _ := catalog.NewCategory("Мультитули", "", uuid.New(), "")

	f.products.On("FindByID", ctx, p.ID).Return(p, nil)
	f.categories.On("FindByID", ctx, target.ID).Return(target, nil)
	f.products.On("ExistsBySlug", ctx, p.Slug, &p.ID).Return(false, nil)
	f.products.On("Save", ctx, p).Return(nil)
	f.features.On("ReplaceForProduct", ctx, p.ID, []catalog.ProductFeature(nil)).Return(nil)

	resp, err := f.svc.Update(ctx, p.ID, ProductRequest{
		Name:       p.Name,
		Slug:       p.Slug,
		CategoryID: target.ID,
		Price:      p.Price,
	})

	require.NoError(t, err)
	assert.Equal(t, target.ID, resp.CategoryID)
	f.features.AssertExpectations(t)
	f.products.AssertNotCalled(t, "ReplaceSuppliers", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_SetFeatures(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("values of the category features", func(t *testing.T) {
		f := newProductFixture()
		p := newTestProduct(t, categoryID)
		def, _ := catalog.NewCategoryFeature(categoryID, "Сталь")
		f.products.On("FindByID", ctx, p.ID).Return(p, nil)
		f.categories.On("FindFeatures", ctx, categoryID).Return([]catalog.CategoryFeature{*def}, nil)
		f.features.On("ReplaceForProduct", ctx, p.ID, mock.MatchedBy(func(fs []catalog.ProductFeature) bool {
			return len(fs) == 1 && fs[0].Feature == "D2" && fs[0].CategoryFeatureID == def.ID
		})).Return(nil)

		items, err := f.svc.SetFeatures(ctx, p.ID, SetFeaturesRequest{
			Features: []FeatureValue{{CategoryFeatureID: def.ID, Feature: " D2 "}},
		})

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Сталь", items[0].FeatureName)
	})

	t.Run("feature of another category", func(t *testing.T) {
		f := newProductFixture()
		p := newTestProduct(t, categoryID)
		foreign, _ := catalog.NewCategoryFeature(uuid.New(), "Колір")
		f.products.On("FindByID", ctx, p.ID).Return(p, nil)
		f.categories.On("FindFeatures", ctx, categoryID).Return([]catalog.CategoryFeature{}, nil)
		f.categories.On("FindFeatureByID", ctx, foreign.ID).Return(foreign, nil)

		_, err := f.svc.SetFeatures(ctx, p.ID, SetFeaturesRequest{
			Features: []FeatureValue{{CategoryFeatureID: foreign.ID, Feature: "олива"}},
		})

		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "FEATURE_CATEGORY_MISMATCH", de.Code)
		f.features.AssertNotCalled(t, "ReplaceForProduct", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProductService_Images(t *testing.T) {
	ctx := context.Background()

	t.Run("upload url uses the product upload path", func(t *testing.T) {
		f := newProductFixture()
		p := newTestProduct(t, uuid.New())
		expires := time.Now().Add(15 * time.Minute)
		key := "product_nizh-taktychnyi-chornyi/front.jpg"
		f.products.On("FindByID", ctx, p.ID).Return(p, nil)
		f.storage.On("GenerateUploadURL", ctx, key, "image/jpeg", time.Duration(0)).
			Return("https://s3.test/put", expires, nil)

		resp, err := f.svc.RequestImageUpload(ctx, p.ID, UploadURLRequest{Filename: "C:\\photos\\front.jpg", ContentType: "image/jpeg"})

		require.NoError(t, err)
		assert.Equal(t, key, resp.Key)
		assert.Equal(t, "https://s3.test/put", resp.UploadURL)
	})

	t.Run("non image content type", func(t *testing.T) {
		f := newProductFixture()
		_, err := f.svc.RequestImageUpload(ctx, uuid.New(), UploadURLRequest{Filename: "a.pdf", ContentType: "application/pdf"})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("register requires the uploaded object", func(t *testing.T) {
		f := newProductFixture()
		p := newTestProduct(t, uuid.New())
		f.products.On("FindByID", ctx, p.ID).Return(p, nil)
		f.storage.On("ObjectExists", ctx, "product_x/a.jpg").Return(false, nil)

		_, err := f.svc.RegisterImage(ctx, p.ID, RegisterImageRequest{Key: "product_x/a.jpg"})
		assert.ErrorIs(t, err, ErrImageNotUploaded)
	})

	t.Run("register", func(t *testing.T) {
		f := newProductFixture()
		p := newTestProduct(t, uuid.New())
		f.products.On("FindByID", ctx, p.ID).Return(p, nil)
		f.storage.On("ObjectExists", ctx, "product_x/a.jpg").Return(true, nil)
		f.images.On("Save", ctx, mock.AnythingOfType("*catalog.ProductImage")).Return(nil)

		resp, err := f.svc.RegisterImage(ctx, p.ID, RegisterImageRequest{Key: "product_x/a.jpg"})

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.test/product_x/a.jpg", resp.URL)
	})

	t.Run("delete removes the object", func(t *testing.T) {
		f := newProductFixture()
		img, _ := catalog.NewProductImage(uuid.New(), "product_x/a.jpg")
		f.images.On("FindByID", ctx, img.ID).Return(img, nil)
		f.images.On("Delete", ctx, img.ID).Return(nil)
		f.storage.On("DeleteObject", ctx, "product_x/a.jpg").Return(errors.New("s3 unavailable"))

		require.NoError(t, f.svc.DeleteImage(ctx, img.ProductID, img.ID))
		f.storage.AssertExpectations(t)
	})

	t.Run("delete of another product's image", func(t *testing.T) {
		f := newProductFixture()
		img, _ := catalog.NewProductImage(uuid.New(), "product_x/a.jpg")
		f.images.On("FindByID", ctx, img.ID).Return(img, nil)

		assert.ErrorIs(t, f.svc.DeleteImage(ctx, uuid.New(), img.ID), shared.ErrNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	p := newTestProduct(t, uuid.New())
	img, _ := catalog.NewProductImage(p.ID, "product_x/1.jpg")
	f.products.On("FindByID", ctx, p.ID).Return(p, nil)
	f.images.On("FindByProduct", ctx, p.ID).Return([]catalog.ProductImage{*img}, nil)
	f.products.On("Delete", ctx, p.ID).Return(nil)
	f.storage.On("DeleteObject", ctx, "product_x/1.jpg").Return(nil)

	require.NoError(t, f.svc.Delete(ctx, p.ID))
	f.storage.AssertExpectations(t)
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	sold := false
	categoryID := uuid.New()
	p := newTestProduct(t, categoryID)
	f.products.On("FindAll", ctx, mock.MatchedBy(func(fl shared.Filter) bool {
		return fl.Search == "ніж" && fl.Filters["sold"] == false && fl.Filters["category_id"] == categoryID
	})).Return([]catalog.Product{*p}, nil)
	f.products.On("Count", ctx, mock.Anything).Return(int64(1), nil)

	items, total, err := f.svc.List(ctx, ProductListFilter{Search: "ніж", Sold: &sold, CategoryID: &categoryID})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Ніж тактичний", items[0].DisplayName)
}
