package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/amunitsiia/shop/internal/testutil/mockrepo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type categoryFixture struct {
	svc        *CategoryService
	supers     *mockrepo.SuperCategoryRepository
	categories *mockrepo.CategoryRepository
	nav        *mockNavCache
}

func newCategoryFixture() *categoryFixture {
	f := &categoryFixture{
		supers:     new(mockrepo.SuperCategoryRepository),
		categories: new(mockrepo.CategoryRepository),
		nav:        new(mockNavCache),
	}
	f.svc = NewCategoryService(f.supers, f.categories, f.nav, zap.NewNop())
	return f
}

func (f *categoryFixture) expectInvalidate(ctx context.Context) {
	f.nav.On("Delete", ctx, CacheKeySuperCategories, CacheKeyCategoryList).Return(nil).Once()
}

func TestCategoryService_SuperCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("create invalidates navigation", func(t *testing.T) {
		f := newCategoryFixture()
		f.supers.On("Save", ctx, mock.AnythingOfType("*catalog.SuperCategory")).Return(nil)
		f.expectInvalidate(ctx)

		resp, err := f.svc.CreateSuperCategory(ctx, SuperCategoryRequest{Name: "Спорядження"})

		require.NoError(t, err)
		assert.Equal(t, "Спорядження", resp.Name)
		f.nav.AssertExpectations(t)
	})

	t.Run("cache failure does not fail the write", func(t *testing.T) {
		f := newCategoryFixture()
		sc, _ := catalog.NewSuperCategory("Одяг", "")
		f.supers.On("FindByID", ctx, sc.ID).Return(sc, nil)
		f.supers.On("Save", ctx, sc).Return(nil)
		f.nav.On("Delete", ctx, CacheKeySuperCategories, CacheKeyCategoryList).Return(errors.New("redis down"))

		resp, err := f.svc.UpdateSuperCategory(ctx, sc.ID, SuperCategoryRequest{Name: "Тактичний одяг"})

		require.NoError(t, err)
		assert.Equal(t, "Тактичний одяг", resp.Name)
	})

	t.Run("delete with categories is refused", func(t *testing.T) {
		f := newCategoryFixture()
		sc, _ := catalog.NewSuperCategory("Одяг", "")
		f.supers.On("FindByID", ctx, sc.ID).Return(sc, nil)
		f.supers.On("HasCategories", ctx, sc.ID).Return(true, nil)

		err := f.svc.DeleteSuperCategory(ctx, sc.ID)

		assert.ErrorIs(t, err, shared.ErrInvalidState)
		f.supers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("delete empty super category", func(t *testing.T) {
		f := newCategoryFixture()
		sc, _ := catalog.NewSuperCategory("Одяг", "")
		f.supers.On("FindByID", ctx, sc.ID).Return(sc, nil)
		f.supers.On("HasCategories", ctx, sc.ID).Return(false, nil)
		f.supers.On("Delete", ctx, sc.ID).Return(nil)
		f.expectInvalidate(ctx)

		require.NoError(t, f.svc.DeleteSuperCategory(ctx, sc.ID))
		f.nav.AssertExpectations(t)
	})

	t.Run("list", func(t *testing.T) {
		f := newCategoryFixture()
		f.supers.On("FindAll", ctx).Return([]catalog.SuperCategory{
			{BaseEntity: shared.NewBaseEntity(), Name: "Взуття"},
			{BaseEntity: shared.NewBaseEntity(), Name: "Одяг"},
		}, nil)

		items, err := f.svc.ListSuperCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})
}

func TestCategoryService_Categories(t *testing.T) {
	ctx := context.Background()
	sc, _ := catalog.NewSuperCategory("Захист", "")

	t.Run("create derives slug", func(t *testing.T) {
		f := newCategoryFixture()
		f.supers.On("FindByID", ctx, sc.ID).Return(sc, nil)
		f.categories.On("ExistsBySlug", ctx, "bronezhylety", (*uuid.UUID)(nil)).Return(false, nil)
		f.categories.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)
		f.expectInvalidate(ctx)

		resp, err := f.svc.CreateCategory(ctx, CategoryRequest{Name: "Бронежилети", SuperCategoryID: sc.ID})

		require.NoError(t, err)
		assert.Equal(t, "bronezhylety", resp.Slug)
		assert.Equal(t, sc.ID, resp.SuperCategoryID)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		f := newCategoryFixture()
		f.supers.On("FindByID", ctx, sc.ID).Return(sc, nil)
		f.categories.On("ExistsBySlug", ctx, "shlemy", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := f.svc.CreateCategory(ctx, CategoryRequest{Name: "Шоломи", Slug: "shlemy", SuperCategoryID: sc.ID})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		f.categories.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown super category", func(t *testing.T) {
		f := newCategoryFixture()
		missing := uuid.New()
		f.supers.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		_, err := f.svc.CreateCategory(ctx, CategoryRequest{Name: "Шоломи", SuperCategoryID: missing})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("update excludes itself from slug check", func(t *testing.T) {
		f := newCategoryFixture()
		c, _ := catalog.NewCategory("Шоломи", "", sc.ID, "")
		f.categories.On("FindByID", ctx, c.ID).Return(c, nil)
		f.categories.On("ExistsBySlug", ctx, "sholomy-fast", &c.ID).Return(false, nil)
		f.categories.On("Save", ctx, c).Return(nil)
		f.expectInvalidate(ctx)

		resp, err := f.svc.UpdateCategory(ctx, c.ID, CategoryRequest{Name: "Шоломи FAST", SuperCategoryID: sc.ID})

		require.NoError(t, err)
		assert.Equal(t, "sholomy-fast", resp.Slug)
	})

	t.Run("delete with products is refused", func(t *testing.T) {
		f := newCategoryFixture()
		c, _ := catalog.NewCategory("Шоломи", "", sc.ID, "")
		f.categories.On("FindByID", ctx, c.ID).Return(c, nil)
		f.categories.On("HasProducts", ctx, c.ID).Return(true, nil)

		assert.ErrorIs(t, f.svc.DeleteCategory(ctx, c.ID), shared.ErrInvalidState)
	})

	t.Run("list passes the super category filter", func(t *testing.T) {
		f := newCategoryFixture()
		f.categories.On("FindPage", ctx, mock.MatchedBy(func(fl shared.Filter) bool {
			return fl.Filters["super_category_id"] == sc.ID && fl.Page == 1 && fl.PageSize == 20
		})).Return([]catalog.Category{{BaseEntity: shared.NewBaseEntity(), Name: "Шоломи", SuperCategory: sc}}, int64(1), nil)

		items, total, err := f.svc.ListCategories(ctx, CategoryListFilter{SuperCategoryID: &sc.ID})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.NotNil(t, items[0].SuperCategory)
		assert.Equal(t, "Захист", items[0].SuperCategory.Name)
	})
}

func TestCategoryService_Features(t *testing.T) {
	ctx := context.Background()
	c, _ := catalog.NewCategory("Ножі", "", uuid.New(), "")

	t.Run("add", func(t *testing.T) {
		f := newCategoryFixture()
		f.categories.On("FindByID", ctx, c.ID).Return(c, nil)
		f.categories.On("SaveFeature", ctx, mock.MatchedBy(func(cf *catalog.CategoryFeature) bool {
			return cf.CategoryID == c.ID && cf.FeatureName == "Довжина клинка"
		})).Return(nil)

		resp, err := f.svc.AddFeature(ctx, c.ID, FeatureRequest{FeatureName: " Довжина клинка "})

		require.NoError(t, err)
		assert.Equal(t, "Довжина клинка", resp.FeatureName)
	})

	t.Run("delete of another category's feature", func(t *testing.T) {
		f := newCategoryFixture()
		other, _ := catalog.NewCategoryFeature(uuid.New(), "Колір")
		f.categories.On("FindFeatureByID", ctx, other.ID).Return(other, nil)

		err := f.svc.DeleteFeature(ctx, c.ID, other.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.categories.AssertNotCalled(t, "DeleteFeature", mock.Anything, mock.Anything)
	})

	t.Run("list", func(t *testing.T) {
		f := newCategoryFixture()
		def, _ := catalog.NewCategoryFeature(c.ID, "Сталь")
		f.categories.On("FindByID", ctx, c.ID).Return(c, nil)
		f.categories.On("FindFeatures", ctx, c.ID).Return([]catalog.CategoryFeature{*def}, nil)

		items, err := f.svc.ListFeatures(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Сталь", items[0].FeatureName)
	})
}
