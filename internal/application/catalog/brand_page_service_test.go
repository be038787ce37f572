package catalog

import (
	"context"
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

func TestBrandService(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		repo := new(mockrepo.BrandRepository)
		svc := NewBrandService(repo, zap.NewNop())
		repo.On("ExistsBySlug", ctx, "helikon-tex", (*uuid.UUID)(nil)).Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Brand")).Return(nil)

		resp, err := svc.Create(ctx, BrandRequest{Name: "Helikon-Tex"})

		require.NoError(t, err)
		assert.Equal(t, "helikon-tex", resp.Slug)
	})

	t.Run("update to a taken slug", func(t *testing.T) {
		repo := new(mockrepo.BrandRepository)
		svc := NewBrandService(repo, zap.NewNop())
		b, _ := catalog.NewBrand("Mil-Tec", "")
		repo.On("FindByID", ctx, b.ID).Return(b, nil)
		repo.On("ExistsBySlug", ctx, "helikon-tex", &b.ID).Return(true, nil)

		_, err := svc.Update(ctx, b.ID, BrandRequest{Name: "Helikon-Tex"})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("delete missing", func(t *testing.T) {
		repo := new(mockrepo.BrandRepository)
		svc := NewBrandService(repo, zap.NewNop())
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, id), shared.ErrNotFound)
	})
}

func TestPageService(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		repo := new(mockrepo.PageRepository)
		svc := NewPageService(repo, zap.NewNop())
		repo.On("FindByName", ctx, "delivery").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.MatchedBy(func(p *catalog.PageData) bool {
			return p.Name == "delivery" && p.Header1 == "Нова Пошта"
		})).Return(nil)

		resp, err := svc.Create(ctx, PageRequest{Name: "Delivery", Header1: "Нова Пошта"})

		require.NoError(t, err)
		assert.Equal(t, "delivery", resp.Name)
	})

	t.Run("create existing name", func(t *testing.T) {
		repo := new(mockrepo.PageRepository)
		svc := NewPageService(repo, zap.NewNop())
		existing, _ := catalog.NewPageData("about")
		repo.On("FindByName", ctx, "about").Return(existing, nil)

		_, err := svc.Create(ctx, PageRequest{Name: "about"})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("update keeps the name", func(t *testing.T) {
		repo := new(mockrepo.PageRepository)
		svc := NewPageService(repo, zap.NewNop())
		page, _ := catalog.NewPageData("about")
		repo.On("FindByID", ctx, page.ID).Return(page, nil)
		repo.On("Save", ctx, page).Return(nil)

		resp, err := svc.Update(ctx, page.ID, PageRequest{Name: "terms", Text1: "Про нас"})

		require.NoError(t, err)
		assert.Equal(t, "about", resp.Name)
		assert.Equal(t, "Про нас", resp.Text1)
	})
}
