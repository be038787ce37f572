package partner

import (
	"context"
	"testing"

	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/amunitsiia/shop/internal/testutil/mockrepo"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSupplierService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		repo := new(mockrepo.SupplierRepository)
		svc := NewSupplierService(repo, zap.NewNop())
		email := gofakeit.Email()
		repo.On("Save", ctx, mock.MatchedBy(func(s *partner.Supplier) bool {
			return s.Name == "ТОВ Тактика" && s.Email == email
		})).Return(nil)

		resp, err := svc.Create(ctx, SupplierRequest{Name: "ТОВ Тактика", EGRPOU: "40123456", MFO: "305299", Email: email})

		require.NoError(t, err)
		assert.Equal(t, "40123456", resp.EGRPOU)
	})

	t.Run("mfo too long", func(t *testing.T) {
		repo := new(mockrepo.SupplierRepository)
		svc := NewSupplierService(repo, zap.NewNop())

		_, err := svc.Create(ctx, SupplierRequest{Name: "ТОВ Тактика", MFO: "123456789"})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSupplierService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(mockrepo.SupplierRepository)
	svc := NewSupplierService(repo, zap.NewNop())
	s, err := partner.NewSupplier(partner.SupplierDetails{Name: "ФОП Коваль", Person: "Коваль І."})
	require.NoError(t, err)

	repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Search == "Коваль" && f.Page == 2 && f.PageSize == 20
	})).Return([]partner.Supplier{*s}, nil)
	repo.On("Count", ctx, mock.Anything).Return(int64(21), nil)

	items, total, err := svc.List(ctx, SupplierListFilter{Search: "Коваль", Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	assert.Equal(t, "Коваль І.", items[0].Person)

	missing := uuid.New()
	repo.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, missing), shared.ErrNotFound)
}

func TestBuyerService(t *testing.T) {
	ctx := context.Background()

	t.Run("list guests", func(t *testing.T) {
		repo := new(mockrepo.BuyerRepository)
		svc := NewBuyerService(repo, zap.NewNop())
		repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["has_user"] == false
		})).Return([]partner.Buyer{}, nil)
		repo.On("Count", ctx, mock.Anything).Return(int64(0), nil)

		items, total, err := svc.List(ctx, BuyerListFilter{HasUser: "no"})
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Zero(t, total)
	})

	t.Run("update contact", func(t *testing.T) {
		repo := new(mockrepo.BuyerRepository)
		svc := NewBuyerService(repo, zap.NewNop())
		b := partner.NewBuyerForUser(uuid.New(), "oleg", "oleg@example.com")
		repo.On("FindByID", ctx, b.ID).Return(b, nil)
		repo.On("Save", ctx, b).Return(nil)

		resp, err := svc.Update(ctx, b.ID, BuyerRequest{
			Name: "Олег Петренко", Email: "oleg@example.com", Tel: "+380671112233", Address: "Львів",
		})

		require.NoError(t, err)
		assert.Equal(t, "Львів", resp.Address)
		assert.NotNil(t, resp.UserID)
	})

	t.Run("update with empty address", func(t *testing.T) {
		repo := new(mockrepo.BuyerRepository)
		svc := NewBuyerService(repo, zap.NewNop())
		b := partner.NewBuyerForUser(uuid.New(), "oleg", "oleg@example.com")
		repo.On("FindByID", ctx, b.ID).Return(b, nil)

		_, err := svc.Update(ctx, b.ID, BuyerRequest{Name: "Олег", Email: "oleg@example.com", Tel: "0501234567"})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("delete", func(t *testing.T) {
		repo := new(mockrepo.BuyerRepository)
		svc := NewBuyerService(repo, zap.NewNop())
		b := partner.NewBuyerForUser(uuid.New(), "oleg", "oleg@example.com")
		repo.On("FindByID", ctx, b.ID).Return(b, nil)
		repo.On("Delete", ctx, b.ID).Return(nil)

		require.NoError(t, svc.Delete(ctx, b.ID))
		repo.AssertExpectations(t)
	})
}
