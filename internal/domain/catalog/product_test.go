package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() ProductDetails {
	return ProductDetails{
		Name:       "Шолом FAST (олива)",
		Model:      "FAST-2",
		CategoryID: uuid.New(),
		VendorCode: "HLM-01",
		Price:      decimal.NewFromFloat(4599.999),
	}
}

func TestNewProduct(t *testing.T) {
	t.Run("derives slug and starts sold out", func(t *testing.T) {
		p, err := NewProduct(validDetails())
		require.NoError(t, err)
		assert.Equal(t, "sholom-fast-olyva", p.Slug)
		assert.True(t, p.Sold)
		assert.False(t, p.IsPurchasable())
		assert.Equal(t, "4600", p.Price.String())
		assert.Equal(t, "Шолом FAST", p.DisplayName())
	})

	t.Run("rejects negative price", func(t *testing.T) {
		d := validDetails()
		d.Price = decimal.NewFromInt(-1)
		_, err := NewProduct(d)
		require.Error(t, err)
		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "INVALID_PRICE", de.Code)
	})

	t.Run("rejects missing category", func(t *testing.T) {
		d := validDetails()
		d.CategoryID = uuid.Nil
		_, err := NewProduct(d)
		assert.Error(t, err)
	})

	t.Run("rejects invalid explicit slug", func(t *testing.T) {
		d := validDetails()
		d.Slug = "Not A Slug"
		_, err := NewProduct(d)
		assert.Error(t, err)
	})
}

func TestProduct_StockFlags(t *testing.T) {
	p, err := NewProduct(validDetails())
	require.NoError(t, err)

	assert.False(t, p.IsPurchasable(), "a new product has no stock yet")
	p.Sold = false
	assert.True(t, p.IsPurchasable())
}

func TestProduct_RecordAccessAndLineTotal(t *testing.T) {
	p, err := NewProduct(validDetails())
	require.NoError(t, err)

	now := time.Now()
	p.RecordAccess(now)
	p.RecordAccess(now)
	assert.Equal(t, int64(2), p.AccessNumber)
	assert.Equal(t, now, *p.LastAccessAt)

	assert.True(t, decimal.NewFromInt(13800).Equal(p.LineTotal(3)))
}

func TestNewProductFeature(t *testing.T) {
	p, err := NewProduct(validDetails())
	require.NoError(t, err)

	def, err := NewCategoryFeature(p.CategoryID, "Клас захисту")
	require.NoError(t, err)

	f, err := NewProductFeature(p, def, "NIJ IIIA")
	require.NoError(t, err)
	assert.Equal(t, "Клас захисту", f.FeatureName)

	other, err := NewCategoryFeature(uuid.New(), "Колір")
	require.NoError(t, err)
	_, err = NewProductFeature(p, other, "олива")
	assert.Error(t, err)
}

func TestNewCategory_Slug(t *testing.T) {
	c, err := NewCategory("Бронежилети", "", uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "bronezhylety", c.Slug)

	_, err = NewCategory("Бронежилети", "", uuid.Nil, "")
	assert.Error(t, err)
}
