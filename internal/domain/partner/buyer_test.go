package partner

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuestBuyer(t *testing.T) {
	t.Run("valid contact", func(t *testing.T) {
		b, err := NewGuestBuyer(Contact{
			Name:    gofakeit.Name(),
			Email:   gofakeit.Email(),
			Tel:     "+380501234567",
			Address: "Київ, Хрещатик 1",
		})
		require.NoError(t, err)
		assert.False(t, b.HasUser())
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := NewGuestBuyer(Contact{Name: "Олег"})
		assert.Error(t, err)
	})

	t.Run("address limit counts runes", func(t *testing.T) {
		_, err := NewGuestBuyer(Contact{
			Name: "Олег", Email: "oleg@example.com", Tel: "0501234567",
			Address: "Дніпро, вулиця Січеславська 12/4",
		})
		assert.Error(t, err)
	})
}

func TestNewBuyerForUser(t *testing.T) {
	uid := uuid.New()
	b := NewBuyerForUser(uid, "oleg", "oleg@example.com")
	assert.True(t, b.HasUser())
	assert.Equal(t, uid, *b.UserID)
	assert.Equal(t, Contact{Name: "oleg", Email: "oleg@example.com"}, b.Contact())
}

func TestNewSupplier(t *testing.T) {
	s, err := NewSupplier(SupplierDetails{Name: "ТОВ Амуніція", EGRPOU: "12345678", MFO: "305299", Email: "sales@amunitsiia.ua"})
	require.NoError(t, err)
	assert.Equal(t, "ТОВ Амуніція", s.Name)

	_, err = NewSupplier(SupplierDetails{Name: "X", MFO: "123456789"})
	assert.Error(t, err)

	_, err = NewSupplier(SupplierDetails{Name: "X", Email: "not-an-email"})
	assert.Error(t, err)
}
