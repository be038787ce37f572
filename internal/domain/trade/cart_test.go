package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCart(t *testing.T) {
	id := uuid.New()

	t.Run("empty cookie is an empty cart", func(t *testing.T) {
		c, err := ParseCart("")
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.Equal(t, "{}", c.Encode())
	})

	t.Run("single quotes are accepted", func(t *testing.T) {
		c, err := ParseCart("{'" + id.String() + "': {'quantity': 3}}")
		require.NoError(t, err)
		assert.Equal(t, 3, c[id.String()].Quantity)
		assert.Equal(t, 3, c.ItemCount())
	})

	t.Run("url encoded value", func(t *testing.T) {
		c, err := ParseCart("%7B%22" + id.String() + "%22%3A%7B%22quantity%22%3A2%7D%7D")
		require.NoError(t, err)
		assert.Equal(t, map[uuid.UUID]int{id: 2}, c.Quantities())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseCart("{not json")
		assert.Error(t, err)
	})

	t.Run("invalid ids are skipped", func(t *testing.T) {
		c, err := ParseCart(`{"17": {"quantity": 1}, "` + id.String() + `": {"quantity": 1}}`)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{id}, c.ProductIDs())
		assert.Equal(t, 2, c.ItemCount())
	})
}

func TestCartFromItems(t *testing.T) {
	orderID := uuid.New()
	a, _ := NewOrderItem(orderID, uuid.New(), 2)
	b, _ := NewOrderItem(orderID, uuid.New(), 0)

	cart := CartFromItems([]OrderItem{*a, *b})
	assert.Len(t, cart, 1)
	assert.Equal(t, 2, cart[a.ProductID.String()].Quantity)
}

func TestOrderItem_Apply(t *testing.T) {
	item, err := NewOrderItem(uuid.New(), uuid.New(), 0)
	require.NoError(t, err)

	assert.False(t, item.Apply(CartActionAdd))
	assert.Equal(t, 1, item.Quantity)
	assert.True(t, item.Apply(CartActionRemove))

	_, err = ParseCartAction("delete")
	assert.Error(t, err)
	action, err := ParseCartAction("add")
	require.NoError(t, err)
	assert.Equal(t, CartActionAdd, action)
}
