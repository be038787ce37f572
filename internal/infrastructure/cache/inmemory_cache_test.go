package cache

import (
	"context"
	"testing"
	"time"

	"github.com/amunitsiia/shop/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type navItem struct {
	Name  string `json:"name"`
	Slugs []string
}

func TestInMemoryCache_SetGet(t *testing.T) {
	c := NewInMemoryCache()
	defer c.Stop()
	ctx := context.Background()

	in := []navItem{{Name: "Ножі", Slugs: []string{"nozhi"}}}
	require.NoError(t, c.Set(ctx, "category_list", in, time.Minute))

	var out []navItem
	ok, err := c.Get(ctx, "category_list", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)

	out[0].Slugs[0] = "changed"
	var again []navItem
	_, err = c.Get(ctx, "category_list", &again)
	require.NoError(t, err)
	assert.Equal(t, "nozhi", again[0].Slugs[0], "cached value must not alias caller data")
}

func TestInMemoryCache_Miss(t *testing.T) {
	c := NewInMemoryCache()
	defer c.Stop()

	var out string
	ok, err := c.Get(context.Background(), "missing", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInMemoryCache_Expiry(t *testing.T) {
	c := NewInMemoryCache()
	defer c.Stop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var out string
	ok, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	c.sweep(time.Now())
	assert.Zero(t, c.Len())
}

func TestInMemoryCache_Delete(t *testing.T) {
	c := NewInMemoryCache()
	defer c.Stop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "super_categories", 1, 0))
	require.NoError(t, c.Set(ctx, "category_list", 2, 0))
	require.NoError(t, c.Delete(ctx, "super_categories", "category_list"))
	assert.Zero(t, c.Len())
}

func TestInMemoryCache_StopTwice(t *testing.T) {
	c := NewInMemoryCache()
	c.Stop()
	assert.NotPanics(t, c.Stop)
}

func TestNew(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		c := New(config.CacheConfig{Type: TypeMemory}, nil, zap.NewNop())
		assert.IsType(t, &InMemoryCache{}, c)
	})

	t.Run("redis without connection falls back", func(t *testing.T) {
		c := New(config.CacheConfig{Type: TypeRedis}, nil, zap.NewNop())
		assert.IsType(t, &InMemoryCache{}, c)
	})
}
