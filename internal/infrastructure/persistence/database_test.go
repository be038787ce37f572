package persistence

import (
	"testing"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDatabase_PingStatsClose(t *testing.T) {
	db := &Database{DB: setupTestDB(t)}

	require.NoError(t, db.Ping())

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpenConnections)
	assert.Equal(t, stats.OpenConnections, stats.InUse+stats.Idle)

	require.NoError(t, db.Close())
	assert.Error(t, db.Ping())
}

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"asc", "ASC"},
		{" ASC ", "ASC"},
		{"desc", "DESC"},
		{"", "DESC"},
		{"asc; DROP TABLE products", "DESC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateSortOrder(tt.input), tt.input)
	}
}

func TestValidateSortField(t *testing.T) {
	assert.Equal(t, "price", ValidateSortField("price", ProductSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("password_hash", ProductSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("  ", ProductSortFields, "created_at"))
	assert.Equal(t, "name", ValidateSortField(" name ", CatalogSortFields, "created_at"))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%шолом%", likePattern("Шолом"))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_OFF"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}

func TestNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(gorm.ErrRecordNotFound), shared.ErrNotFound)
	assert.Equal(t, gorm.ErrInvalidData, notFound(gorm.ErrInvalidData))
}
