package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/amunitsiia/shop/internal/infrastructure/auth"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlacklist_Revoke(t *testing.T) {
	ctx := context.Background()
	b := auth.NewInMemoryTokenBlacklist()

	jtis := make([]string, 5)
	for i := range jtis {
		jtis[i] = gofakeit.UUID()
		require.NoError(t, b.Revoke(ctx, jtis[i], time.Hour))
	}
	for _, jti := range jtis {
		revoked, err := b.IsRevoked(ctx, jti)
		require.NoError(t, err)
		assert.True(t, revoked, jti)
	}

	revoked, err := b.IsRevoked(ctx, gofakeit.UUID())
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	b := auth.NewInMemoryTokenBlacklist()

	require.NoError(t, b.Revoke(ctx, "short-lived", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	revoked, err := b.IsRevoked(ctx, "short-lived")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_RevokeUser(t *testing.T) {
	ctx := context.Background()
	b := auth.NewInMemoryTokenBlacklist()
	before := time.Now().Add(-time.Minute)

	revoked, err := b.IsUserRevoked(ctx, "buyer", before)
	require.NoError(t, err)
	assert.False(t, revoked, "nothing revoked yet")

	require.NoError(t, b.RevokeUser(ctx, "buyer", time.Hour))

	tests := []struct {
		name     string
		user     string
		issuedAt time.Time
		want     bool
	}{
		{"token issued before revocation", "buyer", before, true},
		{"token issued after revocation", "buyer", time.Now().Add(time.Second), false},
		{"other user", "staff", before, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.IsUserRevoked(ctx, tt.user, tt.issuedAt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
