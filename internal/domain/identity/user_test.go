package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("hashes password", func(t *testing.T) {
		u, err := NewUser("oleg", "oleg@example.com", "sup3rsecret")
		require.NoError(t, err)
		assert.NotEqual(t, "sup3rsecret", u.PasswordHash)
		assert.True(t, u.VerifyPassword("sup3rsecret"))
		assert.False(t, u.VerifyPassword("wrong-password"))
		assert.True(t, u.CanAuthenticate())
		assert.False(t, u.IsStaff)
	})

	t.Run("cyrillic usernames are allowed", func(t *testing.T) {
		_, err := NewUser("олег.петренко", "", "sup3rsecret")
		assert.NoError(t, err)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := NewUser("with space", "", "sup3rsecret")
		assert.Error(t, err)
		_, err = NewUser("oleg", "nope", "sup3rsecret")
		assert.Error(t, err)
		_, err = NewUser("oleg", "", "short")
		assert.Error(t, err)
	})
}

func TestResolveLogin(t *testing.T) {
	a := User{Username: "oleg", Email: "shared@example.com"}
	b := User{Username: "shared@example.com", Email: "other@example.com"}

	assert.Nil(t, ResolveLogin(nil, "x"))
	assert.Equal(t, "oleg", ResolveLogin([]User{a}, "oleg").Username)

	got := ResolveLogin([]User{b, a}, "shared@example.com")
	require.NotNil(t, got)
	assert.Equal(t, "oleg", got.Username)

	assert.Nil(t, ResolveLogin([]User{a, b}, "SHARED@example.com"))
}
