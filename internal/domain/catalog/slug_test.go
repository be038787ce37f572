package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"latin", "Tactical Vest", "tactical-vest"},
		{"ukrainian", "Шолом кевларовий", "sholom-kevlarovyi"},
		{"soft sign and apostrophe", "Сім'я Дзьоб", "simia-dzob"},
		{"accents folded", "Café Crème", "cafe-creme"},
		{"punctuation collapsed", "  Plate -- Carrier (L)!  ", "plate-carrier-l"},
		{"ie and yi", "Єнот Їжак", "ienot-izhak"},
		{"digits kept", "Армор 3А клас", "armor-3a-klas"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("plate-carrier"))
	assert.False(t, IsValidSlug("Plate Carrier"))
	assert.False(t, IsValidSlug("-plate"))
	assert.False(t, IsValidSlug(""))
}
