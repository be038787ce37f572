package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/amunitsiia/shop/internal/domain/shared"
)

// Brand is a product manufacturer
type Brand struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(100);not null"`
	Slug string `gorm:"type:varchar(200);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Brand) TableName() string {
	return "brands"
}

// NewBrand creates a brand, deriving the slug from the name when empty
func NewBrand(name, slug string) (*Brand, error) {
	b := &Brand{BaseEntity: shared.NewBaseEntity()}
	if err := b.Update(name, slug); err != nil {
		return nil, err
	}
	return b, nil
}

// Update renames the brand
func (b *Brand) Update(name, slug string) error {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Brand name must be 1-100 characters")
	}
	resolved, err := resolveSlug(slug, name)
	if err != nil {
		return err
	}
	b.Name = name
	b.Slug = resolved
	b.Touch()
	return nil
}
