package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// Category is a leaf of the shop navigation: products belong to exactly one category
type Category struct {
	shared.BaseEntity
	Name            string         `gorm:"type:varchar(100);not null"`
	Slug            string         `gorm:"type:varchar(200);not null;uniqueIndex"`
	SuperCategoryID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Icon            string         `gorm:"type:varchar(255)"`
	SuperCategory   *SuperCategory `gorm:"foreignKey:SuperCategoryID"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category. An empty slug is derived from the name.
func NewCategory(name, slug string, superCategoryID uuid.UUID, icon string) (*Category, error) {
	c := &Category{BaseEntity: shared.NewBaseEntity()}
	if err := c.Update(name, slug, superCategoryID, icon); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the category attributes
func (c *Category) Update(name, slug string, superCategoryID uuid.UUID, icon string) error {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name must be 1-100 characters")
	}
	if superCategoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPER_CATEGORY", "Super category is required")
	}
	resolved, err := resolveSlug(slug, name)
	if err != nil {
		return err
	}
	c.Name = name
	c.Slug = resolved
	c.SuperCategoryID = superCategoryID
	c.Icon = icon
	c.Touch()
	return nil
}

// CategoryFeature is a characteristic that products of a category can describe
type CategoryFeature struct {
	shared.BaseEntity
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FeatureName string    `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (CategoryFeature) TableName() string {
	return "category_features"
}

// NewCategoryFeature creates a feature definition for a category
func NewCategoryFeature(categoryID uuid.UUID, name string) (*CategoryFeature, error) {
	name = strings.TrimSpace(name)
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category is required")
	}
	if name == "" || utf8.RuneCountInString(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Feature name must be 1-100 characters")
	}
	return &CategoryFeature{
		BaseEntity:  shared.NewBaseEntity(),
		CategoryID:  categoryID,
		FeatureName: name,
	}, nil
}

func resolveSlug(slug, name string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if !IsValidSlug(slug) {
		return "", shared.NewDomainError("INVALID_SLUG", "Slug may contain only lowercase latin letters, digits and hyphens")
	}
	return slug, nil
}
