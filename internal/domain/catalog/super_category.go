package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/amunitsiia/shop/internal/domain/shared"
)

// SuperCategory groups categories in the top-level shop navigation
type SuperCategory struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(50);not null"`
	Icon string `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (SuperCategory) TableName() string {
	return "super_categories"
}

// NewSuperCategory creates a new super category
func NewSuperCategory(name, icon string) (*SuperCategory, error) {
	sc := &SuperCategory{BaseEntity: shared.NewBaseEntity()}
	if err := sc.Update(name, icon); err != nil {
		return nil, err
	}
	return sc, nil
}

// Update changes the name and icon
func (sc *SuperCategory) Update(name, icon string) error {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > 50 {
		return shared.NewDomainError("INVALID_NAME", "Super category name must be 1-50 characters")
	}
	sc.Name = name
	sc.Icon = icon
	sc.Touch()
	return nil
}
