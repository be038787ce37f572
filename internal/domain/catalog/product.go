package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a purchasable catalog item.
// Sold means "sold out": it is true until stock arrives and again once
// the last stock lot is consumed.
type Product struct {
	shared.BaseEntity
	Name         string          `gorm:"type:varchar(150);not null"`
	Model        string          `gorm:"type:varchar(50)"`
	Slug         string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	BrandID      *uuid.UUID      `gorm:"type:uuid;index"`
	Description  string          `gorm:"type:text"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendorCode   string          `gorm:"type:varchar(50)"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Sold         bool            `gorm:"not null"`
	Notes        string          `gorm:"type:varchar(200)"`
	LastAccessAt *time.Time
	AccessNumber int64       `gorm:"not null"`
	SupplierIDs  []uuid.UUID `gorm:"-"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// ProductDetails holds the editable attributes of a product
type ProductDetails struct {
	Name        string
	Model       string
	Slug        string
	BrandID     *uuid.UUID
	Description string
	CategoryID  uuid.UUID
	VendorCode  string
	Price       decimal.Decimal
	Notes       string
}

// NewProduct creates a product. New products are sold out until an income arrives.
func NewProduct(details ProductDetails) (*Product, error) {
	p := &Product{
		BaseEntity: shared.NewBaseEntity(),
		Sold:       true,
	}
	if err := p.Update(details); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the editable attributes
func (p *Product) Update(d ProductDetails) error {
	name := strings.TrimSpace(d.Name)
	if name == "" || utf8.RuneCountInString(name) > 150 {
		return shared.NewDomainError("INVALID_NAME", "Product name must be 1-150 characters")
	}
	if utf8.RuneCountInString(d.Model) > 50 {
		return shared.NewDomainError("INVALID_MODEL", "Product model cannot exceed 50 characters")
	}
	if utf8.RuneCountInString(d.VendorCode) > 50 {
		return shared.NewDomainError("INVALID_VENDOR_CODE", "Vendor code cannot exceed 50 characters")
	}
	if utf8.RuneCountInString(d.Notes) > 200 {
		return shared.NewDomainError("INVALID_NOTES", "Notes cannot exceed 200 characters")
	}
	if d.CategoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Category is required")
	}
	if err := validatePrice(d.Price); err != nil {
		return err
	}
	slug, err := resolveSlug(d.Slug, name)
	if err != nil {
		return err
	}

	p.Name = name
	p.Model = d.Model
	p.Slug = slug
	p.BrandID = d.BrandID
	p.Description = d.Description
	p.CategoryID = d.CategoryID
	p.VendorCode = d.VendorCode
	p.Price = d.Price.Round(2)
	p.Notes = d.Notes
	p.Touch()
	return nil
}

// DisplayName is the product name without parenthesised remarks
func (p *Product) DisplayName() string {
	return HideBrackets(p.Name)
}

// RecordAccess counts a product page view
func (p *Product) RecordAccess(at time.Time) {
	p.AccessNumber++
	p.LastAccessAt = &at
}

// IsPurchasable reports whether the product can be put into a cart
func (p *Product) IsPurchasable() bool {
	return !p.Sold
}

// LineTotal is price multiplied by quantity
func (p *Product) LineTotal(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	// decimal(10,2)
	if price.GreaterThanOrEqual(decimal.New(1, 8)) {
		return shared.NewDomainError("INVALID_PRICE", "Price is too large")
	}
	return nil
}
