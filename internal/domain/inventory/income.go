package inventory

import (
	"time"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income is a goods receipt: a quantity of a product bought from a supplier
type Income struct {
	shared.BaseEntity
	ProductID      *uuid.UUID      `gorm:"type:uuid;index"`
	SupplierID     *uuid.UUID      `gorm:"type:uuid;index"`
	IncomeQuantity int             `gorm:"not null"`
	IncomePrice    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IncomeDate     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Income) TableName() string {
	return "incomes"
}

// NewIncome creates an income for a product
func NewIncome(productID uuid.UUID, supplierID *uuid.UUID, quantity int, price decimal.Decimal) (*Income, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is required")
	}
	if err := validateIncome(quantity, price); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Income{
		BaseEntity:     shared.NewBaseEntity(),
		ProductID:      &productID,
		SupplierID:     supplierID,
		IncomeQuantity: quantity,
		IncomePrice:    price.Round(2),
		IncomeDate:     now,
	}, nil
}

// Change updates quantity, price and supplier and returns how much the
// quantity decreased (negative when it grew).
func (i *Income) Change(quantity int, price decimal.Decimal, supplierID *uuid.UUID) (int, error) {
	if err := validateIncome(quantity, price); err != nil {
		return 0, err
	}
	dif := i.IncomeQuantity - quantity
	i.IncomeQuantity = quantity
	i.IncomePrice = price.Round(2)
	i.SupplierID = supplierID
	i.Touch()
	return dif, nil
}

func validateIncome(quantity int, price decimal.Decimal) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Income quantity must be positive")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Income price cannot be negative")
	}
	return nil
}
