package inventory

import (
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock is a lot of goods on hand. Every income produces exactly one lot,
// lots are consumed oldest first.
type Stock struct {
	shared.BaseEntity
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	IncomeID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Quantity   int             `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SupplierID *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Stock) TableName() string {
	return "stock"
}

// NewStockFromIncome opens the lot for a fresh income
func NewStockFromIncome(income *Income) (*Stock, error) {
	if income == nil || income.ProductID == nil {
		return nil, shared.NewDomainError("INVALID_INCOME", "Income must reference a product")
	}
	return &Stock{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  *income.ProductID,
		IncomeID:   income.ID,
		Quantity:   income.IncomeQuantity,
		Price:      income.IncomePrice,
		SupplierID: income.SupplierID,
	}, nil
}

// PriceTotal is the value of the lot
func (s *Stock) PriceTotal() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.Quantity))).Round(2)
}

// ApplyIncomeChange reconciles the lot after its income was edited.
// dif is previous minus new income quantity. It returns true when the
// lot is used up and must be deleted.
func (s *Stock) ApplyIncomeChange(dif int, price decimal.Decimal, supplierID *uuid.UUID) bool {
	s.Price = price.Round(2)
	s.SupplierID = supplierID
	if s.Quantity <= dif {
		s.Quantity = 0
		return true
	}
	s.Quantity -= dif
	s.Touch()
	return false
}

// ProductStock summarises all lots of one product
type ProductStock struct {
	ProductID  uuid.UUID
	Quantity   int
	PriceTotal decimal.Decimal
	Lots       int
}
