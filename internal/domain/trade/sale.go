package trade

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// Sale records payment and delivery destination of a completed order
type Sale struct {
	shared.BaseEntity
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SaleDate   time.Time `gorm:"not null"`
	Region     string    `gorm:"type:varchar(80);not null"`
	City       string    `gorm:"type:varchar(80);not null"`
	Department string    `gorm:"type:varchar(8);not null"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// Delivery is the destination a sale ships to
type Delivery struct {
	Region     string
	City       string
	Department string
}

// NewSale records the sale of a completed order
func NewSale(order *Order, d Delivery) (*Sale, error) {
	if order == nil || !order.Complete {
		return nil, shared.ErrInvalidState.WithMessage("Only a completed order can be sold")
	}
	d.Region = strings.TrimSpace(d.Region)
	d.City = strings.TrimSpace(d.City)
	d.Department = strings.TrimSpace(d.Department)
	if d.Region == "" || d.City == "" || d.Department == "" {
		return nil, shared.NewDomainError("INVALID_DELIVERY", "Region, city and department are required")
	}
	if utf8.RuneCountInString(d.Region) > 80 || utf8.RuneCountInString(d.City) > 80 {
		return nil, shared.NewDomainError("INVALID_DELIVERY", "Region and city cannot exceed 80 characters")
	}
	if utf8.RuneCountInString(d.Department) > 8 {
		return nil, shared.NewDomainError("INVALID_DELIVERY", "Department cannot exceed 8 characters")
	}
	base := shared.NewBaseEntity()
	return &Sale{
		BaseEntity: base,
		OrderID:    order.ID,
		SaleDate:   base.CreatedAt,
		Region:     d.Region,
		City:       d.City,
		Department: d.Department,
	}, nil
}
