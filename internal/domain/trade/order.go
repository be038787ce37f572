package trade

import (
	"time"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// Order is a buyer's basket. An incomplete order is the server-side cart
// of a registered buyer; checkout completes it.
type Order struct {
	shared.BaseEntity
	BuyerID   uuid.UUID   `gorm:"type:uuid;not null;index"`
	OrderedAt time.Time   `gorm:"not null"`
	Complete  bool        `gorm:"not null"`
	Items     []OrderItem `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder opens an incomplete order for a buyer
func NewOrder(buyerID uuid.UUID) (*Order, error) {
	if buyerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUYER", "Buyer is required")
	}
	o := &Order{
		BaseEntity: shared.NewBaseEntity(),
		BuyerID:    buyerID,
	}
	o.OrderedAt = o.CreatedAt
	return o, nil
}

// MarkComplete closes the order
func (o *Order) MarkComplete() {
	o.Complete = true
	o.Touch()
}

// ItemCount is the sum of item quantities
func (o *Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// OrderItem is one product line of an order
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null"`
	AddedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates an order line
func NewOrderItem(orderID, productID uuid.UUID, quantity int) (*OrderItem, error) {
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if orderID == uuid.Nil || productID == uuid.Nil {
		return nil, shared.ErrInvalidInput
	}
	base := shared.NewBaseEntity()
	return &OrderItem{
		BaseEntity: base,
		OrderID:    orderID,
		ProductID:  productID,
		Quantity:   quantity,
		AddedAt:    base.CreatedAt,
	}, nil
}

// CartAction is a single-step change of a cart line
type CartAction string

const (
	CartActionAdd    CartAction = "add"
	CartActionRemove CartAction = "remove"
)

// ParseCartAction validates an action name
func ParseCartAction(s string) (CartAction, error) {
	switch CartAction(s) {
	case CartActionAdd, CartActionRemove:
		return CartAction(s), nil
	}
	return "", shared.NewDomainError("INVALID_CART_ACTION", "Action must be 'add' or 'remove'")
}

// Apply changes the quantity by one and reports whether the line should be removed
func (i *OrderItem) Apply(action CartAction) bool {
	switch action {
	case CartActionAdd:
		i.Quantity++
	case CartActionRemove:
		i.Quantity--
	}
	i.Touch()
	return i.Quantity <= 0
}
