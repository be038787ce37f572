package trade

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines persistence for orders and their items.
// Filter keys: "complete" (bool), "buyer_id".
type OrderRepository interface {
	// FindByID loads an order with items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindPendingByBuyer returns the buyer's incomplete order with items
	FindPendingByBuyer(ctx context.Context, buyerID uuid.UUID) (*Order, error)
	// FindLastByBuyer returns the most recently created order with items
	FindLastByBuyer(ctx context.Context, buyerID uuid.UUID) (*Order, error)
	// FindByBuyer returns all buyer orders, newest first, with items
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, order *Order) error
	// Delete removes the order together with its items
	Delete(ctx context.Context, id uuid.UUID) error

	FindItem(ctx context.Context, orderID, productID uuid.UUID) (*OrderItem, error)
	SaveItem(ctx context.Context, item *OrderItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	DeleteItems(ctx context.Context, orderID uuid.UUID) error
	CreateItems(ctx context.Context, items []OrderItem) error
}

// SaleRepository defines persistence for sales.
// Search matches region and city.
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID]Sale, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, sale *Sale) error
}
