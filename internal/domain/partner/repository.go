package partner

import (
	"context"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierRepository defines persistence for suppliers
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Supplier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BuyerRepository defines persistence for buyers.
// The "has_user" filter key (bool) selects registered or guest buyers.
type BuyerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Buyer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Buyer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Buyer, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, buyer *Buyer) error
	Delete(ctx context.Context, id uuid.UUID) error
}
