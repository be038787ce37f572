package inventory

import (
	"context"
	"fmt"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/inventory"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// ConsumeStock takes quantity units of a product out of stock, oldest lots first.
// It must run inside a transaction: lots are read with row locks and a shortage
// aborts with ErrInsufficientStock before anything is written.
// The product is marked sold out once no lot remains.
func ConsumeStock(
	ctx context.Context,
	stockRepo inventory.StockRepository,
	productRepo catalog.ProductRepository,
	productID uuid.UUID,
	quantity int,
) error {
	if quantity <= 0 {
		return nil
	}

	lots, err := stockRepo.FindByProductForUpdate(ctx, productID)
	if err != nil {
		return fmt.Errorf("lock stock of product %s: %w", productID, err)
	}

	plan := inventory.PlanConsumption(lots, quantity)
	if plan.Shortage > 0 {
		return shared.ErrInsufficientStock.WithMessage(
			fmt.Sprintf("Only %d of %d units left", quantity-plan.Shortage, quantity))
	}

	for _, id := range plan.Deleted {
		if err := stockRepo.Delete(ctx, id); err != nil {
			return err
		}
	}
	for i := range plan.Updated {
		lot := plan.Updated[i]
		lot.Touch()
		if err := stockRepo.Save(ctx, &lot); err != nil {
			return err
		}
	}
	if plan.Exhausted {
		return productRepo.SetSold(ctx, productID, true)
	}
	return nil
}
