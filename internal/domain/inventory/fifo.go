package inventory

import (
	"github.com/google/uuid"
)

// ConsumptionPlan describes how lots change when goods leave the warehouse
type ConsumptionPlan struct {
	// Updated lots keep a reduced quantity
	Updated []Stock
	// Deleted lots are fully used up
	Deleted []uuid.UUID
	// Shortage is the part of the request no lot could cover
	Shortage int
	// Exhausted is true when no quantity remains across all lots
	Exhausted bool
}

// PlanConsumption consumes quantity from lots in the given order
// (callers pass them oldest first). Lots are not modified.
func PlanConsumption(lots []Stock, quantity int) ConsumptionPlan {
	plan := ConsumptionPlan{}
	remaining := quantity
	left := 0

	for _, lot := range lots {
		if remaining <= 0 {
			left += lot.Quantity
			continue
		}
		switch {
		case lot.Quantity <= remaining:
			remaining -= lot.Quantity
			plan.Deleted = append(plan.Deleted, lot.ID)
		default:
			lot.Quantity -= remaining
			remaining = 0
			plan.Updated = append(plan.Updated, lot)
			left += lot.Quantity
		}
	}

	plan.Shortage = remaining
	plan.Exhausted = left == 0
	return plan
}
