package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/supplyorder"
)

// SupplyOrderRepository defines the persistence contract for supply orders.
type SupplyOrderRepository interface {
	// Add persists a new supply order.
	Add(ctx context.Context, aggregate *supplyorder.SupplyOrder) error

	// Update persists changes to an existing supply order.
	Update(ctx context.Context, aggregate *supplyorder.SupplyOrder) error

	// Get retrieves a supply order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*supplyorder.SupplyOrder, error)
}
