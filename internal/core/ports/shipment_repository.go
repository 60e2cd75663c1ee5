package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment and takes a row lock so lifecycle
	// transitions and capacity recomputations serialize per shipment.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// FindOpenOnRoute retrieves the oldest shipment on the given route that
	// still accepts packages. Returns ErrObjectNotFound when none exists.
	FindOpenOnRoute(ctx context.Context, route kernel.Route) (*shipment.Shipment, error)

	// GetAllSyncable retrieves every shipment eligible for carrier
	// tracking synchronization.
	GetAllSyncable(ctx context.Context) ([]*shipment.Shipment, error)
}
