package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for package aggregates,
// their content items and their pricing override audit rows.
type ParcelRepository interface {
	// Add persists a new package aggregate, including its items.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing package aggregate. Items are
	// replaced wholesale; override rows are written through AddOverride.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a package aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetAllByShipment retrieves every package of a shipment.
	GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*parcel.Parcel, error)

	// AddOverride appends one pricing override audit row. Rows are never
	// updated or deleted.
	AddOverride(ctx context.Context, row *parcel.Override) error

	// GetOverrides retrieves a package's override audit rows in
	// application order.
	GetOverrides(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Override, error)
}
