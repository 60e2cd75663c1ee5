package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"
)

// MediaRepository defines the persistence contract for append-only photo
// records.
type MediaRepository interface {
	// Add appends one photo record. Records are never updated or deleted.
	Add(ctx context.Context, record *media.Media) error

	// GetAllByParcel retrieves every photo record of a package.
	GetAllByParcel(ctx context.Context, parcelID kernel.UUID) ([]*media.Media, error)

	// GetAllByShipment retrieves every photo record across a shipment's
	// packages, used by the departure gate and photo campaigns.
	GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*media.Media, error)
}
