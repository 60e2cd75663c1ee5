package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetShipmentMediaQueryIsNotConstructed = errors.New(
	"GetShipmentMediaQuery must be created via NewGetShipmentMediaQuery constructor",
)

// GetShipmentMediaQuery lists the photo evidence captured for every
// package on a shipment, one row per stored photo.
type GetShipmentMediaQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentMediaQuery creates a query for a shipment's photo evidence.
func NewGetShipmentMediaQuery(shipmentID kernel.UUID) (GetShipmentMediaQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentMediaQuery{}, err
	}

	return GetShipmentMediaQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentMediaQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentMediaQueryIsNotConstructed)
}

// ShipmentID returns the shipment being inspected.
func (q GetShipmentMediaQuery) ShipmentID() kernel.UUID { return q.shipmentID }

// GetShipmentMediaQueryResponse is one stored photo in the read model.
// Keys are object storage locations, not public URLs; download links are
// presigned on demand.
type GetShipmentMediaQueryResponse struct {
	ID           kernel.UUID
	ParcelID     kernel.UUID
	Stage        string
	OriginalKey  string
	ProcessedKey string
	ContentType  string
	SizeBytes    int64
	UploadedBy   string
	CreatedAt    time.Time
}
