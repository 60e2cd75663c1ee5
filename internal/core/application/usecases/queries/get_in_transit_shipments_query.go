// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetInTransitShipmentsQueryIsNotConstructed = errors.New(
	"GetInTransitShipmentsQuery must be created via NewGetInTransitShipmentsQuery constructor",
)

// GetInTransitShipmentsQuery retrieves every shipment currently on the
// water, together with its latest carrier tracking snapshot. Used by the
// operations dashboard to watch the active fleet.
type GetInTransitShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInTransitShipmentsQuery creates a query for the in-transit fleet.
func NewGetInTransitShipmentsQuery() GetInTransitShipmentsQuery {
	return GetInTransitShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInTransitShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetInTransitShipmentsQueryIsNotConstructed)
}

// GetInTransitShipmentsQueryResponse is one in-transit shipment in the
// read model. Tracking fields are empty until the first successful sync.
type GetInTransitShipmentsQueryResponse struct {
	ID                kernel.UUID
	RefCode           string
	CarrierCode       string
	ActualDepartureAt *time.Time
	TotalWeightKg     float64
	TotalVolumeM3     float64
	VesselName        string
	TrackingStatus    string
	ETA               *time.Time
	LastSyncedAt      *time.Time
}
