// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. It implements the repository pattern for the
// shipment aggregate, converting between domain entities and database rows.
package shipmentrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The carrier tracking snapshot is embedded; its columns stay
// NULL until the first successful sync.
type ShipmentDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	RefCode                string    `gorm:"uniqueIndex"`
	CarrierCode            string
	OriginWarehouseID      uuid.UUID `gorm:"type:uuid;index"`
	DestinationWarehouseID uuid.UUID `gorm:"type:uuid;index"`
	PlannedDeparture       time.Time
	PlannedArrival         time.Time
	ActualDepartureAt      *time.Time
	ActualArrivalAt        *time.Time
	MaxWeightKg            float64
	MaxVolumeM3            float64
	TotalWeightKg          float64
	TotalVolumeM3          float64
	Status                 int         `gorm:"index"`
	Tracking               TrackingDTO `gorm:"embedded;embeddedPrefix:tracking_"`
	CreatedAt              time.Time   `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// TrackingDTO represents the embedded carrier tracking snapshot within the
// shipment table. LastSyncedAt doubles as the presence marker: when it is
// NULL the shipment has never been synced.
type TrackingDTO struct {
	Code         string
	VesselName   string
	Origin       string
	Destination  string
	ETA          *time.Time
	Status       string
	LastSyncedAt *time.Time
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	dto := ShipmentDTO{
		ID:                     aggregate.ID().Bytes(),
		RefCode:                aggregate.RefCode(),
		CarrierCode:            aggregate.CarrierCode(),
		OriginWarehouseID:      aggregate.Route().Origin().Bytes(),
		DestinationWarehouseID: aggregate.Route().Destination().Bytes(),
		PlannedDeparture:       aggregate.PlannedDeparture(),
		PlannedArrival:         aggregate.PlannedArrival(),
		ActualDepartureAt:      aggregate.ActualDepartureAt(),
		ActualArrivalAt:        aggregate.ActualArrivalAt(),
		MaxWeightKg:            aggregate.MaxWeightKg(),
		MaxVolumeM3:            aggregate.MaxVolumeM3(),
		TotalWeightKg:          aggregate.TotalWeightKg(),
		TotalVolumeM3:          aggregate.TotalVolumeM3(),
		Status:                 int(aggregate.Status()),
	}

	if snapshot := aggregate.Tracking(); snapshot != nil {
		syncedAt := snapshot.LastSyncedAt
		dto.Tracking = TrackingDTO{
			Code:         snapshot.Code,
			VesselName:   snapshot.Name,
			Origin:       snapshot.Origin,
			Destination:  snapshot.Destination,
			ETA:          snapshot.ETA,
			Status:       snapshot.Status,
			LastSyncedAt: &syncedAt,
		}
	}

	return dto
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	originID, err := kernel.UUIDFromBytes(dto.OriginWarehouseID[:])
	if err != nil {
		return nil, err
	}
	destinationID, err := kernel.UUIDFromBytes(dto.DestinationWarehouseID[:])
	if err != nil {
		return nil, err
	}
	route, err := kernel.NewRoute(originID, destinationID)
	if err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tracking *shipment.TrackingSnapshot
	if dto.Tracking.LastSyncedAt != nil {
		tracking = &shipment.TrackingSnapshot{
			Code:         dto.Tracking.Code,
			Name:         dto.Tracking.VesselName,
			Origin:       dto.Tracking.Origin,
			Destination:  dto.Tracking.Destination,
			ETA:          dto.Tracking.ETA,
			Status:       dto.Tracking.Status,
			LastSyncedAt: *dto.Tracking.LastSyncedAt,
		}
	}

	return shipment.RestoreShipment(
		id,
		dto.RefCode,
		dto.CarrierCode,
		route,
		dto.PlannedDeparture,
		dto.PlannedArrival,
		dto.ActualDepartureAt,
		dto.ActualArrivalAt,
		dto.MaxWeightKg,
		dto.MaxVolumeM3,
		dto.TotalWeightKg,
		dto.TotalVolumeM3,
		shipment.Status(dto.Status),
		tracking,
	)
}
