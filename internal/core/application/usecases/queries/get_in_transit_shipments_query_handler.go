package queries

import (
	"context"
	"database/sql"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInTransitShipmentsQueryHandler reads the in-transit fleet straight
// from the database. Uses direct SQL for optimal read performance.
type GetInTransitShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetInTransitShipmentsQueryHandler creates a handler for fleet queries.
func NewGetInTransitShipmentsQueryHandler(db *gorm.DB) GetInTransitShipmentsQueryHandler {
	return GetInTransitShipmentsQueryHandler{db: db}
}

// Handle executes the query. Shipments are returned oldest departure
// first, so the vessel closest to arrival tops the list.
func (h GetInTransitShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetInTransitShipmentsQuery,
) ([]GetInTransitShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetInTransitShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			ref_code,
			carrier_code,
			actual_departure_at,
			total_weight_kg,
			total_volume_m3,
			tracking_vessel_name,
			tracking_status,
			tracking_eta,
			tracking_last_synced_at
		FROM shipments
		WHERE status = ?
		ORDER BY actual_departure_at
	`, int(shipment.Departed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetInTransitShipmentsQueryResponse
		var id uuid.UUID
		var vesselName, trackingStatus sql.NullString

		err = rows.Scan(
			&id,
			&resp.RefCode,
			&resp.CarrierCode,
			&resp.ActualDepartureAt,
			&resp.TotalWeightKg,
			&resp.TotalVolumeM3,
			&vesselName,
			&trackingStatus,
			&resp.ETA,
			&resp.LastSyncedAt,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID
		resp.VesselName = vesselName.String
		resp.TrackingStatus = trackingStatus.String

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
