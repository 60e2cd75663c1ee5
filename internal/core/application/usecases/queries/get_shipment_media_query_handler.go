package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentMediaQueryHandler reads photo evidence rows for a shipment.
type GetShipmentMediaQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentMediaQueryHandler creates a handler for photo evidence queries.
func NewGetShipmentMediaQueryHandler(db *gorm.DB) GetShipmentMediaQueryHandler {
	return GetShipmentMediaQueryHandler{db: db}
}

// Handle executes the query. Rows come back grouped by package, newest
// photo first within each group.
func (h GetShipmentMediaQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentMediaQuery,
) ([]GetShipmentMediaQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetShipmentMediaQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.parcel_id,
			m.stage,
			m.original_key,
			m.processed_key,
			m.content_type,
			m.size_bytes,
			m.uploaded_by,
			m.created_at
		FROM parcel_media m
		JOIN parcels p ON p.id = m.parcel_id
		WHERE p.shipment_id = ?
		ORDER BY m.parcel_id, m.created_at DESC
	`, query.ShipmentID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetShipmentMediaQueryResponse
		var id, parcelID uuid.UUID
		var stage int

		err = rows.Scan(
			&id,
			&parcelID,
			&stage,
			&resp.OriginalKey,
			&resp.ProcessedKey,
			&resp.ContentType,
			&resp.SizeBytes,
			&resp.UploadedBy,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		mediaID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = mediaID
		resp.ParcelID = ownerID
		resp.Stage = media.Stage(stage).String()

		records = append(records, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
