package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOverrideHistoryQueryHandler reads pricing override audit rows.
type GetOverrideHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOverrideHistoryQueryHandler creates a handler for audit trail queries.
func NewGetOverrideHistoryQueryHandler(db *gorm.DB) GetOverrideHistoryQueryHandler {
	return GetOverrideHistoryQueryHandler{db: db}
}

// Handle executes the query. Rows come back newest first.
func (h GetOverrideHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOverrideHistoryQuery,
) ([]GetOverrideHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetOverrideHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			original_value,
			new_value,
			reason,
			actor,
			created_at
		FROM pricing_overrides
		WHERE parcel_id = ?
		ORDER BY created_at DESC
	`, query.ParcelID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverrideHistoryQueryResponse
		var id uuid.UUID
		var kind int
		var originalValue, newValue string

		err = rows.Scan(
			&id,
			&kind,
			&originalValue,
			&newValue,
			&resp.Reason,
			&resp.Actor,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		overrideID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = overrideID
		resp.Kind = parcel.OverrideKind(kind).String()

		if resp.OriginalValue, err = decimal.NewFromString(originalValue); err != nil {
			return nil, err
		}
		if resp.NewValue, err = decimal.NewFromString(newValue); err != nil {
			return nil, err
		}

		history = append(history, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
