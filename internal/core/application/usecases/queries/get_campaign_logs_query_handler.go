package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCampaignLogsQueryHandler reads per-recipient delivery outcomes.
type GetCampaignLogsQueryHandler struct {
	db *gorm.DB
}

// NewGetCampaignLogsQueryHandler creates a handler for delivery log queries.
func NewGetCampaignLogsQueryHandler(db *gorm.DB) GetCampaignLogsQueryHandler {
	return GetCampaignLogsQueryHandler{db: db}
}

// Handle executes the query. Rows come back in delivery order.
func (h GetCampaignLogsQueryHandler) Handle(
	ctx context.Context,
	query GetCampaignLogsQuery,
) ([]GetCampaignLogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	logs := make([]GetCampaignLogsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.customer_id,
			c.display_name,
			l.phone,
			l.result,
			l.detail,
			l.created_at
		FROM delivery_logs l
		JOIN customers c ON c.id = l.customer_id
		WHERE l.campaign_id = ?
		ORDER BY l.created_at
	`, query.CampaignID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCampaignLogsQueryResponse
		var id, customerID uuid.UUID
		var result int

		err = rows.Scan(
			&id,
			&customerID,
			&resp.CustomerName,
			&resp.Phone,
			&result,
			&resp.Detail,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		logID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		recipientID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = logID
		resp.CustomerID = recipientID
		resp.Result = notification.DeliveryResult(result).String()

		logs = append(logs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
