package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCampaignsQueryHandler reads campaign runs with aggregated delivery
// outcomes in a single pass over the delivery log.
type GetCampaignsQueryHandler struct {
	db *gorm.DB
}

// NewGetCampaignsQueryHandler creates a handler for campaign history queries.
func NewGetCampaignsQueryHandler(db *gorm.DB) GetCampaignsQueryHandler {
	return GetCampaignsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCampaignsQueryHandler) Handle(
	ctx context.Context,
	query GetCampaignsQuery,
) ([]GetCampaignsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	campaigns := make([]GetCampaignsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.kind,
			c.message,
			c.actor,
			c.recipient_count,
			COUNT(l.id) FILTER (WHERE l.result = ?) AS sent_count,
			COUNT(l.id) FILTER (WHERE l.result = ?) AS failed_count,
			COUNT(l.id) FILTER (WHERE l.result = ?) AS skipped_count,
			c.created_at,
			c.completed_at
		FROM campaigns c
		LEFT JOIN delivery_logs l ON l.campaign_id = c.id
		WHERE c.shipment_id = ?
		GROUP BY c.id
		ORDER BY c.created_at DESC
	`,
		int(notification.DeliverySent),
		int(notification.DeliveryFailed),
		int(notification.DeliverySkippedNotOptedIn),
		query.ShipmentID().String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCampaignsQueryResponse
		var id uuid.UUID
		var kind int

		err = rows.Scan(
			&id,
			&kind,
			&resp.Message,
			&resp.Actor,
			&resp.RecipientCount,
			&resp.SentCount,
			&resp.FailedCount,
			&resp.SkippedCount,
			&resp.CreatedAt,
			&resp.CompletedAt,
		)
		if err != nil {
			return nil, err
		}

		campaignID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = campaignID
		resp.Kind = notification.CampaignType(kind).String()

		campaigns = append(campaigns, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return campaigns, nil
}
