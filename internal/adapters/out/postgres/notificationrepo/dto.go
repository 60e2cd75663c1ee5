// Package notificationrepo provides data transfer objects and mapping
// functions for campaign and delivery log persistence.
package notificationrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// CampaignDTO represents one notification campaign run.
type CampaignDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID     uuid.UUID `gorm:"type:uuid;index"`
	Kind           int
	Message        string
	Actor          string
	RecipientCount int
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// TableName specifies the database table name for campaign runs.
func (CampaignDTO) TableName() string {
	return "campaigns"
}

// DeliveryLogDTO represents one per-recipient delivery outcome.
type DeliveryLogDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CampaignID uuid.UUID `gorm:"type:uuid;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Phone      string
	Result     int
	Detail     string
	CreatedAt  time.Time
}

// TableName specifies the database table name for delivery log rows.
func (DeliveryLogDTO) TableName() string {
	return "delivery_logs"
}

// campaignFromDomain converts a campaign to its database representation.
func campaignFromDomain(aggregate *notification.Campaign) CampaignDTO {
	return CampaignDTO{
		ID:             aggregate.ID().Bytes(),
		ShipmentID:     aggregate.ShipmentID().Bytes(),
		Kind:           int(aggregate.Kind()),
		Message:        aggregate.Message(),
		Actor:          aggregate.Actor(),
		RecipientCount: aggregate.RecipientCount(),
		CreatedAt:      aggregate.CreatedAt(),
		CompletedAt:    aggregate.CompletedAt(),
	}
}

// campaignToDomain converts a database DTO to a campaign.
func campaignToDomain(dto CampaignDTO) (*notification.Campaign, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreCampaign(
		id,
		shipmentID,
		notification.CampaignType(dto.Kind),
		dto.Message,
		dto.Actor,
		dto.RecipientCount,
		dto.CreatedAt,
		dto.CompletedAt,
	)
}

// logFromDomain converts a delivery log row to its database representation.
func logFromDomain(row *notification.DeliveryLog) DeliveryLogDTO {
	return DeliveryLogDTO{
		ID:         row.ID().Bytes(),
		CampaignID: row.CampaignID().Bytes(),
		CustomerID: row.CustomerID().Bytes(),
		Phone:      row.Phone(),
		Result:     int(row.Result()),
		Detail:     row.Detail(),
		CreatedAt:  row.CreatedAt(),
	}
}
