package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for campaigns
// and their per-recipient delivery logs.
type NotificationRepository interface {
	// AddCampaign persists a new campaign run.
	AddCampaign(ctx context.Context, aggregate *notification.Campaign) error

	// UpdateCampaign persists changes to an existing campaign run.
	UpdateCampaign(ctx context.Context, aggregate *notification.Campaign) error

	// GetCampaign retrieves a campaign by its unique identifier.
	GetCampaign(ctx context.Context, id kernel.UUID) (*notification.Campaign, error)

	// AddDeliveryLog appends one per-recipient outcome row. Rows are never
	// updated or deleted.
	AddDeliveryLog(ctx context.Context, row *notification.DeliveryLog) error
}
