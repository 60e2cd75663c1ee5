package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetCampaignsQueryIsNotConstructed = errors.New(
	"GetCampaignsQuery must be created via NewGetCampaignsQuery constructor",
)

// GetCampaignsQuery lists the notification campaigns run against one
// shipment, newest first, with per-outcome delivery counts.
type GetCampaignsQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCampaignsQuery creates a query for a shipment's campaign history.
func NewGetCampaignsQuery(shipmentID kernel.UUID) (GetCampaignsQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetCampaignsQuery{}, err
	}

	return GetCampaignsQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCampaignsQuery) Validate() error {
	return q.guard.Validate(ErrGetCampaignsQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose campaigns are listed.
func (q GetCampaignsQuery) ShipmentID() kernel.UUID { return q.shipmentID }

// GetCampaignsQueryResponse is one campaign run in the read model.
type GetCampaignsQueryResponse struct {
	ID             kernel.UUID
	Kind           string
	Message        string
	Actor          string
	RecipientCount int
	SentCount      int
	FailedCount    int
	SkippedCount   int
	CreatedAt      time.Time
	CompletedAt    *time.Time
}
