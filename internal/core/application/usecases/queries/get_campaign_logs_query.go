package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetCampaignLogsQueryIsNotConstructed = errors.New(
	"GetCampaignLogsQuery must be created via NewGetCampaignLogsQuery constructor",
)

// GetCampaignLogsQuery retrieves the per-recipient delivery log of one
// campaign run. Every targeted customer has exactly one row.
type GetCampaignLogsQuery struct {
	campaignID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCampaignLogsQuery creates a query for a campaign's delivery log.
func NewGetCampaignLogsQuery(campaignID kernel.UUID) (GetCampaignLogsQuery, error) {
	if err := campaignID.Validate(); err != nil {
		return GetCampaignLogsQuery{}, err
	}

	return GetCampaignLogsQuery{
		campaignID: campaignID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCampaignLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetCampaignLogsQueryIsNotConstructed)
}

// CampaignID returns the campaign whose log is read.
func (q GetCampaignLogsQuery) CampaignID() kernel.UUID { return q.campaignID }

// GetCampaignLogsQueryResponse is one delivery attempt in the read model.
// Detail carries the provider error text for failed sends.
type GetCampaignLogsQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	Phone        string
	Result       string
	Detail       string
	CreatedAt    time.Time
}
