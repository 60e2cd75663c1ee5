package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/notification"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrSendCampaignCommandIsNotConstructed = errors.New(
	"SendCampaignCommand must be created via NewSendCampaignCommand constructor",
)

// SendCampaignCommand runs one WhatsApp notification campaign against a
// shipment. A nil customer filter targets every customer owning a package
// on the shipment; a set filter restricts the run to that single customer.
type SendCampaignCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	kind       notification.CampaignType
	message    string
	actor      string
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendCampaignCommand creates a command to run a campaign.
func NewSendCampaignCommand(
	shipmentID kernel.UUID,
	kind notification.CampaignType,
	message string,
	actor string,
	customerID *kernel.UUID,
) (SendCampaignCommand, error) {
	if err := errors.Join(shipmentID.Validate(), kind.Validate()); err != nil {
		return SendCampaignCommand{}, err
	}
	if actor == "" {
		return SendCampaignCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return SendCampaignCommand{}, err
		}
	}

	return SendCampaignCommand{
		shipmentID: shipmentID,
		kind:       kind,
		message:    message,
		actor:      actor,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendCampaignCommand) Validate() error {
	return c.guard.Validate(ErrSendCampaignCommandIsNotConstructed)
}

// ShipmentID returns the shipment whose customers are notified.
func (c SendCampaignCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Kind returns what the campaign sends.
func (c SendCampaignCommand) Kind() notification.CampaignType { return c.kind }

// Message returns the body text or photo caption.
func (c SendCampaignCommand) Message() string { return c.message }

// Actor returns who triggered the run.
func (c SendCampaignCommand) Actor() string { return c.actor }

// CustomerID returns the single-recipient filter, nil for a bulk run.
func (c SendCampaignCommand) CustomerID() *kernel.UUID { return c.customerID }
