package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrSyncTrackingCommandIsNotConstructed = errors.New(
	"SyncTrackingCommand must be created via NewSyncTrackingCommand constructor",
)

// SyncTrackingCommand refreshes one shipment's carrier tracking snapshot.
// Issued per shipment by the periodic sync job and by manual refresh.
type SyncTrackingCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSyncTrackingCommand creates a command to sync one shipment's tracking.
func NewSyncTrackingCommand(shipmentID kernel.UUID) (SyncTrackingCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return SyncTrackingCommand{}, err
	}

	return SyncTrackingCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncTrackingCommand) Validate() error {
	return c.guard.Validate(ErrSyncTrackingCommandIsNotConstructed)
}

// ShipmentID returns the shipment to sync.
func (c SyncTrackingCommand) ShipmentID() kernel.UUID { return c.shipmentID }
