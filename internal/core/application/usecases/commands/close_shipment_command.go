package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCloseShipmentCommandIsNotConstructed = errors.New(
		"CloseShipmentCommand must be created via NewCloseShipmentCommand constructor",
	)

	// ErrParcelsNotTerminal blocks closing while any active package has not
	// been handed out or cancelled.
	ErrParcelsNotTerminal = errors.New("every package must reach a terminal handling stage before closing")
)

// CloseShipmentCommand closes an arrived shipment. The handler runs the
// arrival photo gate and verifies every package reached a terminal
// handling stage.
type CloseShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseShipmentCommand creates a command to close a shipment.
func NewCloseShipmentCommand(shipmentID kernel.UUID) (CloseShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return CloseShipmentCommand{}, err
	}

	return CloseShipmentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCloseShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to close.
func (c CloseShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }
