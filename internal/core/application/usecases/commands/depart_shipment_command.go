package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDepartShipmentCommandIsNotConstructed = errors.New(
	"DepartShipmentCommand must be created via NewDepartShipmentCommand constructor",
)

// DepartShipmentCommand triggers a shipment's departure. The handler runs
// the departure photo gate over every active package before the transition;
// a single non-compliant package blocks the whole shipment.
type DepartShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDepartShipmentCommand creates a command to depart a shipment.
func NewDepartShipmentCommand(shipmentID kernel.UUID) (DepartShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return DepartShipmentCommand{}, err
	}

	return DepartShipmentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DepartShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDepartShipmentCommandIsNotConstructed)
}

// ShipmentID returns the departing shipment.
func (c DepartShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }
