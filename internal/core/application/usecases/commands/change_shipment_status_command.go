package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/guard"
)

var (
	ErrChangeShipmentStatusCommandIsNotConstructed = errors.New(
		"ChangeShipmentStatusCommand must be created via NewChangeShipmentStatusCommand constructor",
	)

	// ErrUseDepartShipmentCommand rejects Departed as a plain status change.
	// Departure runs the photo gate and has its own command.
	ErrUseDepartShipmentCommand = errors.New("departure must go through the depart operation")

	// ErrUseCloseShipmentCommand rejects Closed as a plain status change.
	// Closing verifies every package reached a terminal handling stage.
	ErrUseCloseShipmentCommand = errors.New("closing must go through the close operation")
)

// ChangeShipmentStatusCommand moves a shipment to a new lifecycle status.
// Departed and Closed are excluded here: those transitions carry extra
// checks and have dedicated commands.
type ChangeShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	target     shipment.Status

	guard guard.ConstructorGuard
}

// NewChangeShipmentStatusCommand creates a command for a plain status move.
func NewChangeShipmentStatusCommand(shipmentID kernel.UUID, target shipment.Status) (ChangeShipmentStatusCommand, error) {
	command := ChangeShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(shipmentID.Validate(), target.Validate()); err != nil {
		return ChangeShipmentStatusCommand{}, err
	}
	switch target {
	case shipment.Departed:
		return ChangeShipmentStatusCommand{}, ErrUseDepartShipmentCommand
	case shipment.Closed:
		return ChangeShipmentStatusCommand{}, ErrUseCloseShipmentCommand
	}

	command.shipmentID = shipmentID
	command.target = target
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the target shipment.
func (c ChangeShipmentStatusCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Target returns the requested status.
func (c ChangeShipmentStatusCommand) Target() shipment.Status { return c.target }
