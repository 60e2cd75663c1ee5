package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUpdateCarrierCodeCommandIsNotConstructed = errors.New(
	"UpdateCarrierCodeCommand must be created via NewUpdateCarrierCodeCommand constructor",
)

// UpdateCarrierCodeCommand attaches or replaces a shipment's carrier
// booking code. Only allowed while the shipment is in Draft.
type UpdateCarrierCodeCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	carrierCode string

	guard guard.ConstructorGuard
}

// NewUpdateCarrierCodeCommand creates a command to set a carrier code.
// The code itself is validated by the aggregate, which normalizes it.
func NewUpdateCarrierCodeCommand(shipmentID kernel.UUID, carrierCode string) (UpdateCarrierCodeCommand, error) {
	command := UpdateCarrierCodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := shipmentID.Validate(); err != nil {
		return UpdateCarrierCodeCommand{}, err
	}

	command.shipmentID = shipmentID
	command.carrierCode = carrierCode
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCarrierCodeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCarrierCodeCommandIsNotConstructed)
}

// ShipmentID returns the target shipment.
func (c UpdateCarrierCodeCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// CarrierCode returns the raw carrier code to attach.
func (c UpdateCarrierCodeCommand) CarrierCode() string { return c.carrierCode }
