package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/supplyorder"
	"freight/internal/pkg/guard"
)

var ErrChangeSupplyOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeSupplyOrderStatusCommand must be created via NewChangeSupplyOrderStatusCommand constructor",
)

// ChangeSupplyOrderStatusCommand moves a supply order through its
// procurement stages.
type ChangeSupplyOrderStatusCommand struct { //nolint:recvcheck //using for validation
	supplyOrderID kernel.UUID
	target        supplyorder.Status

	guard guard.ConstructorGuard
}

// NewChangeSupplyOrderStatusCommand creates a command for a supply order status move.
func NewChangeSupplyOrderStatusCommand(
	supplyOrderID kernel.UUID,
	target supplyorder.Status,
) (ChangeSupplyOrderStatusCommand, error) {
	if err := errors.Join(supplyOrderID.Validate(), target.Validate()); err != nil {
		return ChangeSupplyOrderStatusCommand{}, err
	}

	return ChangeSupplyOrderStatusCommand{
		supplyOrderID: supplyOrderID,
		target:        target,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeSupplyOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeSupplyOrderStatusCommandIsNotConstructed)
}

// SupplyOrderID returns the target supply order.
func (c ChangeSupplyOrderStatusCommand) SupplyOrderID() kernel.UUID { return c.supplyOrderID }

// Target returns the requested status.
func (c ChangeSupplyOrderStatusCommand) Target() supplyorder.Status { return c.target }
