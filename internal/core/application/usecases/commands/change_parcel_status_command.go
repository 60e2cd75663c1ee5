package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/guard"
)

var ErrChangeParcelStatusCommandIsNotConstructed = errors.New(
	"ChangeParcelStatusCommand must be created via NewChangeParcelStatusCommand constructor",
)

// ChangeParcelStatusCommand moves a package to a new handling stage.
// Shipped and HandedOut run the package-level photo gate, Packed triggers
// the pricing computation, Cancelled releases the package's capacity.
type ChangeParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	target   parcel.Status

	guard guard.ConstructorGuard
}

// NewChangeParcelStatusCommand creates a command for a package status move.
func NewChangeParcelStatusCommand(parcelID kernel.UUID, target parcel.Status) (ChangeParcelStatusCommand, error) {
	if err := errors.Join(parcelID.Validate(), target.Validate()); err != nil {
		return ChangeParcelStatusCommand{}, err
	}

	return ChangeParcelStatusCommand{
		parcelID: parcelID,
		target:   target,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the target package.
func (c ChangeParcelStatusCommand) ParcelID() kernel.UUID { return c.parcelID }

// Target returns the requested status.
func (c ChangeParcelStatusCommand) Target() parcel.Status { return c.target }
