package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRemoveParcelItemCommandIsNotConstructed = errors.New(
	"RemoveParcelItemCommand must be created via NewRemoveParcelItemCommand constructor",
)

// RemoveParcelItemCommand deletes a content line from a package.
type RemoveParcelItemCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	itemID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveParcelItemCommand creates a command to delete a content line.
func NewRemoveParcelItemCommand(parcelID, itemID kernel.UUID) (RemoveParcelItemCommand, error) {
	if err := errors.Join(parcelID.Validate(), itemID.Validate()); err != nil {
		return RemoveParcelItemCommand{}, err
	}

	return RemoveParcelItemCommand{
		parcelID: parcelID,
		itemID:   itemID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveParcelItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveParcelItemCommandIsNotConstructed)
}

// ParcelID returns the target package.
func (c RemoveParcelItemCommand) ParcelID() kernel.UUID { return c.parcelID }

// ItemID returns the content line to delete.
func (c RemoveParcelItemCommand) ItemID() kernel.UUID { return c.itemID }
