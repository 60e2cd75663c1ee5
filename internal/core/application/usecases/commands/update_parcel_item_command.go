package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUpdateParcelItemCommandIsNotConstructed = errors.New(
	"UpdateParcelItemCommand must be created via NewUpdateParcelItemCommand constructor",
)

// UpdateParcelItemCommand replaces quantity and note of a content line.
type UpdateParcelItemCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	itemID   kernel.UUID
	quantity int
	note     string

	guard guard.ConstructorGuard
}

// NewUpdateParcelItemCommand creates a command to update a content line.
func NewUpdateParcelItemCommand(
	parcelID kernel.UUID,
	itemID kernel.UUID,
	quantity int,
	note string,
) (UpdateParcelItemCommand, error) {
	if err := errors.Join(parcelID.Validate(), itemID.Validate()); err != nil {
		return UpdateParcelItemCommand{}, err
	}

	return UpdateParcelItemCommand{
		parcelID: parcelID,
		itemID:   itemID,
		quantity: quantity,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelItemCommandIsNotConstructed)
}

// ParcelID returns the target package.
func (c UpdateParcelItemCommand) ParcelID() kernel.UUID { return c.parcelID }

// ItemID returns the content line to update.
func (c UpdateParcelItemCommand) ItemID() kernel.UUID { return c.itemID }

// Quantity returns the new number of units.
func (c UpdateParcelItemCommand) Quantity() int { return c.quantity }

// Note returns the new free-text note.
func (c UpdateParcelItemCommand) Note() string { return c.note }
