package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAddParcelItemCommandIsNotConstructed = errors.New(
	"AddParcelItemCommand must be created via NewAddParcelItemCommand constructor",
)

// AddParcelItemCommand appends a content line to a package.
type AddParcelItemCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
	itemID     kernel.UUID
	goodTypeID kernel.UUID
	quantity   int
	note       string

	guard guard.ConstructorGuard
}

// NewAddParcelItemCommand creates a command to append a content line.
func NewAddParcelItemCommand(
	parcelID kernel.UUID,
	itemID kernel.UUID,
	goodTypeID kernel.UUID,
	quantity int,
	note string,
) (AddParcelItemCommand, error) {
	if err := errors.Join(
		parcelID.Validate(),
		itemID.Validate(),
		goodTypeID.Validate(),
	); err != nil {
		return AddParcelItemCommand{}, err
	}

	return AddParcelItemCommand{
		parcelID:   parcelID,
		itemID:     itemID,
		goodTypeID: goodTypeID,
		quantity:   quantity,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddParcelItemCommand) Validate() error {
	return c.guard.Validate(ErrAddParcelItemCommandIsNotConstructed)
}

// ParcelID returns the target package.
func (c AddParcelItemCommand) ParcelID() kernel.UUID { return c.parcelID }

// ItemID returns the identifier for the new line.
func (c AddParcelItemCommand) ItemID() kernel.UUID { return c.itemID }

// GoodTypeID returns the referenced good type.
func (c AddParcelItemCommand) GoodTypeID() kernel.UUID { return c.goodTypeID }

// Quantity returns the number of units.
func (c AddParcelItemCommand) Quantity() int { return c.quantity }

// Note returns the free-text note.
func (c AddParcelItemCommand) Note() string { return c.note }
