package parcel

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of a package's contents: a good type and a quantity.
// Items are owned by their Parcel and mutable only while the parcel is
// below the Shipped threshold.
type Item struct {
	id         kernel.UUID
	goodTypeID kernel.UUID
	quantity   int
	note       string

	isConstructed bool
}

// NewItem creates a content line for the given good type. Quantity must be positive.
func NewItem(id, goodTypeID kernel.UUID, quantity int, note string) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setGoodTypeID(goodTypeID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.note = note
	return item, nil
}

// RestoreItem reconstructs an Item from persistent storage.
func RestoreItem(id, goodTypeID kernel.UUID, quantity int, note string) (*Item, error) {
	return NewItem(id, goodTypeID, quantity, note)
}

// Validate ensures the Item was created through the constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// GoodTypeID returns the referenced good type.
func (i *Item) GoodTypeID() kernel.UUID { return i.goodTypeID }

// Quantity returns the number of units.
func (i *Item) Quantity() int { return i.quantity }

// Note returns the free-text note.
func (i *Item) Note() string { return i.note }

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setGoodTypeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("good type", err)
	}
	i.goodTypeID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	i.quantity = quantity
	return nil
}
