package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCreateSupplyOrderCommandIsNotConstructed = errors.New(
	"CreateSupplyOrderCommand must be created via NewCreateSupplyOrderCommand constructor",
)

// CreateSupplyOrderCommand places a procurement order for goods purchased
// on a customer's behalf.
type CreateSupplyOrderCommand struct { //nolint:recvcheck //using for validation
	supplyOrderID kernel.UUID
	customerID    kernel.UUID
	supplier      string
	expectedAt    *time.Time
	note          string

	guard guard.ConstructorGuard
}

// NewCreateSupplyOrderCommand creates a command to place a supply order.
func NewCreateSupplyOrderCommand(
	supplyOrderID kernel.UUID,
	customerID kernel.UUID,
	supplier string,
	expectedAt *time.Time,
	note string,
) (CreateSupplyOrderCommand, error) {
	if err := errors.Join(supplyOrderID.Validate(), customerID.Validate()); err != nil {
		return CreateSupplyOrderCommand{}, err
	}

	return CreateSupplyOrderCommand{
		supplyOrderID: supplyOrderID,
		customerID:    customerID,
		supplier:      supplier,
		expectedAt:    expectedAt,
		note:          note,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSupplyOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateSupplyOrderCommandIsNotConstructed)
}

// SupplyOrderID returns the identifier for the new order.
func (c CreateSupplyOrderCommand) SupplyOrderID() kernel.UUID { return c.supplyOrderID }

// CustomerID returns the customer the goods are purchased for.
func (c CreateSupplyOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// Supplier returns the supplier's name.
func (c CreateSupplyOrderCommand) Supplier() string { return c.supplier }

// ExpectedAt returns the expected warehouse arrival, nil if unknown.
func (c CreateSupplyOrderCommand) ExpectedAt() *time.Time { return c.expectedAt }

// Note returns the free-text note.
func (c CreateSupplyOrderCommand) Note() string { return c.note }
