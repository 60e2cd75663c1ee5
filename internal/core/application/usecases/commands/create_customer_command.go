package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer in the directory. Consent
// starts absent, which the dispatcher treats as fully opted out.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	displayName string
	phone       string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Name and phone validation belongs to the aggregate.
func NewCreateCustomerCommand(customerID kernel.UUID, displayName, phone string) (CreateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		customerID:  customerID,
		displayName: displayName,
		phone:       phone,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// DisplayName returns the human-readable name.
func (c CreateCustomerCommand) DisplayName() string { return c.displayName }

// Phone returns the WhatsApp delivery address.
func (c CreateCustomerCommand) Phone() string { return c.phone }
