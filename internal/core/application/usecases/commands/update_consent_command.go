package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUpdateConsentCommandIsNotConstructed = errors.New(
	"UpdateConsentCommand must be created via NewUpdateConsentCommand constructor",
)

// UpdateConsentCommand records a customer's notification preferences or a
// full opt-out. Opting out wins over any category flags in the same call.
type UpdateConsentCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	statusUpdates   bool
	departurePhotos bool
	arrivalPhotos   bool
	optOut          bool

	guard guard.ConstructorGuard
}

// NewUpdateConsentCommand creates a command to update consent.
func NewUpdateConsentCommand(
	customerID kernel.UUID,
	statusUpdates bool,
	departurePhotos bool,
	arrivalPhotos bool,
	optOut bool,
) (UpdateConsentCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateConsentCommand{}, err
	}

	return UpdateConsentCommand{
		customerID:      customerID,
		statusUpdates:   statusUpdates,
		departurePhotos: departurePhotos,
		arrivalPhotos:   arrivalPhotos,
		optOut:          optOut,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateConsentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateConsentCommandIsNotConstructed)
}

// CustomerID returns the target customer.
func (c UpdateConsentCommand) CustomerID() kernel.UUID { return c.customerID }

// StatusUpdates returns the status update opt-in.
func (c UpdateConsentCommand) StatusUpdates() bool { return c.statusUpdates }

// DeparturePhotos returns the departure photo opt-in.
func (c UpdateConsentCommand) DeparturePhotos() bool { return c.departurePhotos }

// ArrivalPhotos returns the arrival photo opt-in.
func (c UpdateConsentCommand) ArrivalPhotos() bool { return c.arrivalPhotos }

// OptOut reports a full opt-out request.
func (c UpdateConsentCommand) OptOut() bool { return c.optOut }
