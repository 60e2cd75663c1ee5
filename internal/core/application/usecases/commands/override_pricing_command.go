package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrOverridePricingCommandIsNotConstructed = errors.New(
	"OverridePricingCommand must be created via NewOverridePricingCommand constructor",
)

// OverridePricingCommand applies one manual pricing correction to a
// package. Every application leaves an immutable audit row; the command
// requires a non-blank reason and the acting operator.
type OverridePricingCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	kind     parcel.OverrideKind
	newValue decimal.Decimal
	reason   string
	actor    string

	guard guard.ConstructorGuard
}

// NewOverridePricingCommand creates a command to override pricing.
func NewOverridePricingCommand(
	parcelID kernel.UUID,
	kind parcel.OverrideKind,
	newValue decimal.Decimal,
	reason string,
	actor string,
) (OverridePricingCommand, error) {
	if err := errors.Join(parcelID.Validate(), kind.Validate()); err != nil {
		return OverridePricingCommand{}, err
	}
	if reason == "" {
		return OverridePricingCommand{}, errs.NewValueIsRequiredError("reason")
	}
	if actor == "" {
		return OverridePricingCommand{}, errs.NewValueIsRequiredError("actor")
	}

	return OverridePricingCommand{
		parcelID: parcelID,
		kind:     kind,
		newValue: newValue,
		reason:   reason,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OverridePricingCommand) Validate() error {
	return c.guard.Validate(ErrOverridePricingCommandIsNotConstructed)
}

// ParcelID returns the target package.
func (c OverridePricingCommand) ParcelID() kernel.UUID { return c.parcelID }

// Kind returns which pricing value to change.
func (c OverridePricingCommand) Kind() parcel.OverrideKind { return c.kind }

// NewValue returns the manually entered replacement value.
func (c OverridePricingCommand) NewValue() decimal.Decimal { return c.newValue }

// Reason returns the mandatory justification.
func (c OverridePricingCommand) Reason() string { return c.reason }

// Actor returns the operator applying the override.
func (c OverridePricingCommand) Actor() string { return c.actor }
