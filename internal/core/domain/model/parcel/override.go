package parcel

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OverrideKind identifies which pricing value a manual override changed.
type OverrideKind int

const (
	// OverrideUnknown represents an invalid or undefined kind.
	OverrideUnknown OverrideKind = iota

	// OverrideRatePerWeight changes the applied per-kilogram rate and
	// recomputes the charge.
	OverrideRatePerWeight

	// OverrideRatePerVolume changes the applied per-cubic-meter rate and
	// recomputes the charge.
	OverrideRatePerVolume

	// OverrideTotalCharge sets the charge amount directly.
	OverrideTotalCharge
)

func getOverrideKindStrings() map[OverrideKind]string {
	return map[OverrideKind]string{
		OverrideUnknown:       "Unknown",
		OverrideRatePerWeight: "RatePerWeight",
		OverrideRatePerVolume: "RatePerVolume",
		OverrideTotalCharge:   "TotalCharge",
	}
}

// String returns the human-readable name of the override kind.
func (k OverrideKind) String() string {
	if str, ok := getOverrideKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values.
func (k OverrideKind) Validate() error {
	if _, ok := getOverrideKindStrings()[k]; !ok || k == OverrideUnknown {
		return errs.NewValueIsInvalidErrorWithCause("override kind is invalid",
			fmt.Errorf("%d is not a valid override kind", k))
	}
	return nil
}

// ParseOverrideKind maps a wire-level kind name to its OverrideKind value.
func ParseOverrideKind(raw string) (OverrideKind, error) {
	for kind, str := range getOverrideKindStrings() {
		if kind != OverrideUnknown && str == raw {
			return kind, nil
		}
	}
	return OverrideUnknown, errs.NewValueIsInvalidErrorWithCause("override kind is invalid",
		fmt.Errorf("%q is not a valid override kind", raw))
}

// ErrOverrideIsNotConstructed is returned when an Override was not created
// through the NewOverride constructor.
var ErrOverrideIsNotConstructed = errors.New("Override must be created via NewOverride constructor")

// Override is one immutable audit row of a manual pricing correction.
// Rows are append-only: the engine never edits or deletes them, and
// replaying a package's override rows in order reproduces its current
// applied rates and charge.
type Override struct {
	id            kernel.UUID
	parcelID      kernel.UUID
	kind          OverrideKind
	originalValue decimal.Decimal
	newValue      decimal.Decimal
	reason        string
	actor         string
	createdAt     time.Time

	isConstructed bool
}

// NewOverride creates an audit row for a single pricing override.
// The reason is mandatory; originalValue is the value in effect immediately
// before the override was applied.
func NewOverride(
	id kernel.UUID,
	parcelID kernel.UUID,
	kind OverrideKind,
	originalValue decimal.Decimal,
	newValue decimal.Decimal,
	reason string,
	actor string,
	createdAt time.Time,
) (*Override, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := parcelID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("package", err)
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}

	return &Override{
		id:            id,
		parcelID:      parcelID,
		kind:          kind,
		originalValue: originalValue,
		newValue:      newValue,
		reason:        reason,
		actor:         actor,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOverride reconstructs an Override audit row from persistent storage.
func RestoreOverride(
	id kernel.UUID,
	parcelID kernel.UUID,
	kind OverrideKind,
	originalValue decimal.Decimal,
	newValue decimal.Decimal,
	reason string,
	actor string,
	createdAt time.Time,
) (*Override, error) {
	return NewOverride(id, parcelID, kind, originalValue, newValue, reason, actor, createdAt)
}

// Validate ensures the Override was created through the constructor.
func (o *Override) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOverrideIsNotConstructed
	}
	return nil
}

// ID returns the audit row identifier.
func (o *Override) ID() kernel.UUID { return o.id }

// ParcelID returns the owning package identifier.
func (o *Override) ParcelID() kernel.UUID { return o.parcelID }

// Kind returns which pricing value the override changed.
func (o *Override) Kind() OverrideKind { return o.kind }

// OriginalValue returns the value in effect before the override.
func (o *Override) OriginalValue() decimal.Decimal { return o.originalValue }

// NewValue returns the manually entered replacement value.
func (o *Override) NewValue() decimal.Decimal { return o.newValue }

// Reason returns the mandatory human-entered justification.
func (o *Override) Reason() string { return o.reason }

// Actor returns the identifier of who applied the override.
func (o *Override) Actor() string { return o.actor }

// CreatedAt returns when the override was applied.
func (o *Override) CreatedAt() time.Time { return o.createdAt }
