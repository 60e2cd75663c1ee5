package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUpdateParcelMeasurementsCommandIsNotConstructed = errors.New(
	"UpdateParcelMeasurementsCommand must be created via NewUpdateParcelMeasurementsCommand constructor",
)

// UpdateParcelMeasurementsCommand updates a package's weight, volume and
// note. Only allowed below the Shipped threshold; the new measurements are
// checked against the shipment's remaining capacity.
type UpdateParcelMeasurementsCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	weightKg float64
	volumeM3 float64
	note     string

	guard guard.ConstructorGuard
}

// NewUpdateParcelMeasurementsCommand creates a command to update measurements.
// Value range checks are the aggregate's responsibility.
func NewUpdateParcelMeasurementsCommand(
	parcelID kernel.UUID,
	weightKg float64,
	volumeM3 float64,
	note string,
) (UpdateParcelMeasurementsCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return UpdateParcelMeasurementsCommand{}, err
	}

	return UpdateParcelMeasurementsCommand{
		parcelID: parcelID,
		weightKg: weightKg,
		volumeM3: volumeM3,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelMeasurementsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelMeasurementsCommandIsNotConstructed)
}

// ParcelID returns the target package.
func (c UpdateParcelMeasurementsCommand) ParcelID() kernel.UUID { return c.parcelID }

// WeightKg returns the new weight.
func (c UpdateParcelMeasurementsCommand) WeightKg() float64 { return c.weightKg }

// VolumeM3 returns the new volume.
func (c UpdateParcelMeasurementsCommand) VolumeM3() float64 { return c.volumeM3 }

// Note returns the new free-text note.
func (c UpdateParcelMeasurementsCommand) Note() string { return c.note }
