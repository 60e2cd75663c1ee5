package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand registers a package on an existing shipment.
// Auto-assignment onto an open shipment has its own command.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	shipmentID    kernel.UUID
	customerID    kernel.UUID
	provisioning  parcel.ProvisioningMethod
	supplyOrderID *kernel.UUID
	weightKg      float64
	volumeM3      float64
	currency      string
	note          string

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a package.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	shipmentID kernel.UUID,
	customerID kernel.UUID,
	provisioning parcel.ProvisioningMethod,
	supplyOrderID *kernel.UUID,
	weightKg float64,
	volumeM3 float64,
	currency string,
	note string,
) (CreateParcelCommand, error) {
	if err := errors.Join(
		parcelID.Validate(),
		shipmentID.Validate(),
		customerID.Validate(),
		provisioning.Validate(),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return CreateParcelCommand{
		parcelID:      parcelID,
		shipmentID:    shipmentID,
		customerID:    customerID,
		provisioning:  provisioning,
		supplyOrderID: supplyOrderID,
		weightKg:      weightKg,
		volumeM3:      volumeM3,
		currency:      currency,
		note:          note,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier for the new package.
func (c CreateParcelCommand) ParcelID() kernel.UUID { return c.parcelID }

// ShipmentID returns the owning shipment.
func (c CreateParcelCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// CustomerID returns the owning customer.
func (c CreateParcelCommand) CustomerID() kernel.UUID { return c.customerID }

// Provisioning returns how the goods were sourced.
func (c CreateParcelCommand) Provisioning() parcel.ProvisioningMethod { return c.provisioning }

// SupplyOrderID returns the linked supply order, nil if none.
func (c CreateParcelCommand) SupplyOrderID() *kernel.UUID { return c.supplyOrderID }

// WeightKg returns the measured weight.
func (c CreateParcelCommand) WeightKg() float64 { return c.weightKg }

// VolumeM3 returns the measured volume.
func (c CreateParcelCommand) VolumeM3() float64 { return c.volumeM3 }

// Currency returns the pricing currency code.
func (c CreateParcelCommand) Currency() string { return c.currency }

// Note returns the free-text note.
func (c CreateParcelCommand) Note() string { return c.note }
