package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/guard"
)

var ErrAutoAssignParcelCommandIsNotConstructed = errors.New(
	"AutoAssignParcelCommand must be created via NewAutoAssignParcelCommand constructor",
)

// AutoAssignParcelCommand registers a package on whatever shipment is open
// for its route. When no open shipment exists, a fresh Draft shipment is
// created implicitly and the package becomes its first load.
type AutoAssignParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	route         kernel.Route
	customerID    kernel.UUID
	provisioning  parcel.ProvisioningMethod
	supplyOrderID *kernel.UUID
	weightKg      float64
	volumeM3      float64
	currency      string
	note          string

	guard guard.ConstructorGuard
}

// NewAutoAssignParcelCommand creates a command to auto-assign a package to
// the route between the given warehouses.
func NewAutoAssignParcelCommand(
	parcelID kernel.UUID,
	originWarehouseID kernel.UUID,
	destinationWarehouseID kernel.UUID,
	customerID kernel.UUID,
	provisioning parcel.ProvisioningMethod,
	supplyOrderID *kernel.UUID,
	weightKg float64,
	volumeM3 float64,
	currency string,
	note string,
) (AutoAssignParcelCommand, error) {
	if err := errors.Join(
		parcelID.Validate(),
		customerID.Validate(),
		provisioning.Validate(),
	); err != nil {
		return AutoAssignParcelCommand{}, err
	}

	route, err := kernel.NewRoute(originWarehouseID, destinationWarehouseID)
	if err != nil {
		return AutoAssignParcelCommand{}, err
	}

	return AutoAssignParcelCommand{
		parcelID:      parcelID,
		route:         route,
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
func (c AutoAssignParcelCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier for the new package.
func (c AutoAssignParcelCommand) ParcelID() kernel.UUID { return c.parcelID }

// Route returns the origin/destination warehouse pair.
func (c AutoAssignParcelCommand) Route() kernel.Route { return c.route }

// CustomerID returns the owning customer.
func (c AutoAssignParcelCommand) CustomerID() kernel.UUID { return c.customerID }

// Provisioning returns how the goods were sourced.
func (c AutoAssignParcelCommand) Provisioning() parcel.ProvisioningMethod { return c.provisioning }

// SupplyOrderID returns the linked supply order, nil if none.
func (c AutoAssignParcelCommand) SupplyOrderID() *kernel.UUID { return c.supplyOrderID }

// WeightKg returns the measured weight.
func (c AutoAssignParcelCommand) WeightKg() float64 { return c.weightKg }

// VolumeM3 returns the measured volume.
func (c AutoAssignParcelCommand) VolumeM3() float64 { return c.volumeM3 }

// Currency returns the pricing currency code.
func (c AutoAssignParcelCommand) Currency() string { return c.currency }

// Note returns the free-text note.
func (c AutoAssignParcelCommand) Note() string { return c.note }
