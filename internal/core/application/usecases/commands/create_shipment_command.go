package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrPlannedWindowIsInvalid = errors.New("planned arrival must not precede planned departure")
	ErrCapacityLimitIsInvalid = errors.New("capacity limits must not be negative")
)

// CreateShipmentCommand represents a request to open a new shipment between
// two warehouses. The reference code is generated server-side; the carrier
// code is attached later, while the shipment is still in Draft.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(kernel.NewUUID(), originID, destID,
//	    departure, arrival, 10000, 60)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID             kernel.UUID
	originWarehouseID      kernel.UUID
	destinationWarehouseID kernel.UUID
	plannedDeparture       time.Time
	plannedArrival         time.Time
	maxWeightKg            float64
	maxVolumeM3            float64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a shipment.
// Validates identifiers, the planned window and the capacity limits.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	originWarehouseID kernel.UUID,
	destinationWarehouseID kernel.UUID,
	plannedDeparture time.Time,
	plannedArrival time.Time,
	maxWeightKg float64,
	maxVolumeM3 float64,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setWarehouses(originWarehouseID, destinationWarehouseID),
		command.setPlannedWindow(plannedDeparture, plannedArrival),
		command.setCapacityLimits(maxWeightKg, maxVolumeM3),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// OriginWarehouseID returns the departure warehouse.
func (c CreateShipmentCommand) OriginWarehouseID() kernel.UUID { return c.originWarehouseID }

// DestinationWarehouseID returns the arrival warehouse.
func (c CreateShipmentCommand) DestinationWarehouseID() kernel.UUID {
	return c.destinationWarehouseID
}

// PlannedDeparture returns the planned departure time.
func (c CreateShipmentCommand) PlannedDeparture() time.Time { return c.plannedDeparture }

// PlannedArrival returns the planned arrival time.
func (c CreateShipmentCommand) PlannedArrival() time.Time { return c.plannedArrival }

// MaxWeightKg returns the weight capacity limit, zero for unlimited.
func (c CreateShipmentCommand) MaxWeightKg() float64 { return c.maxWeightKg }

// MaxVolumeM3 returns the volume capacity limit, zero for unlimited.
func (c CreateShipmentCommand) MaxVolumeM3() float64 { return c.maxVolumeM3 }

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setWarehouses(origin, destination kernel.UUID) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	if origin.IsEqual(destination) {
		return kernel.ErrSameOriginAndDestination
	}
	c.originWarehouseID = origin
	c.destinationWarehouseID = destination
	return nil
}

func (c *CreateShipmentCommand) setPlannedWindow(departure, arrival time.Time) error {
	if !departure.IsZero() && !arrival.IsZero() && arrival.Before(departure) {
		return ErrPlannedWindowIsInvalid
	}
	c.plannedDeparture = departure
	c.plannedArrival = arrival
	return nil
}

func (c *CreateShipmentCommand) setCapacityLimits(maxWeightKg, maxVolumeM3 float64) error {
	if maxWeightKg < 0 || maxVolumeM3 < 0 {
		return ErrCapacityLimitIsInvalid
	}
	c.maxWeightKg = maxWeightKg
	c.maxVolumeM3 = maxVolumeM3
	return nil
}
