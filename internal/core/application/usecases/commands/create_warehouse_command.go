package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCreateWarehouseCommandIsNotConstructed = errors.New(
	"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
)

// CreateWarehouseCommand registers a warehouse as a route endpoint.
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	code        string
	name        string
	city        string
	country     string

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand creates a command to register a warehouse.
func NewCreateWarehouseCommand(
	warehouseID kernel.UUID,
	code, name, city, country string,
) (CreateWarehouseCommand, error) {
	if err := warehouseID.Validate(); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return CreateWarehouseCommand{
		warehouseID: warehouseID,
		code:        code,
		name:        name,
		city:        city,
		country:     country,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

// WarehouseID returns the identifier for the new warehouse.
func (c CreateWarehouseCommand) WarehouseID() kernel.UUID { return c.warehouseID }

// Code returns the short code used in reference codes.
func (c CreateWarehouseCommand) Code() string { return c.code }

// Name returns the human-readable name.
func (c CreateWarehouseCommand) Name() string { return c.name }

// City returns the warehouse's city.
func (c CreateWarehouseCommand) City() string { return c.city }

// Country returns the warehouse's country.
func (c CreateWarehouseCommand) Country() string { return c.country }
