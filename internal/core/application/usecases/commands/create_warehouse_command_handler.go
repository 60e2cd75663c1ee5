package commands

import (
	"context"

	"freight/internal/core/domain/model/warehouse"
)

// CreateWarehouseCommandHandler registers warehouses.
type CreateWarehouseCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse registration.
func NewCreateWarehouseCommandHandler(uowFactory ShipmentUoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse registration command.
func (h CreateWarehouseCommandHandler) Handle(ctx context.Context, command CreateWarehouseCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := warehouse.NewWarehouse(
		command.WarehouseID(),
		command.Code(),
		command.Name(),
		command.City(),
		command.Country(),
	)
	if err != nil {
		return err
	}

	if err := uow.WarehouseRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
