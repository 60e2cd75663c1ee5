package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"
)

// CreateShipmentCommandHandler opens new shipments. Resolves both route
// endpoints against the warehouse directory and draws the next reference
// code from the per-origin sequence.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	refCodes   ports.ReferenceCodeGenerator
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	refCodes ports.ReferenceCodeGenerator,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		refCodes:   refCodes,
	}
}

// Handle processes the shipment creation command. Both warehouses must
// exist; an unknown identifier surfaces as errs.ErrObjectNotFound.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, command CreateShipmentCommand) error {
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

	warehouseRepo := uow.WarehouseRepository()
	origin, err := warehouseRepo.Get(ctx, command.OriginWarehouseID())
	if err != nil {
		return err
	}
	destination, err := warehouseRepo.Get(ctx, command.DestinationWarehouseID())
	if err != nil {
		return err
	}

	route, err := kernel.NewRoute(origin.ID(), destination.ID())
	if err != nil {
		return err
	}

	refCode, err := h.refCodes.Next(ctx, origin.ID())
	if err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		command.ShipmentID(),
		refCode,
		route,
		command.PlannedDeparture(),
		command.PlannedArrival(),
		command.MaxWeightKg(),
		command.MaxVolumeM3(),
	)
	if err != nil {
		return err
	}

	if err := uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
