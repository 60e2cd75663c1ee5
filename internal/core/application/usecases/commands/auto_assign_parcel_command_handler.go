package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// AutoAssignParcelCommandHandler places packages onto open shipments.
// The oldest shipment on the route that still accepts packages wins; when
// none exists a Draft shipment is created implicitly with unlimited
// capacity and a default planned window of departure in 30 days, arrival
// in 60.
type AutoAssignParcelCommandHandler struct {
	uowFactory UoWFactory
	refCodes   ports.ReferenceCodeGenerator
	capacity   services.CapacityCalculator
}

// NewAutoAssignParcelCommandHandler creates a handler for package auto-assignment.
func NewAutoAssignParcelCommandHandler(
	uowFactory UoWFactory,
	refCodes ports.ReferenceCodeGenerator,
) AutoAssignParcelCommandHandler {
	return AutoAssignParcelCommandHandler{
		uowFactory: uowFactory,
		refCodes:   refCodes,
		capacity:   services.NewCapacityCalculator(),
	}
}

// Handle processes the auto-assignment command.
func (h AutoAssignParcelCommandHandler) Handle(ctx context.Context, command AutoAssignParcelCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, command.CustomerID()); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	owner, err := shipmentRepo.FindOpenOnRoute(ctx, command.Route())
	created := false
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		owner, err = h.createShipment(ctx, uow, command)
		if err != nil {
			return err
		}
		created = true
	case err != nil:
		return err
	}

	aggregate, err := parcel.NewParcel(
		command.ParcelID(),
		owner.ID(),
		command.CustomerID(),
		command.Provisioning(),
		command.SupplyOrderID(),
		command.WeightKg(),
		command.VolumeM3(),
		command.Currency(),
		command.Note(),
	)
	if err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	siblings, err := parcelRepo.GetAllByShipment(ctx, owner.ID())
	if err != nil {
		return err
	}

	if err := h.capacity.Recalculate(owner, append(siblings, aggregate)); err != nil {
		return err
	}

	if err := parcelRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if created {
		err = shipmentRepo.Add(ctx, owner)
	} else {
		err = shipmentRepo.Update(ctx, owner)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h AutoAssignParcelCommandHandler) createShipment(
	ctx context.Context,
	uow UoW,
	command AutoAssignParcelCommand,
) (*shipment.Shipment, error) {
	warehouseRepo := uow.WarehouseRepository()
	origin, err := warehouseRepo.Get(ctx, command.Route().Origin())
	if err != nil {
		return nil, err
	}
	if _, err := warehouseRepo.Get(ctx, command.Route().Destination()); err != nil {
		return nil, err
	}

	refCode, err := h.refCodes.Next(ctx, origin.ID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return shipment.NewShipment(
		kernel.NewUUID(),
		refCode,
		command.Route(),
		now.AddDate(0, 0, 30), now.AddDate(0, 0, 60),
		0, 0,
	)
}
