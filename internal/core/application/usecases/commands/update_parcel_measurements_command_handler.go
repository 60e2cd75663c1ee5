package commands

import (
	"context"

	"freight/internal/core/domain/services"
)

// UpdateParcelMeasurementsCommandHandler edits package measurements. The
// edit reprices the package from its applied rates and recomputes the
// shipment's running totals; a capacity overflow rolls everything back.
type UpdateParcelMeasurementsCommandHandler struct {
	uowFactory ParcelUoWFactory
	capacity   services.CapacityCalculator
}

// NewUpdateParcelMeasurementsCommandHandler creates a handler for measurement edits.
func NewUpdateParcelMeasurementsCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelMeasurementsCommandHandler {
	return UpdateParcelMeasurementsCommandHandler{
		uowFactory: uowFactory,
		capacity:   services.NewCapacityCalculator(),
	}
}

// Handle processes the measurement update command.
func (h UpdateParcelMeasurementsCommandHandler) Handle(ctx context.Context, command UpdateParcelMeasurementsCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	owner, err := shipmentRepo.GetForUpdate(ctx, aggregate.ShipmentID())
	if err != nil {
		return err
	}

	if err := aggregate.SetMeasurements(command.WeightKg(), command.VolumeM3(), command.Note()); err != nil {
		return err
	}
	aggregate.RecomputeCharge()

	siblings, err := parcelRepo.GetAllByShipment(ctx, owner.ID())
	if err != nil {
		return err
	}
	if err := h.capacity.Recalculate(owner, replaceParcel(siblings, aggregate)); err != nil {
		return err
	}

	if err := parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err := shipmentRepo.Update(ctx, owner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
