package commands

import (
	"context"

	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/services"
)

// CreateParcelCommandHandler registers packages on shipments. The new
// package's measurements are checked against the shipment's remaining
// capacity, and the shipment's running totals are recomputed on success.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	capacity   services.CapacityCalculator
}

// NewCreateParcelCommandHandler creates a handler for package registration.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		capacity:   services.NewCapacityCalculator(),
	}
}

// Handle processes the package registration command. Capacity overflow
// surfaces as errs.ErrCapacityExceeded and nothing is persisted.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, command CreateParcelCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	owner, err := shipmentRepo.GetForUpdate(ctx, command.ShipmentID())
	if err != nil {
		return err
	}

	if _, err := uow.CustomerRepository().Get(ctx, command.CustomerID()); err != nil {
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
	if err := shipmentRepo.Update(ctx, owner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
