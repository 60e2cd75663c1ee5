package commands

import (
	"context"

	"freight/internal/core/domain/model/media"
	"freight/internal/core/domain/services"
)

// CloseShipmentCommandHandler closes arrived shipments. Symmetric to
// departure but gated on arrival photos, plus the requirement that every
// package reached HandedOut or Cancelled.
type CloseShipmentCommandHandler struct {
	uowFactory ParcelUoWFactory
	gate       services.PhotoGate
}

// NewCloseShipmentCommandHandler creates a handler for closing shipments.
func NewCloseShipmentCommandHandler(uowFactory ParcelUoWFactory) CloseShipmentCommandHandler {
	return CloseShipmentCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewPhotoGate(),
	}
}

// Handle processes the close command.
func (h CloseShipmentCommandHandler) Handle(ctx context.Context, command CloseShipmentCommand) error {
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
	aggregate, err := shipmentRepo.GetForUpdate(ctx, command.ShipmentID())
	if err != nil {
		return err
	}

	parcels, err := uow.ParcelRepository().GetAllByShipment(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	rows, err := uow.MediaRepository().GetAllByShipment(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	nameOf, err := customerNamer(ctx, uow.CustomerRepository(), parcels)
	if err != nil {
		return err
	}

	if err := h.gate.CheckShipment(media.StageArrival, parcels, rows, nameOf); err != nil {
		return err
	}
	for _, p := range parcels {
		if !p.Status().IsTerminalHandling() {
			return ErrParcelsNotTerminal
		}
	}

	if err := aggregate.Close(); err != nil {
		return err
	}

	if err := shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
