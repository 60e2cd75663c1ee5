package commands

import (
	"context"
)

// UpdateCarrierCodeCommandHandler attaches carrier booking codes to Draft
// shipments.
type UpdateCarrierCodeCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateCarrierCodeCommandHandler creates a handler for carrier code updates.
func NewUpdateCarrierCodeCommandHandler(uowFactory ShipmentUoWFactory) UpdateCarrierCodeCommandHandler {
	return UpdateCarrierCodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier code update. The aggregate rejects the
// change with errs.ErrLocked once the shipment left Draft.
func (h UpdateCarrierCodeCommandHandler) Handle(ctx context.Context, command UpdateCarrierCodeCommand) error {
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

	if err := aggregate.SetCarrierCode(command.CarrierCode()); err != nil {
		return err
	}

	if err := shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
