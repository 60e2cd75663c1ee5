package commands

import (
	"context"
	"time"
)

// ChangeShipmentStatusCommandHandler performs plain shipment status moves,
// validated by the shipment transition table.
type ChangeShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewChangeShipmentStatusCommandHandler creates a handler for shipment status moves.
func NewChangeShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) ChangeShipmentStatusCommandHandler {
	return ChangeShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change. Illegal moves surface as
// lifecycle.ErrInvalidTransition and leave the shipment untouched.
func (h ChangeShipmentStatusCommandHandler) Handle(ctx context.Context, command ChangeShipmentStatusCommand) error {
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

	if err := aggregate.ChangeStatus(command.Target(), time.Now().UTC()); err != nil {
		return err
	}

	if err := shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
