package commands

import (
	"context"
)

// ChangeSupplyOrderStatusCommandHandler performs supply order status moves,
// validated by the supply order transition table.
type ChangeSupplyOrderStatusCommandHandler struct {
	uowFactory SupplyOrderUoWFactory
}

// NewChangeSupplyOrderStatusCommandHandler creates a handler for supply order status moves.
func NewChangeSupplyOrderStatusCommandHandler(uowFactory SupplyOrderUoWFactory) ChangeSupplyOrderStatusCommandHandler {
	return ChangeSupplyOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h ChangeSupplyOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeSupplyOrderStatusCommand) error {
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

	supplyOrderRepo := uow.SupplyOrderRepository()
	aggregate, err := supplyOrderRepo.Get(ctx, command.SupplyOrderID())
	if err != nil {
		return err
	}

	if err := aggregate.ChangeStatus(command.Target()); err != nil {
		return err
	}

	if err := supplyOrderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
