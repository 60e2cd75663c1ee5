package commands

import (
	"context"
)

// RemoveParcelItemCommandHandler deletes content lines from packages below
// the Shipped threshold.
type RemoveParcelItemCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewRemoveParcelItemCommandHandler creates a handler for content line deletion.
func NewRemoveParcelItemCommandHandler(uowFactory ParcelUoWFactory) RemoveParcelItemCommandHandler {
	return RemoveParcelItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove item command.
func (h RemoveParcelItemCommandHandler) Handle(ctx context.Context, command RemoveParcelItemCommand) error {
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

	if err := aggregate.RemoveItem(command.ItemID()); err != nil {
		return err
	}

	if err := parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
