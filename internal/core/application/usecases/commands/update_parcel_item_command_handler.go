package commands

import (
	"context"
)

// UpdateParcelItemCommandHandler edits content lines of packages below the
// Shipped threshold.
type UpdateParcelItemCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelItemCommandHandler creates a handler for content line updates.
func NewUpdateParcelItemCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelItemCommandHandler {
	return UpdateParcelItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update item command.
func (h UpdateParcelItemCommandHandler) Handle(ctx context.Context, command UpdateParcelItemCommand) error {
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

	if _, err := aggregate.UpdateItem(command.ItemID(), command.Quantity(), command.Note()); err != nil {
		return err
	}

	if err := parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
