package commands

import (
	"context"

	"freight/internal/core/domain/model/parcel"
)

// AddParcelItemCommandHandler appends content lines to packages below the
// Shipped threshold.
type AddParcelItemCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewAddParcelItemCommandHandler creates a handler for adding content lines.
func NewAddParcelItemCommandHandler(uowFactory ParcelUoWFactory) AddParcelItemCommandHandler {
	return AddParcelItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add item command.
func (h AddParcelItemCommandHandler) Handle(ctx context.Context, command AddParcelItemCommand) error {
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

	item, err := parcel.NewItem(command.ItemID(), command.GoodTypeID(), command.Quantity(), command.Note())
	if err != nil {
		return err
	}
	if err := aggregate.AddItem(item); err != nil {
		return err
	}

	if err := parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
