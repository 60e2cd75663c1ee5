package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
)

// OverridePricingCommandHandler applies manual pricing corrections. The
// updated package state and its append-only audit row commit together.
type OverridePricingCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewOverridePricingCommandHandler creates a handler for pricing overrides.
func NewOverridePricingCommandHandler(uowFactory ParcelUoWFactory) OverridePricingCommandHandler {
	return OverridePricingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override command. Rejected with errs.ErrLocked once
// the package is Shipped or later.
func (h OverridePricingCommandHandler) Handle(ctx context.Context, command OverridePricingCommand) error {
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

	row, err := aggregate.ApplyOverride(
		kernel.NewUUID(),
		command.Kind(),
		command.NewValue(),
		command.Reason(),
		command.Actor(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err := parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err := parcelRepo.AddOverride(ctx, row); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
