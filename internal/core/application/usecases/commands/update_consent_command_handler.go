package commands

import (
	"context"
	"time"
)

// UpdateConsentCommandHandler maintains customer notification consent.
type UpdateConsentCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateConsentCommandHandler creates a handler for consent updates.
func NewUpdateConsentCommandHandler(uowFactory CustomerUoWFactory) UpdateConsentCommandHandler {
	return UpdateConsentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the consent update command.
func (h UpdateConsentCommandHandler) Handle(ctx context.Context, command UpdateConsentCommand) error {
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

	customerRepo := uow.CustomerRepository()
	aggregate, err := customerRepo.Get(ctx, command.CustomerID())
	if err != nil {
		return err
	}

	if command.OptOut() {
		aggregate.OptOut(time.Now().UTC())
	} else {
		aggregate.GrantConsent(command.StatusUpdates(), command.DeparturePhotos(), command.ArrivalPhotos())
	}

	if err := customerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
