package commands

import (
	"context"

	"freight/internal/core/domain/model/supplyorder"
)

// CreateSupplyOrderCommandHandler places supply orders.
type CreateSupplyOrderCommandHandler struct {
	uowFactory SupplyOrderUoWFactory
}

// NewCreateSupplyOrderCommandHandler creates a handler for placing supply orders.
func NewCreateSupplyOrderCommandHandler(uowFactory SupplyOrderUoWFactory) CreateSupplyOrderCommandHandler {
	return CreateSupplyOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supply order creation command.
func (h CreateSupplyOrderCommandHandler) Handle(ctx context.Context, command CreateSupplyOrderCommand) error {
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

	aggregate, err := supplyorder.NewSupplyOrder(
		command.SupplyOrderID(),
		command.CustomerID(),
		command.Supplier(),
		command.ExpectedAt(),
		command.Note(),
	)
	if err != nil {
		return err
	}

	if err := uow.SupplyOrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
