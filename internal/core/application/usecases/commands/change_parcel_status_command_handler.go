package commands

import (
	"context"

	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

// ChangeParcelStatusCommandHandler performs package status moves. The
// photo gate runs before the rule table, so a gated move on a package
// without evidence reports the missing photos rather than an illegal
// transition. Entering Packed resolves the route's rates and prices the
// package; cancelling recomputes the shipment's running totals.
type ChangeParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	rates      ports.RateResolver
	gate       services.PhotoGate
	pricing    services.PricingEngine
	capacity   services.CapacityCalculator
}

// NewChangeParcelStatusCommandHandler creates a handler for package status moves.
func NewChangeParcelStatusCommandHandler(
	uowFactory ParcelUoWFactory,
	rates ports.RateResolver,
) ChangeParcelStatusCommandHandler {
	return ChangeParcelStatusCommandHandler{
		uowFactory: uowFactory,
		rates:      rates,
		gate:       services.NewPhotoGate(),
		pricing:    services.NewPricingEngine(),
		capacity:   services.NewCapacityCalculator(),
	}
}

// Handle processes the status change command.
func (h ChangeParcelStatusCommandHandler) Handle(ctx context.Context, command ChangeParcelStatusCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	owner, err := shipmentRepo.GetForUpdate(ctx, aggregate.ShipmentID())
	if err != nil {
		return err
	}

	nameOf, err := customerNamer(ctx, uow.CustomerRepository(), []*parcel.Parcel{aggregate})
	if err != nil {
		return err
	}
	if err := h.gate.CheckParcelTransition(aggregate, command.Target(), nameOf); err != nil {
		return err
	}

	if err := aggregate.ChangeStatus(command.Target()); err != nil {
		return err
	}

	if command.Target() == parcel.Packed {
		rates, err := h.rates.Resolve(ctx, owner.Route())
		if err != nil {
			return err
		}
		if err := h.pricing.Reprice(aggregate, rates); err != nil {
			return err
		}
	}

	if err := parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if command.Target() == parcel.Cancelled {
		siblings, err := parcelRepo.GetAllByShipment(ctx, owner.ID())
		if err != nil {
			return err
		}
		if err := h.capacity.Recalculate(owner, replaceParcel(siblings, aggregate)); err != nil {
			return err
		}
		if err := shipmentRepo.Update(ctx, owner); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// replaceParcel swaps the freshly mutated aggregate in for its stale copy
// loaded with the siblings.
func replaceParcel(parcels []*parcel.Parcel, updated *parcel.Parcel) []*parcel.Parcel {
	out := make([]*parcel.Parcel, 0, len(parcels))
	replaced := false
	for _, p := range parcels {
		if p.ID().IsEqual(updated.ID()) {
			out = append(out, updated)
			replaced = true
			continue
		}
		out = append(out, p)
	}
	if !replaced {
		out = append(out, updated)
	}
	return out
}
