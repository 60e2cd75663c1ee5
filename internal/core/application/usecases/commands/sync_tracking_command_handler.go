package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/ports"
)

// ErrShipmentNotSyncable is returned when the shipment has no carrier code
// or is in a status that does not track externally.
var ErrShipmentNotSyncable = errors.New("shipment is not eligible for tracking sync")

// SyncTrackingCommandHandler pulls the carrier's current view of one
// shipment and stores it as the tracking snapshot. An unknown carrier code
// surfaces as errs.ErrObjectNotFound and leaves the old snapshot in place.
type SyncTrackingCommandHandler struct {
	uowFactory ShipmentUoWFactory
	tracking   ports.TrackingLookup
}

// NewSyncTrackingCommandHandler creates a handler for tracking syncs.
func NewSyncTrackingCommandHandler(
	uowFactory ShipmentUoWFactory,
	tracking ports.TrackingLookup,
) SyncTrackingCommandHandler {
	return SyncTrackingCommandHandler{
		uowFactory: uowFactory,
		tracking:   tracking,
	}
}

// Handle processes the sync command.
func (h SyncTrackingCommandHandler) Handle(ctx context.Context, command SyncTrackingCommand) error {
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

	if aggregate.CarrierCode() == "" || !aggregate.CanSyncTracking() {
		return ErrShipmentNotSyncable
	}

	snapshot, err := h.tracking.Lookup(ctx, aggregate.CarrierCode())
	if err != nil {
		return err
	}

	if err := aggregate.ApplyTracking(snapshot, time.Now().UTC()); err != nil {
		return err
	}

	if err := shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
