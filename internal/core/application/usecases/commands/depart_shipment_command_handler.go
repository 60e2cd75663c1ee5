package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

// DepartShipmentCommandHandler executes shipment departures. The departure
// photo gate recounts media rows across the whole shipment instead of
// trusting the packages' denormalized flags; on failure the error carries
// the full list of non-compliant packages and nothing is mutated.
type DepartShipmentCommandHandler struct {
	uowFactory ParcelUoWFactory
	gate       services.PhotoGate
}

// NewDepartShipmentCommandHandler creates a handler for shipment departures.
func NewDepartShipmentCommandHandler(uowFactory ParcelUoWFactory) DepartShipmentCommandHandler {
	return DepartShipmentCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewPhotoGate(),
	}
}

// Handle processes the departure command.
func (h DepartShipmentCommandHandler) Handle(ctx context.Context, command DepartShipmentCommand) error {
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

	parcels, err := uow.ParcelRepository().GetAllByShipment(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	rows, err := uow.MediaRepository().GetAllByShipment(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	nameOf, err := customerNamer(ctx, uow.CustomerRepository(), parcels)
	if err != nil {
		return err
	}

	if err := h.gate.CheckShipment(media.StageDeparture, parcels, rows, nameOf); err != nil {
		return err
	}

	if err := aggregate.Depart(time.Now().UTC()); err != nil {
		return err
	}

	if err := shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// customerNamer loads the display names of the packages' owners in one
// round trip and returns a lookup for gate reports.
func customerNamer(
	ctx context.Context,
	repo ports.CustomerRepository,
	parcels []*parcel.Parcel,
) (services.CustomerNamer, error) {
	seen := make(map[kernel.UUID]bool, len(parcels))
	ids := make([]kernel.UUID, 0, len(parcels))
	for _, p := range parcels {
		if !seen[p.CustomerID()] {
			seen[p.CustomerID()] = true
			ids = append(ids, p.CustomerID())
		}
	}

	customers, err := repo.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[kernel.UUID]string, len(customers))
	for _, c := range customers {
		names[c.ID()] = c.DisplayName()
	}
	return func(customerID kernel.UUID) string {
		if name, ok := names[customerID]; ok {
			return name
		}
		return customerID.String()
	}, nil
}
