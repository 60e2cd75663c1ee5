package http

import (
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// NewShipment is the request body for shipment creation.
type NewShipment struct {
	OriginWarehouseID      string    `json:"originWarehouseId"`
	DestinationWarehouseID string    `json:"destinationWarehouseId"`
	PlannedDeparture       time.Time `json:"plannedDeparture"`
	PlannedArrival         time.Time `json:"plannedArrival"`
	MaxWeightKg            float64   `json:"maxWeightKg"`
	MaxVolumeM3            float64   `json:"maxVolumeM3"`
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body NewShipment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	originID, err := kernel.UUIDFromString(body.OriginWarehouseID)
	if err != nil {
		return badRequest(ctx, "invalid origin warehouse id")
	}
	destinationID, err := kernel.UUIDFromString(body.DestinationWarehouseID)
	if err != nil {
		return badRequest(ctx, "invalid destination warehouse id")
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID,
		originID,
		destinationID,
		body.PlannedDeparture,
		body.PlannedArrival,
		body.MaxWeightKg,
		body.MaxVolumeM3,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return created(ctx, shipmentID)
}

// CarrierCodeUpdate is the request body for carrier code assignment.
type CarrierCodeUpdate struct {
	CarrierCode string `json:"carrierCode"`
}

// UpdateCarrierCode handles PUT /api/v1/shipments/:shipmentId/carrier-code.
func (s *Server) UpdateCarrierCode(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	var body CarrierCodeUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCarrierCodeCommand(shipmentID, body.CarrierCode)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateCarrierCodeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StatusUpdate is the request body for status transitions.
type StatusUpdate struct {
	Status string `json:"status"`
}

// ChangeShipmentStatus handles PUT /api/v1/shipments/:shipmentId/status.
func (s *Server) ChangeShipmentStatus(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	var body StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := shipment.ParseStatus(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeShipmentStatusCommand(shipmentID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changeShipmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DepartShipment handles POST /api/v1/shipments/:shipmentId/depart.
func (s *Server) DepartShipment(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	cmd, err := commands.NewDepartShipmentCommand(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.departShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseShipment handles POST /api/v1/shipments/:shipmentId/close.
func (s *Server) CloseShipment(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	cmd, err := commands.NewCloseShipmentCommand(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.closeShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SyncTracking handles POST /api/v1/shipments/:shipmentId/sync-tracking.
func (s *Server) SyncTracking(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	cmd, err := commands.NewSyncTrackingCommand(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.syncTrackingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InTransitShipment is one row of the in-transit board.
type InTransitShipment struct {
	ID                string     `json:"id"`
	RefCode           string     `json:"refCode"`
	CarrierCode       string     `json:"carrierCode"`
	ActualDepartureAt *time.Time `json:"actualDepartureAt"`
	TotalWeightKg     float64    `json:"totalWeightKg"`
	TotalVolumeM3     float64    `json:"totalVolumeM3"`
	VesselName        string     `json:"vesselName"`
	TrackingStatus    string     `json:"trackingStatus"`
	ETA               *time.Time `json:"eta"`
	LastSyncedAt      *time.Time `json:"lastSyncedAt"`
}

// GetInTransitShipments handles GET /api/v1/shipments/in-transit.
func (s *Server) GetInTransitShipments(ctx echo.Context) error {
	query := queries.NewGetInTransitShipmentsQuery()

	rows, err := s.getInTransitShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]InTransitShipment, len(rows))
	for i, row := range rows {
		response[i] = InTransitShipment{
			ID:                row.ID.String(),
			RefCode:           row.RefCode,
			CarrierCode:       row.CarrierCode,
			ActualDepartureAt: row.ActualDepartureAt,
			TotalWeightKg:     row.TotalWeightKg,
			TotalVolumeM3:     row.TotalVolumeM3,
			VesselName:        row.VesselName,
			TrackingStatus:    row.TrackingStatus,
			ETA:               row.ETA,
			LastSyncedAt:      row.LastSyncedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ShipmentMedia is one photo record in the shipment media listing.
type ShipmentMedia struct {
	ID           string    `json:"id"`
	PackageID    string    `json:"packageId"`
	Stage        string    `json:"stage"`
	OriginalKey  string    `json:"originalKey"`
	ProcessedKey string    `json:"processedKey"`
	ContentType  string    `json:"contentType"`
	SizeBytes    int64     `json:"sizeBytes"`
	UploadedBy   string    `json:"uploadedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GetShipmentMedia handles GET /api/v1/shipments/:shipmentId/media.
func (s *Server) GetShipmentMedia(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentMediaQuery(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getShipmentMediaHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ShipmentMedia, len(rows))
	for i, row := range rows {
		response[i] = ShipmentMedia{
			ID:           row.ID.String(),
			PackageID:    row.ParcelID.String(),
			Stage:        row.Stage,
			OriginalKey:  row.OriginalKey,
			ProcessedKey: row.ProcessedKey,
			ContentType:  row.ContentType,
			SizeBytes:    row.SizeBytes,
			UploadedBy:   row.UploadedBy,
			CreatedAt:    row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
