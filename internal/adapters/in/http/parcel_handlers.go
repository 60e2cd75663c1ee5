package http

import (
	"io"
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"
	"freight/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// NewParcel is the request body for package registration.
type NewParcel struct {
	ShipmentID    string  `json:"shipmentId"`
	CustomerID    string  `json:"customerId"`
	Provisioning  string  `json:"provisioning"`
	SupplyOrderID *string `json:"supplyOrderId"`
	WeightKg      float64 `json:"weightKg"`
	VolumeM3      float64 `json:"volumeM3"`
	Currency      string  `json:"currency"`
	Note          string  `json:"note"`
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// CreateParcel handles POST /api/v1/packages.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body NewParcel
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	shipmentID, err := kernel.UUIDFromString(body.ShipmentID)
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}
	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}
	provisioning, err := parcel.ParseProvisioningMethod(body.Provisioning)
	if err != nil {
		return writeError(ctx, err)
	}
	supplyOrderID, err := optionalUUID(body.SupplyOrderID)
	if err != nil {
		return badRequest(ctx, "invalid supply order id")
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		parcelID,
		shipmentID,
		customerID,
		provisioning,
		supplyOrderID,
		body.WeightKg,
		body.VolumeM3,
		body.Currency,
		body.Note,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return created(ctx, parcelID)
}

// NewAutoAssignedParcel is the request body for route-based package
// registration. The package lands on the oldest open shipment for the
// route, or on a freshly drafted one.
type NewAutoAssignedParcel struct {
	OriginWarehouseID      string  `json:"originWarehouseId"`
	DestinationWarehouseID string  `json:"destinationWarehouseId"`
	CustomerID             string  `json:"customerId"`
	Provisioning           string  `json:"provisioning"`
	SupplyOrderID          *string `json:"supplyOrderId"`
	WeightKg               float64 `json:"weightKg"`
	VolumeM3               float64 `json:"volumeM3"`
	Currency               string  `json:"currency"`
	Note                   string  `json:"note"`
}

// AutoAssignParcel handles POST /api/v1/packages/auto-assign.
func (s *Server) AutoAssignParcel(ctx echo.Context) error {
	var body NewAutoAssignedParcel
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
	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}
	provisioning, err := parcel.ParseProvisioningMethod(body.Provisioning)
	if err != nil {
		return writeError(ctx, err)
	}
	supplyOrderID, err := optionalUUID(body.SupplyOrderID)
	if err != nil {
		return badRequest(ctx, "invalid supply order id")
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewAutoAssignParcelCommand(
		parcelID,
		originID,
		destinationID,
		customerID,
		provisioning,
		supplyOrderID,
		body.WeightKg,
		body.VolumeM3,
		body.Currency,
		body.Note,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.autoAssignParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return created(ctx, parcelID)
}

// ChangeParcelStatus handles PUT /api/v1/packages/:parcelId/status.
func (s *Server) ChangeParcelStatus(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "parcelId")
	if err != nil {
		return badRequest(ctx, "invalid package id")
	}

	var body StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := parcel.ParseStatus(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeParcelStatusCommand(parcelID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changeParcelStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MeasurementsUpdate is the request body for weight and volume changes.
type MeasurementsUpdate struct {
	WeightKg float64 `json:"weightKg"`
	VolumeM3 float64 `json:"volumeM3"`
	Note     string  `json:"note"`
}

// UpdateParcelMeasurements handles PUT /api/v1/packages/:parcelId/measurements.
func (s *Server) UpdateParcelMeasurements(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "parcelId")
	if err != nil {
		return badRequest(ctx, "invalid package id")
	}

	var body MeasurementsUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateParcelMeasurementsCommand(parcelID, body.WeightKg, body.VolumeM3, body.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateParcelMeasurements.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NewParcelItem is the request body for adding a declared item.
type NewParcelItem struct {
	GoodTypeID string `json:"goodTypeId"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note"`
}

// AddParcelItem handles POST /api/v1/packages/:parcelId/items.
func (s *Server) AddParcelItem(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "parcelId")
	if err != nil {
		return badRequest(ctx, "invalid package id")
	}

	var body NewParcelItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	goodTypeID, err := kernel.UUIDFromString(body.GoodTypeID)
	if err != nil {
		return badRequest(ctx, "invalid good type id")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddParcelItemCommand(parcelID, itemID, goodTypeID, body.Quantity, body.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addParcelItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return created(ctx, itemID)
}

// ParcelItemUpdate is the request body for changing a declared item.
type ParcelItemUpdate struct {
	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}

// UpdateParcelItem handles PUT /api/v1/packages/:parcelId/items/:itemId.
func (s *Server) UpdateParcelItem(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "parcelId")
	if err != nil {
		return badRequest(ctx, "invalid package id")
	}
	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	var body ParcelItemUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateParcelItemCommand(parcelID, itemID, body.Quantity, body.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateParcelItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveParcelItem handles DELETE /api/v1/packages/:parcelId/items/:itemId.
func (s *Server) RemoveParcelItem(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "parcelId")
	if err != nil {
		return badRequest(ctx, "invalid package id")
	}
	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	cmd, err := commands.NewRemoveParcelItemCommand(parcelID, itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeParcelItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UploadParcelMedia handles POST /api/v1/packages/:parcelId/media.
// The photo arrives as multipart form data: a "file" part plus "stage",
// "capturedAt" (RFC 3339) and "uploadedBy" fields.
func (s *Server) UploadParcelMedia(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "parcelId")
	if err != nil {
		return badRequest(ctx, "invalid package id")
	}

	stage, err := media.ParseStage(ctx.FormValue("stage"))
	if err != nil {
		return writeError(ctx, err)
	}

	capturedAt := time.Now().UTC()
	if raw := ctx.FormValue("capturedAt"); raw != "" {
		capturedAt, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "capturedAt must be RFC 3339")
		}
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "file part is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(ctx, "file part is unreadable")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return badRequest(ctx, "file part is unreadable")
	}

	cmd, err := commands.NewUploadParcelMediaCommand(
		parcelID,
		stage,
		data,
		fileHeader.Header.Get("Content-Type"),
		capturedAt,
		ctx.FormValue("uploadedBy"),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.uploadParcelMediaHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// NewPricingOverride is the request body for an audited price adjustment.
type NewPricingOverride struct {
	Kind     string          `json:"kind"`
	NewValue decimal.Decimal `json:"newValue"`
	Reason   string          `json:"reason"`
	Actor    string          `json:"actor"`
}

// OverridePricing handles POST /api/v1/packages/:parcelId/pricing-overrides.
func (s *Server) OverridePricing(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "parcelId")
	if err != nil {
		return badRequest(ctx, "invalid package id")
	}

	var body NewPricingOverride
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	kind, err := parcel.ParseOverrideKind(body.Kind)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewOverridePricingCommand(parcelID, kind, body.NewValue, body.Reason, body.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.overridePricingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PricingOverride is one row of a package's override audit trail.
type PricingOverride struct {
	ID            string          `json:"id"`
	Kind          string          `json:"kind"`
	OriginalValue decimal.Decimal `json:"originalValue"`
	NewValue      decimal.Decimal `json:"newValue"`
	Reason        string          `json:"reason"`
	Actor         string          `json:"actor"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// GetOverrideHistory handles GET /api/v1/packages/:parcelId/pricing-overrides.
func (s *Server) GetOverrideHistory(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "parcelId")
	if err != nil {
		return badRequest(ctx, "invalid package id")
	}

	query, err := queries.NewGetOverrideHistoryQuery(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getOverrideHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PricingOverride, len(rows))
	for i, row := range rows {
		response[i] = PricingOverride{
			ID:            row.ID.String(),
			Kind:          row.Kind,
			OriginalValue: row.OriginalValue,
			NewValue:      row.NewValue,
			Reason:        row.Reason,
			Actor:         row.Actor,
			CreatedAt:     row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
