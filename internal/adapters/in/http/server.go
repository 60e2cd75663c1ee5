// Package http exposes the application use cases over a REST API.
// Handlers translate requests into commands and queries, and map domain
// errors onto HTTP statuses.
package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/lifecycle"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createShipmentHandler          commands.CreateShipmentCommandHandler
	updateCarrierCodeHandler       commands.UpdateCarrierCodeCommandHandler
	changeShipmentStatusHandler    commands.ChangeShipmentStatusCommandHandler
	departShipmentHandler          commands.DepartShipmentCommandHandler
	closeShipmentHandler           commands.CloseShipmentCommandHandler
	syncTrackingHandler            commands.SyncTrackingCommandHandler
	createParcelHandler            commands.CreateParcelCommandHandler
	autoAssignParcelHandler        commands.AutoAssignParcelCommandHandler
	changeParcelStatusHandler      commands.ChangeParcelStatusCommandHandler
	updateParcelMeasurements       commands.UpdateParcelMeasurementsCommandHandler
	addParcelItemHandler           commands.AddParcelItemCommandHandler
	updateParcelItemHandler        commands.UpdateParcelItemCommandHandler
	removeParcelItemHandler        commands.RemoveParcelItemCommandHandler
	uploadParcelMediaHandler       commands.UploadParcelMediaCommandHandler
	overridePricingHandler         commands.OverridePricingCommandHandler
	createCustomerHandler          commands.CreateCustomerCommandHandler
	updateConsentHandler           commands.UpdateConsentCommandHandler
	createWarehouseHandler         commands.CreateWarehouseCommandHandler
	createSupplyOrderHandler       commands.CreateSupplyOrderCommandHandler
	changeSupplyOrderStatusHandler commands.ChangeSupplyOrderStatusCommandHandler
	sendCampaignHandler            commands.SendCampaignCommandHandler

	getInTransitShipmentsHandler queries.GetInTransitShipmentsQueryHandler
	getShipmentMediaHandler      queries.GetShipmentMediaQueryHandler
	getOverrideHistoryHandler    queries.GetOverrideHistoryQueryHandler
	getCampaignsHandler          queries.GetCampaignsQueryHandler
	getCampaignLogsHandler       queries.GetCampaignLogsQueryHandler
}

// Handlers bundles every use case the server exposes. Keeping them in one
// struct spares the constructor a two-dozen parameter list.
type Handlers struct {
	CreateShipment          commands.CreateShipmentCommandHandler
	UpdateCarrierCode       commands.UpdateCarrierCodeCommandHandler
	ChangeShipmentStatus    commands.ChangeShipmentStatusCommandHandler
	DepartShipment          commands.DepartShipmentCommandHandler
	CloseShipment           commands.CloseShipmentCommandHandler
	SyncTracking            commands.SyncTrackingCommandHandler
	CreateParcel            commands.CreateParcelCommandHandler
	AutoAssignParcel        commands.AutoAssignParcelCommandHandler
	ChangeParcelStatus      commands.ChangeParcelStatusCommandHandler
	UpdateMeasurements      commands.UpdateParcelMeasurementsCommandHandler
	AddParcelItem           commands.AddParcelItemCommandHandler
	UpdateParcelItem        commands.UpdateParcelItemCommandHandler
	RemoveParcelItem        commands.RemoveParcelItemCommandHandler
	UploadParcelMedia       commands.UploadParcelMediaCommandHandler
	OverridePricing         commands.OverridePricingCommandHandler
	CreateCustomer          commands.CreateCustomerCommandHandler
	UpdateConsent           commands.UpdateConsentCommandHandler
	CreateWarehouse         commands.CreateWarehouseCommandHandler
	CreateSupplyOrder       commands.CreateSupplyOrderCommandHandler
	ChangeSupplyOrderStatus commands.ChangeSupplyOrderStatusCommandHandler
	SendCampaign            commands.SendCampaignCommandHandler

	GetInTransitShipments queries.GetInTransitShipmentsQueryHandler
	GetShipmentMedia      queries.GetShipmentMediaQueryHandler
	GetOverrideHistory    queries.GetOverrideHistoryQueryHandler
	GetCampaigns          queries.GetCampaignsQueryHandler
	GetCampaignLogs       queries.GetCampaignLogsQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createShipmentHandler:          handlers.CreateShipment,
		updateCarrierCodeHandler:       handlers.UpdateCarrierCode,
		changeShipmentStatusHandler:    handlers.ChangeShipmentStatus,
		departShipmentHandler:          handlers.DepartShipment,
		closeShipmentHandler:           handlers.CloseShipment,
		syncTrackingHandler:            handlers.SyncTracking,
		createParcelHandler:            handlers.CreateParcel,
		autoAssignParcelHandler:        handlers.AutoAssignParcel,
		changeParcelStatusHandler:      handlers.ChangeParcelStatus,
		updateParcelMeasurements:       handlers.UpdateMeasurements,
		addParcelItemHandler:           handlers.AddParcelItem,
		updateParcelItemHandler:        handlers.UpdateParcelItem,
		removeParcelItemHandler:        handlers.RemoveParcelItem,
		uploadParcelMediaHandler:       handlers.UploadParcelMedia,
		overridePricingHandler:         handlers.OverridePricing,
		createCustomerHandler:          handlers.CreateCustomer,
		updateConsentHandler:           handlers.UpdateConsent,
		createWarehouseHandler:         handlers.CreateWarehouse,
		createSupplyOrderHandler:       handlers.CreateSupplyOrder,
		changeSupplyOrderStatusHandler: handlers.ChangeSupplyOrderStatus,
		sendCampaignHandler:            handlers.SendCampaign,
		getInTransitShipmentsHandler:   handlers.GetInTransitShipments,
		getShipmentMediaHandler:        handlers.GetShipmentMedia,
		getOverrideHistoryHandler:      handlers.GetOverrideHistory,
		getCampaignsHandler:            handlers.GetCampaigns,
		getCampaignLogsHandler:         handlers.GetCampaignLogs,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/warehouses", s.CreateWarehouse)

	api.POST("/customers", s.CreateCustomer)
	api.PUT("/customers/:customerId/consent", s.UpdateConsent)

	api.POST("/supply-orders", s.CreateSupplyOrder)
	api.PUT("/supply-orders/:supplyOrderId/status", s.ChangeSupplyOrderStatus)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/in-transit", s.GetInTransitShipments)
	api.PUT("/shipments/:shipmentId/carrier-code", s.UpdateCarrierCode)
	api.PUT("/shipments/:shipmentId/status", s.ChangeShipmentStatus)
	api.POST("/shipments/:shipmentId/depart", s.DepartShipment)
	api.POST("/shipments/:shipmentId/close", s.CloseShipment)
	api.POST("/shipments/:shipmentId/sync-tracking", s.SyncTracking)
	api.GET("/shipments/:shipmentId/media", s.GetShipmentMedia)
	api.POST("/shipments/:shipmentId/campaigns", s.SendCampaign)
	api.GET("/shipments/:shipmentId/campaigns", s.GetCampaigns)

	api.GET("/campaigns/:campaignId/logs", s.GetCampaignLogs)

	api.POST("/packages", s.CreateParcel)
	api.POST("/packages/auto-assign", s.AutoAssignParcel)
	api.PUT("/packages/:parcelId/status", s.ChangeParcelStatus)
	api.PUT("/packages/:parcelId/measurements", s.UpdateParcelMeasurements)
	api.POST("/packages/:parcelId/items", s.AddParcelItem)
	api.PUT("/packages/:parcelId/items/:itemId", s.UpdateParcelItem)
	api.DELETE("/packages/:parcelId/items/:itemId", s.RemoveParcelItem)
	api.POST("/packages/:parcelId/media", s.UploadParcelMedia)
	api.POST("/packages/:parcelId/pricing-overrides", s.OverridePricing)
	api.GET("/packages/:parcelId/pricing-overrides", s.GetOverrideHistory)
}

// ErrorBody is the JSON error envelope returned by every endpoint.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MissingEvidenceBody identifies one package blocking a photo-gated
// transition.
type MissingEvidenceBody struct {
	PackageID     string `json:"packageId"`
	CustomerLabel string `json:"customerLabel"`
	Stage         string `json:"stage"`
}

// PhotoGateBody is the 422 payload listing every package that lacks the
// required photo evidence.
type PhotoGateBody struct {
	Code    int                   `json:"code"`
	Message string                `json:"message"`
	Stage   string                `json:"stage"`
	Missing []MissingEvidenceBody `json:"missing"`
}

// writeError maps a use case error onto the HTTP response.
func writeError(ctx echo.Context, err error) error {
	var gateErr *services.PhotoGateError
	if errors.As(err, &gateErr) {
		missing := make([]MissingEvidenceBody, len(gateErr.Missing))
		for i, m := range gateErr.Missing {
			missing[i] = MissingEvidenceBody{
				PackageID:     m.ParcelID.String(),
				CustomerLabel: m.CustomerLabel,
				Stage:         m.Stage.String(),
			}
		}
		return ctx.JSON(http.StatusUnprocessableEntity, PhotoGateBody{
			Code:    http.StatusUnprocessableEntity,
			Message: gateErr.Error(),
			Stage:   gateErr.Stage.String(),
			Missing: missing,
		})
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, lifecycle.ErrInvalidTransition),
		errors.Is(err, errs.ErrLocked),
		errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, commands.ErrNoRecipients),
		errors.Is(err, commands.ErrParcelsNotTerminal),
		errors.Is(err, commands.ErrShipmentNotSyncable):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorBody{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathUUID parses one :param path segment into a UUID.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// createdBody returns the identifier of a newly created resource.
type createdBody struct {
	ID string `json:"id"`
}

func created(ctx echo.Context, id kernel.UUID) error {
	return ctx.JSON(http.StatusCreated, createdBody{ID: id.String()})
}
