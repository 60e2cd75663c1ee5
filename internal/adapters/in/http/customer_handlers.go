package http

import (
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/supplyorder"

	"github.com/labstack/echo/v4"
)

// NewCustomer is the request body for customer registration.
type NewCustomer struct {
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone"`
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, body.DisplayName, body.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return created(ctx, customerID)
}

// ConsentUpdate is the request body for notification consent changes.
// Setting optOut revokes all channels at once and records the timestamp.
type ConsentUpdate struct {
	StatusUpdates   bool `json:"statusUpdates"`
	DeparturePhotos bool `json:"departurePhotos"`
	ArrivalPhotos   bool `json:"arrivalPhotos"`
	OptOut          bool `json:"optOut"`
}

// UpdateConsent handles PUT /api/v1/customers/:customerId/consent.
func (s *Server) UpdateConsent(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customerId")
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	var body ConsentUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateConsentCommand(
		customerID,
		body.StatusUpdates,
		body.DeparturePhotos,
		body.ArrivalPhotos,
		body.OptOut,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateConsentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NewWarehouse is the request body for warehouse registration.
type NewWarehouse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// CreateWarehouse handles POST /api/v1/warehouses.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var body NewWarehouse
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID := kernel.NewUUID()
	cmd, err := commands.NewCreateWarehouseCommand(warehouseID, body.Code, body.Name, body.City, body.Country)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createWarehouseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return created(ctx, warehouseID)
}

// NewSupplyOrder is the request body for supply order registration.
type NewSupplyOrder struct {
	CustomerID string     `json:"customerId"`
	Supplier   string     `json:"supplier"`
	ExpectedAt *time.Time `json:"expectedAt"`
	Note       string     `json:"note"`
}

// CreateSupplyOrder handles POST /api/v1/supply-orders.
func (s *Server) CreateSupplyOrder(ctx echo.Context) error {
	var body NewSupplyOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	supplyOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateSupplyOrderCommand(supplyOrderID, customerID, body.Supplier, body.ExpectedAt, body.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createSupplyOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return created(ctx, supplyOrderID)
}

// ChangeSupplyOrderStatus handles PUT /api/v1/supply-orders/:supplyOrderId/status.
func (s *Server) ChangeSupplyOrderStatus(ctx echo.Context) error {
	supplyOrderID, err := pathUUID(ctx, "supplyOrderId")
	if err != nil {
		return badRequest(ctx, "invalid supply order id")
	}

	var body StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := supplyorder.ParseStatus(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeSupplyOrderStatusCommand(supplyOrderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changeSupplyOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
