package http

import (
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/notification"

	"github.com/labstack/echo/v4"
)

// NewCampaign is the request body for a notification campaign. A set
// customerId narrows the run to that single recipient.
type NewCampaign struct {
	Kind       string  `json:"kind"`
	Message    string  `json:"message"`
	Actor      string  `json:"actor"`
	CustomerID *string `json:"customerId"`
}

// SendCampaign handles POST /api/v1/shipments/:shipmentId/campaigns.
func (s *Server) SendCampaign(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	var body NewCampaign
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	kind, err := notification.ParseCampaignType(body.Kind)
	if err != nil {
		return writeError(ctx, err)
	}

	customerID, err := optionalUUID(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	cmd, err := commands.NewSendCampaignCommand(shipmentID, kind, body.Message, body.Actor, customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.sendCampaignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// Campaign is one row of a shipment's campaign history, with per-result
// delivery counts.
type Campaign struct {
	ID             string     `json:"id"`
	Kind           string     `json:"kind"`
	Message        string     `json:"message"`
	Actor          string     `json:"actor"`
	RecipientCount int        `json:"recipientCount"`
	SentCount      int        `json:"sentCount"`
	FailedCount    int        `json:"failedCount"`
	SkippedCount   int        `json:"skippedCount"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt"`
}

// GetCampaigns handles GET /api/v1/shipments/:shipmentId/campaigns.
func (s *Server) GetCampaigns(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewGetCampaignsQuery(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getCampaignsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Campaign, len(rows))
	for i, row := range rows {
		response[i] = Campaign{
			ID:             row.ID.String(),
			Kind:           row.Kind,
			Message:        row.Message,
			Actor:          row.Actor,
			RecipientCount: row.RecipientCount,
			SentCount:      row.SentCount,
			FailedCount:    row.FailedCount,
			SkippedCount:   row.SkippedCount,
			CreatedAt:      row.CreatedAt,
			CompletedAt:    row.CompletedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeliveryLog is one per-recipient outcome of a campaign run.
type DeliveryLog struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Result       string    `json:"result"`
	Detail       string    `json:"detail"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GetCampaignLogs handles GET /api/v1/campaigns/:campaignId/logs.
func (s *Server) GetCampaignLogs(ctx echo.Context) error {
	campaignID, err := pathUUID(ctx, "campaignId")
	if err != nil {
		return badRequest(ctx, "invalid campaign id")
	}

	query, err := queries.NewGetCampaignLogsQuery(campaignID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getCampaignLogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DeliveryLog, len(rows))
	for i, row := range rows {
		response[i] = DeliveryLog{
			ID:           row.ID.String(),
			CustomerID:   row.CustomerID.String(),
			CustomerName: row.CustomerName,
			Phone:        row.Phone,
			Result:       row.Result,
			Detail:       row.Detail,
			CreatedAt:    row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
