package notification

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"
	"freight/internal/pkg/errs"
)

var (
	// ErrCampaignIsNotConstructed is returned when a Campaign was not
	// created through the NewCampaign constructor.
	ErrCampaignIsNotConstructed = errors.New("Campaign must be created via NewCampaign constructor")

	// ErrCampaignAlreadyCompleted is returned when a completed campaign is
	// completed again.
	ErrCampaignAlreadyCompleted = errors.New("campaign is already completed")
)

// CampaignType identifies what a notification campaign sends.
type CampaignType int

const (
	// CampaignUnknown represents an invalid or undefined type.
	CampaignUnknown CampaignType = iota

	// CampaignStatusUpdate sends a text update about the shipment's progress.
	CampaignStatusUpdate

	// CampaignDeparturePhotos sends each customer the departure photos of
	// their own packages.
	CampaignDeparturePhotos

	// CampaignArrivalPhotos sends each customer the arrival photos of
	// their own packages.
	CampaignArrivalPhotos
)

func getCampaignTypeStrings() map[CampaignType]string {
	return map[CampaignType]string{
		CampaignUnknown:         "Unknown",
		CampaignStatusUpdate:    "StatusUpdate",
		CampaignDeparturePhotos: "DeparturePhotos",
		CampaignArrivalPhotos:   "ArrivalPhotos",
	}
}

// String returns the human-readable name of the campaign type.
func (t CampaignType) String() string {
	if str, ok := getCampaignTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values.
func (t CampaignType) Validate() error {
	if _, ok := getCampaignTypeStrings()[t]; !ok || t == CampaignUnknown {
		return errs.NewValueIsInvalidErrorWithCause("campaign type is invalid",
			fmt.Errorf("%d is not a valid campaign type", t))
	}
	return nil
}

// ParseCampaignType maps a wire-level type name to its CampaignType value.
func ParseCampaignType(raw string) (CampaignType, error) {
	for campaignType, str := range getCampaignTypeStrings() {
		if campaignType != CampaignUnknown && str == raw {
			return campaignType, nil
		}
	}
	return CampaignUnknown, errs.NewValueIsInvalidErrorWithCause("campaign type is invalid",
		fmt.Errorf("%q is not a valid campaign type", raw))
}

// Allowed reports whether the consent record permits this campaign type.
// A nil record means the customer never opted in.
func (t CampaignType) Allowed(consent *customer.Consent) bool {
	if consent == nil || consent.IsOptedOut() {
		return false
	}
	switch t {
	case CampaignStatusUpdate:
		return consent.StatusUpdates
	case CampaignDeparturePhotos:
		return consent.DeparturePhotos
	case CampaignArrivalPhotos:
		return consent.ArrivalPhotos
	default:
		return false
	}
}

// MediaStage returns the photo stage a photo campaign attaches, and
// StageUnknown for text-only campaigns.
func (t CampaignType) MediaStage() media.Stage {
	switch t {
	case CampaignDeparturePhotos:
		return media.StageDeparture
	case CampaignArrivalPhotos:
		return media.StageArrival
	default:
		return media.StageUnknown
	}
}

// Campaign is one notification run over a shipment's customers. Each
// recipient's outcome is recorded as a DeliveryLog; the campaign itself
// only tracks the run's completion.
type Campaign struct {
	id             kernel.UUID
	shipmentID     kernel.UUID
	kind           CampaignType
	message        string
	actor          string
	recipientCount int
	createdAt      time.Time
	completedAt    *time.Time

	isConstructed bool
}

// NewCampaign opens a notification run for a shipment. The message is the
// body text for status updates and the caption for photo campaigns; the
// recipient count is fixed at creation, once the customer set is resolved.
func NewCampaign(
	id kernel.UUID,
	shipmentID kernel.UUID,
	kind CampaignType,
	message string,
	actor string,
	recipientCount int,
	createdAt time.Time,
) (*Campaign, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := shipmentID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("shipment", err)
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if kind == CampaignStatusUpdate && message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}
	if recipientCount < 0 {
		return nil, errs.NewValueIsOutOfRangeError("recipient count", recipientCount, 0, "unbounded")
	}

	return &Campaign{
		id:             id,
		shipmentID:     shipmentID,
		kind:           kind,
		message:        message,
		actor:          actor,
		recipientCount: recipientCount,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// RestoreCampaign reconstructs a Campaign from persistent storage.
func RestoreCampaign(
	id kernel.UUID,
	shipmentID kernel.UUID,
	kind CampaignType,
	message string,
	actor string,
	recipientCount int,
	createdAt time.Time,
	completedAt *time.Time,
) (*Campaign, error) {
	c, err := NewCampaign(id, shipmentID, kind, message, actor, recipientCount, createdAt)
	if err != nil {
		return nil, err
	}
	c.completedAt = completedAt
	return c, nil
}

// Validate ensures the Campaign was created through a constructor.
func (c *Campaign) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCampaignIsNotConstructed
	}
	return nil
}

// ID returns the campaign's unique identifier.
func (c *Campaign) ID() kernel.UUID { return c.id }

// ShipmentID returns the shipment whose customers are notified.
func (c *Campaign) ShipmentID() kernel.UUID { return c.shipmentID }

// Kind returns what the campaign sends.
func (c *Campaign) Kind() CampaignType { return c.kind }

// Message returns the body text or photo caption.
func (c *Campaign) Message() string { return c.message }

// Actor returns who triggered the run.
func (c *Campaign) Actor() string { return c.actor }

// RecipientCount returns how many customers the run targeted.
func (c *Campaign) RecipientCount() int { return c.recipientCount }

// CreatedAt returns when the run was opened.
func (c *Campaign) CreatedAt() time.Time { return c.createdAt }

// CompletedAt returns when the run finished, nil while in flight.
func (c *Campaign) CompletedAt() *time.Time { return c.completedAt }

// IsCompleted reports whether the run finished.
func (c *Campaign) IsCompleted() bool { return c.completedAt != nil }

// MarkCompleted stamps the run as finished. A run completes exactly once,
// regardless of how many recipients failed.
func (c *Campaign) MarkCompleted(at time.Time) error {
	if c.completedAt != nil {
		return ErrCampaignAlreadyCompleted
	}
	c.completedAt = &at
	return nil
}
