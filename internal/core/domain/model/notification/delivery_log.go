package notification

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrDeliveryLogIsNotConstructed is returned when a DeliveryLog was not
// created through the NewDeliveryLog constructor.
var ErrDeliveryLogIsNotConstructed = errors.New("DeliveryLog must be created via NewDeliveryLog constructor")

// DeliveryResult is the per-recipient outcome of one campaign delivery.
type DeliveryResult int

const (
	// DeliveryUnknown represents an invalid or undefined result.
	DeliveryUnknown DeliveryResult = iota

	// DeliverySent means the message was accepted by the WhatsApp API.
	DeliverySent

	// DeliveryFailed means the send attempt errored. Failures never abort
	// the rest of the run.
	DeliveryFailed

	// DeliverySkippedNotOptedIn means the recipient's consent does not
	// cover the campaign type, so no send was attempted.
	DeliverySkippedNotOptedIn
)

func getDeliveryResultStrings() map[DeliveryResult]string {
	return map[DeliveryResult]string{
		DeliveryUnknown:           "Unknown",
		DeliverySent:              "Sent",
		DeliveryFailed:            "Failed",
		DeliverySkippedNotOptedIn: "SkippedNotOptedIn",
	}
}

// String returns the human-readable name of the result.
func (r DeliveryResult) String() string {
	if str, ok := getDeliveryResultStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values.
func (r DeliveryResult) Validate() error {
	if _, ok := getDeliveryResultStrings()[r]; !ok || r == DeliveryUnknown {
		return errs.NewValueIsInvalidErrorWithCause("delivery result is invalid",
			fmt.Errorf("%d is not a valid delivery result", r))
	}
	return nil
}

// DeliveryLog is one immutable per-recipient record of a campaign run.
// Every customer of the shipment gets exactly one row per run, whatever
// the outcome, so a run's logs are a complete account of who was reached,
// who failed and who was skipped.
type DeliveryLog struct {
	id         kernel.UUID
	campaignID kernel.UUID
	customerID kernel.UUID
	phone      string
	result     DeliveryResult
	detail     string
	createdAt  time.Time

	isConstructed bool
}

// NewDeliveryLog records one recipient's outcome. Detail carries the send
// error for failures and is empty otherwise.
func NewDeliveryLog(
	id kernel.UUID,
	campaignID kernel.UUID,
	customerID kernel.UUID,
	phone string,
	result DeliveryResult,
	detail string,
	createdAt time.Time,
) (*DeliveryLog, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := campaignID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("campaign", err)
	}
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}

	return &DeliveryLog{
		id:            id,
		campaignID:    campaignID,
		customerID:    customerID,
		phone:         phone,
		result:        result,
		detail:        detail,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreDeliveryLog reconstructs a DeliveryLog from persistent storage.
func RestoreDeliveryLog(
	id kernel.UUID,
	campaignID kernel.UUID,
	customerID kernel.UUID,
	phone string,
	result DeliveryResult,
	detail string,
	createdAt time.Time,
) (*DeliveryLog, error) {
	return NewDeliveryLog(id, campaignID, customerID, phone, result, detail, createdAt)
}

// Validate ensures the DeliveryLog was created through a constructor.
func (l *DeliveryLog) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrDeliveryLogIsNotConstructed
	}
	return nil
}

// ID returns the log row identifier.
func (l *DeliveryLog) ID() kernel.UUID { return l.id }

// CampaignID returns the owning campaign.
func (l *DeliveryLog) CampaignID() kernel.UUID { return l.campaignID }

// CustomerID returns the recipient.
func (l *DeliveryLog) CustomerID() kernel.UUID { return l.customerID }

// Phone returns the delivery address used for the attempt.
func (l *DeliveryLog) Phone() string { return l.phone }

// Result returns the delivery outcome.
func (l *DeliveryLog) Result() DeliveryResult { return l.result }

// Detail returns the failure detail, empty for sent and skipped rows.
func (l *DeliveryLog) Detail() string { return l.detail }

// CreatedAt returns when the outcome was recorded.
func (l *DeliveryLog) CreatedAt() time.Time { return l.createdAt }
