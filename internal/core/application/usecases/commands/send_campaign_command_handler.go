package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"
	"freight/internal/core/domain/model/notification"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/ports"
)

// ErrNoRecipients is returned when the shipment has no packages owned by
// the targeted customers.
var ErrNoRecipients = errors.New("campaign has no recipients")

const photoLinkExpiry = 72 * time.Hour

// SendCampaignCommandHandler runs WhatsApp campaigns. Consent is checked
// per recipient and per campaign type; non-consenting customers get a
// skipped log row and no send attempt. A failed send logs the failure and
// the run continues, so one broken phone number cannot starve the rest.
// Every targeted customer ends up with exactly one delivery log row.
type SendCampaignCommandHandler struct {
	uowFactory NotificationUoWFactory
	sender     ports.MessageSender
	storage    ports.PhotoStorage
}

// NewSendCampaignCommandHandler creates a handler for campaign runs.
func NewSendCampaignCommandHandler(
	uowFactory NotificationUoWFactory,
	sender ports.MessageSender,
	storage ports.PhotoStorage,
) SendCampaignCommandHandler {
	return SendCampaignCommandHandler{
		uowFactory: uowFactory,
		sender:     sender,
		storage:    storage,
	}
}

// Handle processes the campaign command.
func (h SendCampaignCommandHandler) Handle(ctx context.Context, command SendCampaignCommand) error {
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

	if _, err := uow.ShipmentRepository().Get(ctx, command.ShipmentID()); err != nil {
		return err
	}

	parcels, err := uow.ParcelRepository().GetAllByShipment(ctx, command.ShipmentID())
	if err != nil {
		return err
	}

	recipients, parcelsByCustomer := resolveRecipients(parcels, command.CustomerID())
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	customers, err := uow.CustomerRepository().GetAllByIDs(ctx, recipients)
	if err != nil {
		return err
	}

	campaign, err := notification.NewCampaign(
		kernel.NewUUID(),
		command.ShipmentID(),
		command.Kind(),
		command.Message(),
		command.Actor(),
		len(customers),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	notificationRepo := uow.NotificationRepository()
	if err := notificationRepo.AddCampaign(ctx, campaign); err != nil {
		return err
	}

	var rows []*media.Media
	if command.Kind().MediaStage() != media.StageUnknown {
		rows, err = uow.MediaRepository().GetAllByShipment(ctx, command.ShipmentID())
		if err != nil {
			return err
		}
	}

	for _, recipient := range customers {
		log, err := h.deliver(ctx, campaign, command, recipient, parcelsByCustomer[recipient.ID()], rows)
		if err != nil {
			return err
		}
		if err := notificationRepo.AddDeliveryLog(ctx, log); err != nil {
			return err
		}
	}

	if err := campaign.MarkCompleted(time.Now().UTC()); err != nil {
		return err
	}
	if err := notificationRepo.UpdateCampaign(ctx, campaign); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// deliver attempts one recipient and returns the delivery log row to
// append. Presign and send failures are captured in the row, never
// returned, so one recipient cannot abort the rest of the run.
func (h SendCampaignCommandHandler) deliver(
	ctx context.Context,
	campaign *notification.Campaign,
	command SendCampaignCommand,
	recipient *customer.Customer,
	owned []*parcel.Parcel,
	rows []*media.Media,
) (*notification.DeliveryLog, error) {
	if !command.Kind().Allowed(recipient.Consent()) {
		return notification.NewDeliveryLog(
			kernel.NewUUID(), campaign.ID(), recipient.ID(), recipient.Phone(),
			notification.DeliverySkippedNotOptedIn, "", time.Now().UTC(),
		)
	}

	urls, err := h.photoLinks(ctx, command.Kind().MediaStage(), owned, rows)
	if err != nil {
		return notification.NewDeliveryLog(
			kernel.NewUUID(), campaign.ID(), recipient.ID(), recipient.Phone(),
			notification.DeliveryFailed, err.Error(), time.Now().UTC(),
		)
	}

	sendErr := h.sender.Send(ctx, ports.OutgoingMessage{
		Phone:     recipient.Phone(),
		Body:      command.Message(),
		MediaURLs: urls,
	})
	if sendErr != nil {
		return notification.NewDeliveryLog(
			kernel.NewUUID(), campaign.ID(), recipient.ID(), recipient.Phone(),
			notification.DeliveryFailed, sendErr.Error(), time.Now().UTC(),
		)
	}

	return notification.NewDeliveryLog(
		kernel.NewUUID(), campaign.ID(), recipient.ID(), recipient.Phone(),
		notification.DeliverySent, "", time.Now().UTC(),
	)
}

// photoLinks presigns download links for the recipient's own packages'
// photos at the campaign's stage. Text campaigns attach nothing.
func (h SendCampaignCommandHandler) photoLinks(
	ctx context.Context,
	stage media.Stage,
	owned []*parcel.Parcel,
	rows []*media.Media,
) ([]string, error) {
	if stage == media.StageUnknown {
		return nil, nil
	}

	mine := make(map[kernel.UUID]bool, len(owned))
	for _, p := range owned {
		mine[p.ID()] = true
	}

	var urls []string
	for _, row := range rows {
		if row.Stage() != stage || !mine[row.ParcelID()] {
			continue
		}
		url, err := h.storage.PresignedURL(ctx, row.ProcessedKey(), photoLinkExpiry)
		if err != nil {
			return nil, fmt.Errorf("presign %s: %w", row.ProcessedKey(), err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// resolveRecipients collects the distinct owners of the shipment's active
// packages, optionally restricted to one customer, plus each owner's
// packages for photo attachment.
func resolveRecipients(
	parcels []*parcel.Parcel,
	filter *kernel.UUID,
) ([]kernel.UUID, map[kernel.UUID][]*parcel.Parcel) {
	byCustomer := make(map[kernel.UUID][]*parcel.Parcel)
	var order []kernel.UUID
	for _, p := range parcels {
		if !p.IsActive() {
			continue
		}
		if filter != nil && !p.CustomerID().IsEqual(*filter) {
			continue
		}
		if _, ok := byCustomer[p.CustomerID()]; !ok {
			order = append(order, p.CustomerID())
		}
		byCustomer[p.CustomerID()] = append(byCustomer[p.CustomerID()], p)
	}
	return order, byCustomer
}
