package ports

import (
	"context"
	"io"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/shipment"
)

// ReferenceCodeGenerator issues human-readable shipment reference codes,
// unique per origin warehouse.
type ReferenceCodeGenerator interface {
	Next(ctx context.Context, originWarehouseID kernel.UUID) (string, error)
}

// RateResolver resolves the unit rates applicable to a package, based on
// its shipment's route and the active pricing configuration.
type RateResolver interface {
	Resolve(ctx context.Context, route kernel.Route) (parcel.Rates, error)
}

// StoredObject describes one object written to photo storage.
type StoredObject struct {
	Key       string
	SizeBytes int64
}

// PhotoStorage stores photo bytes in object storage. The database keeps
// only the returned keys.
type PhotoStorage interface {
	// Put streams one object into storage under the given key.
	Put(ctx context.Context, key string, contentType string, size int64, body io.Reader) (StoredObject, error)

	// PresignedURL returns a time-limited download link for the given key.
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ImageTransform produces the processed derivative of an uploaded photo,
// watermarked with the reference code and capture time.
type ImageTransform interface {
	Process(original []byte, label string, takenAt time.Time) ([]byte, error)
}

// TrackingLookup fetches the carrier's current view of a shipment by its
// carrier code. Returns errs.ErrObjectNotFound when the carrier does not
// know the code.
type TrackingLookup interface {
	Lookup(ctx context.Context, carrierCode string) (shipment.TrackingSnapshot, error)
}

// OutgoingMessage is one WhatsApp message to a single recipient. Photo
// attachments are presigned storage links.
type OutgoingMessage struct {
	Phone     string
	Body      string
	MediaURLs []string
}

// MessageSender delivers one message through the WhatsApp API. A non-nil
// error marks the recipient's delivery log as failed and never aborts the
// rest of a campaign run.
type MessageSender interface {
	Send(ctx context.Context, message OutgoingMessage) error
}
