package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrUploadParcelMediaCommandIsNotConstructed = errors.New(
	"UploadParcelMediaCommand must be created via NewUploadParcelMediaCommand constructor",
)

// UploadParcelMediaCommand attaches one photo to a package at a given
// lifecycle stage. The raw bytes travel in the command; the handler stores
// them in object storage and keeps only the keys in the database.
type UploadParcelMediaCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	stage       media.Stage
	data        []byte
	contentType string
	capturedAt  time.Time
	uploadedBy  string

	guard guard.ConstructorGuard
}

// NewUploadParcelMediaCommand creates a command to upload a photo.
// Empty files are rejected up front.
func NewUploadParcelMediaCommand(
	parcelID kernel.UUID,
	stage media.Stage,
	data []byte,
	contentType string,
	capturedAt time.Time,
	uploadedBy string,
) (UploadParcelMediaCommand, error) {
	if err := errors.Join(parcelID.Validate(), stage.Validate()); err != nil {
		return UploadParcelMediaCommand{}, err
	}
	if len(data) == 0 {
		return UploadParcelMediaCommand{}, errs.NewValueIsRequiredError("file")
	}

	return UploadParcelMediaCommand{
		parcelID:    parcelID,
		stage:       stage,
		data:        data,
		contentType: contentType,
		capturedAt:  capturedAt,
		uploadedBy:  uploadedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadParcelMediaCommand) Validate() error {
	return c.guard.Validate(ErrUploadParcelMediaCommandIsNotConstructed)
}

// ParcelID returns the target package.
func (c UploadParcelMediaCommand) ParcelID() kernel.UUID { return c.parcelID }

// Stage returns the documented lifecycle point.
func (c UploadParcelMediaCommand) Stage() media.Stage { return c.stage }

// Data returns the raw photo bytes.
func (c UploadParcelMediaCommand) Data() []byte { return c.data }

// ContentType returns the upload's MIME type.
func (c UploadParcelMediaCommand) ContentType() string { return c.contentType }

// CapturedAt returns when the photo was taken.
func (c UploadParcelMediaCommand) CapturedAt() time.Time { return c.capturedAt }

// UploadedBy returns the identifier of who uploaded the photo.
func (c UploadParcelMediaCommand) UploadedBy() string { return c.uploadedBy }
