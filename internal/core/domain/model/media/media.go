package media

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrMediaIsNotConstructed is returned when a Media was not created through
// the NewMedia constructor.
var ErrMediaIsNotConstructed = errors.New("Media must be created via NewMedia constructor")

// Stage identifies which lifecycle point a photo documents.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	StageUnknown Stage = iota

	// StageReception documents the package arriving at the origin warehouse.
	StageReception

	// StageDeparture documents the package before its shipment departs.
	// Required evidence for the Shipped transition.
	StageDeparture

	// StageArrival documents the package at the destination warehouse.
	// Required evidence for the HandedOut transition.
	StageArrival
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:   "Unknown",
		StageReception: "Reception",
		StageDeparture: "Departure",
		StageArrival:   "Arrival",
	}
}

// String returns the human-readable name of the stage.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values.
func (s Stage) Validate() error {
	if _, ok := getStageStrings()[s]; !ok || s == StageUnknown {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("%d is not a valid media stage", s))
	}
	return nil
}

// ParseStage maps a wire-level stage name to its Stage value.
func ParseStage(raw string) (Stage, error) {
	for stage, str := range getStageStrings() {
		if stage != StageUnknown && str == raw {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause("stage is invalid",
		fmt.Errorf("%q is not a valid media stage", raw))
}

// Media is one append-only photo record attached to a package. The record
// stores the object-storage keys of the original upload and the processed
// derivative; the bytes live in object storage, never in the database.
type Media struct {
	id           kernel.UUID
	parcelID     kernel.UUID
	stage        Stage
	originalKey  string
	processedKey string
	contentType  string
	sizeBytes    int64
	uploadedBy   string
	createdAt    time.Time

	isConstructed bool
}

// NewMedia records a processed photo upload for the given package and stage.
func NewMedia(
	id kernel.UUID,
	parcelID kernel.UUID,
	stage Stage,
	originalKey string,
	processedKey string,
	contentType string,
	sizeBytes int64,
	uploadedBy string,
	createdAt time.Time,
) (*Media, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := parcelID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("package", err)
	}
	if err := stage.Validate(); err != nil {
		return nil, err
	}
	if originalKey == "" {
		return nil, errs.NewValueIsRequiredError("original key")
	}
	if processedKey == "" {
		return nil, errs.NewValueIsRequiredError("processed key")
	}
	if sizeBytes <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("size", sizeBytes, 1, "unbounded")
	}

	return &Media{
		id:            id,
		parcelID:      parcelID,
		stage:         stage,
		originalKey:   originalKey,
		processedKey:  processedKey,
		contentType:   contentType,
		sizeBytes:     sizeBytes,
		uploadedBy:    uploadedBy,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreMedia reconstructs a Media record from persistent storage.
func RestoreMedia(
	id kernel.UUID,
	parcelID kernel.UUID,
	stage Stage,
	originalKey string,
	processedKey string,
	contentType string,
	sizeBytes int64,
	uploadedBy string,
	createdAt time.Time,
) (*Media, error) {
	return NewMedia(id, parcelID, stage, originalKey, processedKey, contentType,
		sizeBytes, uploadedBy, createdAt)
}

// Validate ensures the Media was created through the constructor.
func (m *Media) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMediaIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (m *Media) ID() kernel.UUID { return m.id }

// ParcelID returns the owning package identifier.
func (m *Media) ParcelID() kernel.UUID { return m.parcelID }

// Stage returns the documented lifecycle point.
func (m *Media) Stage() Stage { return m.stage }

// OriginalKey returns the object-storage key of the raw upload.
func (m *Media) OriginalKey() string { return m.originalKey }

// ProcessedKey returns the object-storage key of the watermarked derivative.
func (m *Media) ProcessedKey() string { return m.processedKey }

// ContentType returns the upload's MIME type.
func (m *Media) ContentType() string { return m.contentType }

// SizeBytes returns the size of the original upload.
func (m *Media) SizeBytes() int64 { return m.sizeBytes }

// UploadedBy returns the identifier of who uploaded the photo.
func (m *Media) UploadedBy() string { return m.uploadedBy }

// CreatedAt returns when the record was written.
func (m *Media) CreatedAt() time.Time { return m.createdAt }
