package services

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"
	"freight/internal/core/domain/model/parcel"
)

// ErrPhotoGateFailed is the sentinel behind every PhotoGateError.
var ErrPhotoGateFailed = errors.New("photo evidence is missing")

// MissingEvidence identifies one package that blocks a gated transition.
// CustomerLabel is the owning customer's display name, so operators can
// act on the failure without resolving identifiers first.
type MissingEvidence struct {
	ParcelID      kernel.UUID
	CustomerLabel string
	Stage         media.Stage
}

// PhotoGateError reports every package that lacks the required photo
// evidence for a gated transition. The full list is collected in one pass
// so a single attempt surfaces all offenders.
type PhotoGateError struct {
	Stage   media.Stage
	Missing []MissingEvidence
}

// NewPhotoGateError creates a PhotoGateError for the given stage.
func NewPhotoGateError(stage media.Stage, missing []MissingEvidence) *PhotoGateError {
	return &PhotoGateError{Stage: stage, Missing: missing}
}

// Error implements the error interface.
func (e *PhotoGateError) Error() string {
	labels := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		labels = append(labels, fmt.Sprintf("%s (%s)", m.CustomerLabel, m.ParcelID))
	}
	return fmt.Sprintf("photo evidence is missing: %d package(s) lack %s photos: %s",
		len(e.Missing), strings.ToLower(e.Stage.String()), strings.Join(labels, ", "))
}

// Unwrap implements error unwrapping to the sentinel error.
func (e *PhotoGateError) Unwrap() error {
	return ErrPhotoGateFailed
}

// CustomerNamer resolves a customer id to a display name for gate reports.
type CustomerNamer func(customerID kernel.UUID) string

// PhotoGate is the domain service enforcing photo-evidence compliance.
// The shipment-level gate recounts media rows instead of trusting the
// packages' denormalized flags; the package-level gate runs on the flag
// because single-package transitions follow an upload in the same flow.
type PhotoGate struct{}

// NewPhotoGate creates a new PhotoGate instance.
func NewPhotoGate() PhotoGate {
	return PhotoGate{}
}

// CheckShipment verifies that every active package of a shipment has at
// least one photo of the given stage, counting the given media rows.
// Cancelled packages are exempt. Returns a PhotoGateError listing every
// offender, nil when the gate passes.
func (g PhotoGate) CheckShipment(
	stage media.Stage,
	parcels []*parcel.Parcel,
	rows []*media.Media,
	nameOf CustomerNamer,
) error {
	counts := make(map[kernel.UUID]int, len(parcels))
	for _, row := range rows {
		if row.Stage() == stage {
			counts[row.ParcelID()]++
		}
	}

	var missing []MissingEvidence
	for _, p := range parcels {
		if !p.IsActive() {
			continue
		}
		if counts[p.ID()] == 0 {
			missing = append(missing, MissingEvidence{
				ParcelID:      p.ID(),
				CustomerLabel: nameOf(p.CustomerID()),
				Stage:         stage,
			})
		}
	}

	if len(missing) > 0 {
		return NewPhotoGateError(stage, missing)
	}
	return nil
}

// CheckParcelTransition verifies the photo evidence a single package's
// status move requires: departure photos before Shipped, arrival photos
// before HandedOut. Other moves are not gated.
func (g PhotoGate) CheckParcelTransition(
	p *parcel.Parcel,
	target parcel.Status,
	nameOf CustomerNamer,
) error {
	var stage media.Stage
	var present bool

	switch target {
	case parcel.Shipped:
		stage, present = media.StageDeparture, p.HasDeparturePhotos()
	case parcel.HandedOut:
		stage, present = media.StageArrival, p.HasArrivalPhotos()
	default:
		return nil
	}

	if present {
		return nil
	}
	return NewPhotoGateError(stage, []MissingEvidence{{
		ParcelID:      p.ID(),
		CustomerLabel: nameOf(p.CustomerID()),
		Stage:         stage,
	}})
}
