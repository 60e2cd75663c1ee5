package shipment

import (
	"errors"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// carrierCodeMaxLen is the longest carrier/container code accepted,
// matching the ISO 6346 container number length.
const carrierCodeMaxLen = 11

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrReferenceCodeIsRequired is returned when creating a shipment without
	// a generated reference code.
	ErrReferenceCodeIsRequired = errs.NewValueIsRequiredError("reference code")

	// ErrCarrierCodeIsRequired is returned when an operation needs a carrier
	// code that has not been set: scheduling and departing.
	ErrCarrierCodeIsRequired = errs.NewValueIsRequiredError("carrier code")
)

// Shipment is the aggregate root for one freight movement between two
// warehouses. It owns the status state machine, the carrier code, the
// capacity limits and running totals, and the external tracking snapshot.
//
// Invariants:
//   - origin != destination (enforced by kernel.Route)
//   - carrier code is set before the shipment may be Scheduled or Departed
//   - carrier code only changes while the shipment is Draft
//   - status moves follow the shipment transition table
//   - a zero capacity limit means unlimited
//
// Shipments are never hard-deleted; Cancelled is the abandonment path.
type Shipment struct {
	id                kernel.UUID
	refCode           string
	carrierCode       string
	route             kernel.Route
	plannedDeparture  time.Time
	plannedArrival    time.Time
	actualDepartureAt *time.Time
	actualArrivalAt   *time.Time
	maxWeightKg       float64
	maxVolumeM3       float64
	totalWeightKg     float64
	totalVolumeM3     float64
	status            Status
	tracking          *TrackingSnapshot

	isConstructed bool
}

// NewShipment creates a Draft shipment with a generated reference code on the
// given route. Capacity limits of zero mean unlimited.
func NewShipment(
	id kernel.UUID,
	refCode string,
	route kernel.Route,
	plannedDeparture time.Time,
	plannedArrival time.Time,
	maxWeightKg float64,
	maxVolumeM3 float64,
) (*Shipment, error) {
	s := &Shipment{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setRefCode(refCode),
		s.setRoute(route),
		s.setPlannedWindow(plannedDeparture, plannedArrival),
		s.setCapacityLimits(maxWeightKg, maxVolumeM3),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistent storage,
// including status, actual timestamps, running totals and the tracking
// snapshot. The restored aggregate behaves identically to one built
// through normal domain operations.
func RestoreShipment(
	id kernel.UUID,
	refCode string,
	carrierCode string,
	route kernel.Route,
	plannedDeparture time.Time,
	plannedArrival time.Time,
	actualDepartureAt *time.Time,
	actualArrivalAt *time.Time,
	maxWeightKg float64,
	maxVolumeM3 float64,
	totalWeightKg float64,
	totalVolumeM3 float64,
	status Status,
	tracking *TrackingSnapshot,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setRefCode(refCode),
		s.setRoute(route),
		s.setPlannedWindow(plannedDeparture, plannedArrival),
		s.setCapacityLimits(maxWeightKg, maxVolumeM3),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	if carrierCode != "" {
		if err := s.setCarrierCode(carrierCode); err != nil {
			return nil, err
		}
	}

	s.actualDepartureAt = actualDepartureAt
	s.actualArrivalAt = actualArrivalAt
	s.totalWeightKg = totalWeightKg
	s.totalVolumeM3 = totalVolumeM3
	s.tracking = tracking
	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// RefCode returns the human-readable reference code.
func (s *Shipment) RefCode() string { return s.refCode }

// CarrierCode returns the carrier/container code, empty until set.
func (s *Shipment) CarrierCode() string { return s.carrierCode }

// Route returns the origin/destination warehouse pair.
func (s *Shipment) Route() kernel.Route { return s.route }

// PlannedDeparture returns the planned departure timestamp.
func (s *Shipment) PlannedDeparture() time.Time { return s.plannedDeparture }

// PlannedArrival returns the planned arrival timestamp.
func (s *Shipment) PlannedArrival() time.Time { return s.plannedArrival }

// ActualDepartureAt returns the stamped departure time, nil until Departed.
func (s *Shipment) ActualDepartureAt() *time.Time { return s.actualDepartureAt }

// ActualArrivalAt returns the stamped arrival time, nil until Arrived.
func (s *Shipment) ActualArrivalAt() *time.Time { return s.actualArrivalAt }

// MaxWeightKg returns the weight limit in kilograms, zero meaning unlimited.
func (s *Shipment) MaxWeightKg() float64 { return s.maxWeightKg }

// MaxVolumeM3 returns the volume limit in cubic meters, zero meaning unlimited.
func (s *Shipment) MaxVolumeM3() float64 { return s.maxVolumeM3 }

// TotalWeightKg returns the running weight total of active packages.
func (s *Shipment) TotalWeightKg() float64 { return s.totalWeightKg }

// TotalVolumeM3 returns the running volume total of active packages.
func (s *Shipment) TotalVolumeM3() float64 { return s.totalVolumeM3 }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// Tracking returns the last synced carrier snapshot, nil if never synced.
func (s *Shipment) Tracking() *TrackingSnapshot { return s.tracking }

// SetCarrierCode updates the carrier/container code. Allowed only while the
// shipment is Draft. The code is normalized to uppercase and must be
// non-blank and at most 11 characters.
func (s *Shipment) SetCarrierCode(code string) error {
	if s.status != Draft {
		return errs.NewLockedErrorWithCause("shipment", s.id.String(),
			errors.New("carrier code can only change while Draft"))
	}
	return s.setCarrierCode(code)
}

// ChangeStatus performs a generic status move validated by the transition
// table. Moving to Scheduled additionally requires the carrier code to be
// set. Moving to Arrived stamps the actual arrival time.
func (s *Shipment) ChangeStatus(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == Scheduled && s.carrierCode == "" {
		return ErrCarrierCodeIsRequired
	}
	if err := transitions.Check(s.status, target); err != nil {
		return err
	}

	s.status = target
	if target == Arrived && s.actualArrivalAt == nil {
		arrivedAt := now
		s.actualArrivalAt = &arrivedAt
	}
	return nil
}

// Depart moves the shipment to Departed and stamps the actual departure
// time. The photo compliance gate must have passed before this is called;
// Depart itself only enforces the carrier code and the transition rule.
func (s *Shipment) Depart(now time.Time) error {
	if s.carrierCode == "" {
		return ErrCarrierCodeIsRequired
	}
	if err := transitions.Check(s.status, Departed); err != nil {
		return err
	}

	s.status = Departed
	departedAt := now
	s.actualDepartureAt = &departedAt
	return nil
}

// Close moves the shipment to Closed. The arrival photo gate and the
// all-packages-terminal check happen before this is called.
func (s *Shipment) Close() error {
	if err := transitions.Check(s.status, Closed); err != nil {
		return err
	}
	s.status = Closed
	return nil
}

// CanSyncTracking reports whether external tracking sync is permitted:
// any status except Draft and Cancelled.
func (s *Shipment) CanSyncTracking() bool {
	return s.status != Draft && s.status != Cancelled
}

// ApplyTracking overwrites the tracking snapshot with the carrier's latest
// state and stamps the sync time. Rejected while Draft or Cancelled.
func (s *Shipment) ApplyTracking(snapshot TrackingSnapshot, syncedAt time.Time) error {
	if !s.CanSyncTracking() {
		return errs.NewLockedErrorWithCause("shipment", s.id.String(),
			errors.New("tracking sync is not available in status "+s.status.String()))
	}

	snapshot.LastSyncedAt = syncedAt
	s.tracking = &snapshot
	return nil
}

// SetTotals persists recomputed weight/volume totals of active packages.
// Totals are advisory aggregates; the capacity gate on package edits is
// enforced by the capacity calculator, not here.
func (s *Shipment) SetTotals(totalWeightKg, totalVolumeM3 float64) error {
	if totalWeightKg < 0 {
		return errs.NewValueIsOutOfRangeError("total weight", totalWeightKg, 0, "unbounded")
	}
	if totalVolumeM3 < 0 {
		return errs.NewValueIsOutOfRangeError("total volume", totalVolumeM3, 0, "unbounded")
	}

	s.totalWeightKg = totalWeightKg
	s.totalVolumeM3 = totalVolumeM3
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setRefCode(refCode string) error {
	if strings.TrimSpace(refCode) == "" {
		return ErrReferenceCodeIsRequired
	}
	s.refCode = refCode
	return nil
}

func (s *Shipment) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	s.route = route
	return nil
}

func (s *Shipment) setPlannedWindow(departure, arrival time.Time) error {
	if !departure.IsZero() && !arrival.IsZero() && arrival.Before(departure) {
		return errs.NewValueIsInvalidError("planned arrival must not precede planned departure")
	}
	s.plannedDeparture = departure
	s.plannedArrival = arrival
	return nil
}

func (s *Shipment) setCapacityLimits(maxWeightKg, maxVolumeM3 float64) error {
	if maxWeightKg < 0 {
		return errs.NewValueIsOutOfRangeError("max weight", maxWeightKg, 0, "unbounded")
	}
	if maxVolumeM3 < 0 {
		return errs.NewValueIsOutOfRangeError("max volume", maxVolumeM3, 0, "unbounded")
	}
	s.maxWeightKg = maxWeightKg
	s.maxVolumeM3 = maxVolumeM3
	return nil
}

func (s *Shipment) setCarrierCode(code string) error {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return ErrCarrierCodeIsRequired
	}
	if len(normalized) > carrierCodeMaxLen {
		return errs.NewValueIsOutOfRangeError("carrier code length", len(normalized), 1, carrierCodeMaxLen)
	}
	s.carrierCode = normalized
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
