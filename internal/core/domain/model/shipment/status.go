package shipment

import (
	"fmt"

	"freight/internal/core/domain/model/lifecycle"
	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Draft -> Scheduled -> ReadyToDepart -> Departed -> Arrived -> Closed
//
// Cancelled is terminal and reachable from every non-terminal state.
type Status int

const (
	// Unknown represents an invalid or undefined status and helps catch
	// uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status. Carrier code and packages may still change.
	Draft

	// Scheduled means the shipment is booked with a carrier. Requires a
	// carrier code to be set.
	Scheduled

	// ReadyToDepart means loading finished and the shipment awaits departure.
	ReadyToDepart

	// Departed means the shipment left the origin warehouse. Departure
	// requires photo evidence for every contained package.
	Departed

	// Arrived means the shipment reached the destination warehouse.
	Arrived

	// Closed is the successful terminal state. Closing requires arrival
	// photo evidence and every package in a terminal handling stage.
	Closed

	// Cancelled is the abandoned terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Draft:         "Draft",
		Scheduled:     "Scheduled",
		ReadyToDepart: "ReadyToDepart",
		Departed:      "Departed",
		Arrived:       "Arrived",
		Closed:        "Closed",
		Cancelled:     "Cancelled",
	}
}

// transitions is the static allow-list validated on every status move.
var transitions = lifecycle.NewTable("shipment", map[Status][]Status{
	Draft:         {Scheduled, Cancelled},
	Scheduled:     {ReadyToDepart, Cancelled},
	ReadyToDepart: {Departed, Cancelled},
	Departed:      {Arrived, Cancelled},
	Arrived:       {Closed, Cancelled},
})

// Transitions exposes the shipment rule table so tests can enumerate
// every (from, to) pair.
func Transitions() lifecycle.Table[Status] {
	return transitions
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// ParseStatus maps a wire-level status name to its Status value.
func ParseStatus(raw string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid shipment status", raw))
}

// IsTerminal reports whether no further transitions exist from this status.
func (s Status) IsTerminal() bool {
	return s == Closed || s == Cancelled
}
