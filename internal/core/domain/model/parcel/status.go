package parcel

import (
	"fmt"

	"freight/internal/core/domain/model/lifecycle"
	"freight/internal/pkg/errs"
)

// Status represents the handling stage of a package.
//
// State transitions:
//
//	Draft -> Received -> Packed -> ReadyToShip -> Shipped
//	      -> ArrivedAtDestination -> ReadyForHandout -> HandedOut
//
// Cancelled is terminal and reachable from every non-terminal state.
// Shipped is the immutability threshold: from Shipped on, the package only
// progresses through statuses; weight, items, note and pricing are frozen.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial stage of a newly registered package.
	Draft

	// Received means the package physically arrived at the origin warehouse.
	Received

	// Packed means the package was packed for transport. Entering Packed
	// triggers the pricing computation.
	Packed

	// ReadyToShip means the package is staged for loading.
	ReadyToShip

	// Shipped means the package left with its shipment. Requires departure
	// photo evidence. Immutability threshold.
	Shipped

	// ArrivedAtDestination means the package reached the destination warehouse.
	ArrivedAtDestination

	// ReadyForHandout means the package awaits customer pickup.
	ReadyForHandout

	// HandedOut is the successful terminal stage. Requires arrival photo
	// evidence.
	HandedOut

	// Cancelled is the abandoned terminal stage. Cancelled packages do not
	// count against shipment capacity.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		Draft:                "Draft",
		Received:             "Received",
		Packed:               "Packed",
		ReadyToShip:          "ReadyToShip",
		Shipped:              "Shipped",
		ArrivedAtDestination: "ArrivedAtDestination",
		ReadyForHandout:      "ReadyForHandout",
		HandedOut:            "HandedOut",
		Cancelled:            "Cancelled",
	}
}

var transitions = lifecycle.NewTable("package", map[Status][]Status{
	Draft:                {Received, Cancelled},
	Received:             {Packed, Cancelled},
	Packed:               {ReadyToShip, Cancelled},
	ReadyToShip:          {Shipped, Cancelled},
	Shipped:              {ArrivedAtDestination, Cancelled},
	ArrivedAtDestination: {ReadyForHandout, Cancelled},
	ReadyForHandout:      {HandedOut, Cancelled},
})

// Transitions exposes the package rule table so tests can enumerate
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
			fmt.Errorf("%d is not a valid package status", s))
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
		fmt.Errorf("%q is not a valid package status", raw))
}

// IsLocked reports whether the package passed the immutability threshold.
// Locked packages reject item, measurement, note and pricing mutations.
func (s Status) IsLocked() bool {
	return s >= Shipped
}

// IsTerminalHandling reports whether the package reached a terminal
// handling stage, which every package must do before its shipment closes.
func (s Status) IsTerminalHandling() bool {
	return s == HandedOut || s == Cancelled
}
