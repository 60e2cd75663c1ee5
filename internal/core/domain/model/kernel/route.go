package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// ErrSameOriginAndDestination indicates a route whose origin and destination
// warehouses are identical. A shipment must always move between two
// different warehouses.
var ErrSameOriginAndDestination = errs.NewValueIsInvalidError(
	"origin and destination warehouses must differ")

// Route is an immutable value object describing the warehouse pair a
// shipment travels between. The invariant origin != destination is enforced
// at construction and re-checked by Validate when restoring from persistence.
type Route struct {
	origin      UUID
	destination UUID
}

// NewRoute creates a Route between two distinct warehouses.
func NewRoute(origin, destination UUID) (Route, error) {
	route := Route{origin: origin, destination: destination}
	if err := route.Validate(); err != nil {
		return Route{}, err
	}
	return route, nil
}

// Origin returns the origin warehouse identifier.
func (r Route) Origin() UUID {
	return r.origin
}

// Destination returns the destination warehouse identifier.
func (r Route) Destination() UUID {
	return r.destination
}

// IsEqual reports whether two routes connect the same warehouse pair
// in the same direction.
func (r Route) IsEqual(other Route) bool {
	return r.origin.IsEqual(other.origin) && r.destination.IsEqual(other.destination)
}

// String renders the route as "origin -> destination" for logs and errors.
func (r Route) String() string {
	return fmt.Sprintf("%s -> %s", r.origin, r.destination)
}

// Validate checks both warehouse identifiers and the origin != destination invariant.
func (r Route) Validate() error {
	if err := r.origin.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin warehouse", err)
	}
	if err := r.destination.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination warehouse", err)
	}
	if r.origin.IsEqual(r.destination) {
		return ErrSameOriginAndDestination
	}
	return nil
}
