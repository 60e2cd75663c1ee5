// Package lifecycle implements the shared status transition rule table.
// Shipments, packages, and supply orders each own a state machine of the
// same shape: a static allow-list of (from, to) status pairs. Keeping the
// allow-lists as data lets tests enumerate every pair exhaustively and lets
// one checker serve all three entity kinds.
package lifecycle

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel every transition rejection unwraps to.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError names the entity kind and the attempted source and
// target statuses of a rejected transition.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status constrains table parameters to comparable enum types that can
// render themselves for error messages.
type Status interface {
	comparable
	fmt.Stringer
}

// Table is the allow-list of legal status moves for one entity kind.
// A status absent from the map is terminal. Tables are static data built
// once at package init and never mutated afterwards.
type Table[S Status] struct {
	entity  string
	allowed map[S][]S
}

// NewTable creates a transition table for the named entity kind.
func NewTable[S Status](entity string, allowed map[S][]S) Table[S] {
	return Table[S]{entity: entity, allowed: allowed}
}

// Entity returns the entity kind this table governs.
func (t Table[S]) Entity() string {
	return t.entity
}

// Can reports whether moving from one status to another is allowed.
func (t Table[S]) Can(from, to S) bool {
	for _, candidate := range t.allowed[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

// Check returns nil for a legal move and an *InvalidTransitionError naming
// the attempted pair otherwise.
func (t Table[S]) Check(from, to S) error {
	if t.Can(from, to) {
		return nil
	}
	return &InvalidTransitionError{Entity: t.entity, From: from.String(), To: to.String()}
}

// AllowedFrom returns a copy of the legal targets from the given status.
// An empty result means the status is terminal.
func (t Table[S]) AllowedFrom(from S) []S {
	out := make([]S, len(t.allowed[from]))
	copy(out, t.allowed[from])
	return out
}
