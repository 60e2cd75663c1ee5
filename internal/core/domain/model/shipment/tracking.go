package shipment

import "time"

// TrackingSnapshot is the last state reported by the external carrier
// tracking system for a shipment's carrier code. It is overwritten as a
// whole on every successful sync; individual fields are never patched.
type TrackingSnapshot struct {
	Code         string
	Name         string
	Origin       string
	Destination  string
	ETA          *time.Time
	Status       string
	LastSyncedAt time.Time
}
