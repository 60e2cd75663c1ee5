// Package shipment contains the Shipment aggregate: one freight movement
// between two warehouses carrying customer packages. The aggregate owns the
// shipment status state machine, carrier code rules, capacity totals, and
// the external carrier tracking snapshot.
package shipment
