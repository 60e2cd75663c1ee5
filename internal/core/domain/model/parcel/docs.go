// Package parcel holds the Parcel aggregate: one customer's package inside
// a shipment. A parcel carries the handling-stage state machine, weight and
// volume measurements, content items, the applied pricing rates with their
// charge, and the denormalized photo-evidence flags.
//
// Shipped is the immutability threshold. From Shipped on the aggregate
// only progresses through statuses; every other mutation returns
// errs.ErrLocked. Manual pricing corrections produce immutable Override
// audit rows, and the aggregate's override flag, once set, never clears.
package parcel
