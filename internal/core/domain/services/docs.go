// Package services contains stateless domain services coordinating multiple
// aggregates: the photo-evidence gate guarding lifecycle transitions, the
// capacity calculator enforcing shipment weight and volume limits, and the
// pricing engine applying resolved rates to packages.
package services
