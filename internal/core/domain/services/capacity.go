package services

import (
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
)

// Totals is the aggregated load of a shipment's active packages.
type Totals struct {
	WeightKg float64
	VolumeM3 float64
}

// CapacityCalculator recomputes shipment load totals and enforces the
// configured capacity limits. Cancelled packages never count; a zero limit
// means unlimited.
type CapacityCalculator struct{}

// NewCapacityCalculator creates a new CapacityCalculator instance.
func NewCapacityCalculator() CapacityCalculator {
	return CapacityCalculator{}
}

// Totals sums weight and volume over the active packages.
func (c CapacityCalculator) Totals(parcels []*parcel.Parcel) Totals {
	var totals Totals
	for _, p := range parcels {
		if !p.IsActive() {
			continue
		}
		totals.WeightKg += p.WeightKg()
		totals.VolumeM3 += p.VolumeM3()
	}
	return totals
}

// EnsureFits verifies the given totals against the shipment's limits and
// returns a CapacityExceededError naming the first violated dimension.
func (c CapacityCalculator) EnsureFits(s *shipment.Shipment, totals Totals) error {
	if limit := s.MaxWeightKg(); limit > 0 && totals.WeightKg > limit {
		return errs.NewCapacityExceededError("weight", totals.WeightKg, limit)
	}
	if limit := s.MaxVolumeM3(); limit > 0 && totals.VolumeM3 > limit {
		return errs.NewCapacityExceededError("volume", totals.VolumeM3, limit)
	}
	return nil
}

// Recalculate sums the active packages and, when the result fits, writes
// the totals onto the shipment. The shipment is left untouched on failure.
func (c CapacityCalculator) Recalculate(s *shipment.Shipment, parcels []*parcel.Parcel) error {
	totals := c.Totals(parcels)
	if err := c.EnsureFits(s, totals); err != nil {
		return err
	}
	return s.SetTotals(totals.WeightKg, totals.VolumeM3)
}
