package services

import (
	"freight/internal/core/domain/model/parcel"
)

// PricingEngine applies resolved unit rates to packages. The charge is the
// larger of the weight charge and the volume charge; manual overrides are
// handled by the aggregate itself and leave their own audit rows.
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Reprice applies the rates to the package and recomputes its charge.
// Called at the Packed transition and after measurement edits.
func (e PricingEngine) Reprice(p *parcel.Parcel, rates parcel.Rates) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.ApplyRates(rates)
}
