package parcel

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrItemNotFound is returned when an item id does not belong to the package.
	ErrItemNotFound = errors.New("package item not found")
)

// ProvisioningMethod records how the package's goods were sourced.
type ProvisioningMethod int

const (
	// ProvisioningUnknown represents an invalid or undefined method.
	ProvisioningUnknown ProvisioningMethod = iota

	// CustomerProvided means the customer delivered the goods themselves.
	CustomerProvided

	// Procured means the goods were purchased for the customer through a
	// supply order.
	Procured
)

func getProvisioningStrings() map[ProvisioningMethod]string {
	return map[ProvisioningMethod]string{
		ProvisioningUnknown: "Unknown",
		CustomerProvided:    "CustomerProvided",
		Procured:            "Procured",
	}
}

// String returns the human-readable name of the provisioning method.
func (m ProvisioningMethod) String() string {
	if str, ok := getProvisioningStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values.
func (m ProvisioningMethod) Validate() error {
	if _, ok := getProvisioningStrings()[m]; !ok || m == ProvisioningUnknown {
		return errs.NewValueIsInvalidErrorWithCause("provisioning method is invalid",
			fmt.Errorf("%d is not a valid provisioning method", m))
	}
	return nil
}

// ParseProvisioningMethod maps a wire-level method name to its value.
func ParseProvisioningMethod(raw string) (ProvisioningMethod, error) {
	for method, str := range getProvisioningStrings() {
		if method != ProvisioningUnknown && str == raw {
			return method, nil
		}
	}
	return ProvisioningUnknown, errs.NewValueIsInvalidErrorWithCause("provisioning method is invalid",
		fmt.Errorf("%q is not a valid provisioning method", raw))
}

// Rates is the pair of applied unit rates and their currency, as resolved
// by the external rate resolver at the Packed transition.
type Rates struct {
	PerKg    decimal.Decimal
	PerM3    decimal.Decimal
	Currency string
}

// ComputeCharge is the standard pricing formula: the larger of the weight
// charge and the volume charge.
func ComputeCharge(weightKg, volumeM3 float64, perKg, perM3 decimal.Decimal) decimal.Decimal {
	byWeight := perKg.Mul(decimal.NewFromFloat(weightKg))
	byVolume := perM3.Mul(decimal.NewFromFloat(volumeM3))
	if byVolume.GreaterThan(byWeight) {
		return byVolume
	}
	return byWeight
}

// Parcel is the aggregate root for one customer's package inside a
// shipment. It owns the handling-stage state machine, measurements,
// pricing, the denormalized photo-evidence flags, and the content items.
//
// Invariants:
//   - status moves follow the package transition table
//   - from Shipped on, only status progression is allowed: items,
//     measurements, note and pricing are frozen
//   - weight and volume are never negative
//   - the pricing-override flag, once set, is never cleared
type Parcel struct {
	id            kernel.UUID
	shipmentID    kernel.UUID
	customerID    kernel.UUID
	provisioning  ProvisioningMethod
	supplyOrderID *kernel.UUID
	status        Status
	weightKg      float64
	volumeM3      float64
	note          string

	currency           string
	ratePerKg          decimal.Decimal
	ratePerM3          decimal.Decimal
	chargeAmount       decimal.Decimal
	hasPricingOverride bool

	hasDeparturePhotos bool
	hasArrivalPhotos   bool

	items []*Item

	isConstructed bool
}

// NewParcel registers a package in Draft on the given shipment for the
// given customer. supplyOrderID is optional and only meaningful for
// procured packages.
func NewParcel(
	id kernel.UUID,
	shipmentID kernel.UUID,
	customerID kernel.UUID,
	provisioning ProvisioningMethod,
	supplyOrderID *kernel.UUID,
	weightKg float64,
	volumeM3 float64,
	currency string,
	note string,
) (*Parcel, error) {
	p := &Parcel{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setShipmentID(shipmentID),
		p.setCustomerID(customerID),
		p.setProvisioning(provisioning),
		p.setSupplyOrderID(supplyOrderID),
		p.setMeasurements(weightKg, volumeM3),
	); err != nil {
		return nil, err
	}

	p.currency = currency
	p.note = note
	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistent storage, including
// pricing state, photo flags and content items.
func RestoreParcel(
	id kernel.UUID,
	shipmentID kernel.UUID,
	customerID kernel.UUID,
	provisioning ProvisioningMethod,
	supplyOrderID *kernel.UUID,
	status Status,
	weightKg float64,
	volumeM3 float64,
	currency string,
	ratePerKg decimal.Decimal,
	ratePerM3 decimal.Decimal,
	chargeAmount decimal.Decimal,
	hasPricingOverride bool,
	hasDeparturePhotos bool,
	hasArrivalPhotos bool,
	note string,
	items []*Item,
) (*Parcel, error) {
	p := &Parcel{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setShipmentID(shipmentID),
		p.setCustomerID(customerID),
		p.setProvisioning(provisioning),
		p.setSupplyOrderID(supplyOrderID),
		p.setStatus(status),
		p.setMeasurements(weightKg, volumeM3),
		p.setItems(items),
	); err != nil {
		return nil, err
	}

	p.currency = currency
	p.ratePerKg = ratePerKg
	p.ratePerM3 = ratePerM3
	p.chargeAmount = chargeAmount
	p.hasPricingOverride = hasPricingOverride
	p.hasDeparturePhotos = hasDeparturePhotos
	p.hasArrivalPhotos = hasArrivalPhotos
	p.note = note
	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identifier.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Parcel) ID() kernel.UUID { return p.id }

// ShipmentID returns the owning shipment.
func (p *Parcel) ShipmentID() kernel.UUID { return p.shipmentID }

// CustomerID returns the owning customer.
func (p *Parcel) CustomerID() kernel.UUID { return p.customerID }

// Provisioning returns how the goods were sourced.
func (p *Parcel) Provisioning() ProvisioningMethod { return p.provisioning }

// SupplyOrderID returns the linked supply order, nil if none.
func (p *Parcel) SupplyOrderID() *kernel.UUID { return p.supplyOrderID }

// Status returns the current handling stage.
func (p *Parcel) Status() Status { return p.status }

// WeightKg returns the measured weight in kilograms.
func (p *Parcel) WeightKg() float64 { return p.weightKg }

// VolumeM3 returns the measured volume in cubic meters.
func (p *Parcel) VolumeM3() float64 { return p.volumeM3 }

// Currency returns the pricing currency code.
func (p *Parcel) Currency() string { return p.currency }

// RatePerKg returns the applied per-kilogram rate.
func (p *Parcel) RatePerKg() decimal.Decimal { return p.ratePerKg }

// RatePerM3 returns the applied per-cubic-meter rate.
func (p *Parcel) RatePerM3() decimal.Decimal { return p.ratePerM3 }

// ChargeAmount returns the computed or overridden charge.
func (p *Parcel) ChargeAmount() decimal.Decimal { return p.chargeAmount }

// HasPricingOverride reports whether a manual override was ever applied.
func (p *Parcel) HasPricingOverride() bool { return p.hasPricingOverride }

// HasDeparturePhotos returns the denormalized departure-evidence flag.
// The flag is recomputed from media rows on every upload; the shipment-level
// gate does not trust it and recounts the rows.
func (p *Parcel) HasDeparturePhotos() bool { return p.hasDeparturePhotos }

// HasArrivalPhotos returns the denormalized arrival-evidence flag.
func (p *Parcel) HasArrivalPhotos() bool { return p.hasArrivalPhotos }

// Note returns the free-text note.
func (p *Parcel) Note() string { return p.note }

// Items returns a copy of the package's content lines.
func (p *Parcel) Items() []*Item {
	out := make([]*Item, len(p.items))
	copy(out, p.items)
	return out
}

// IsActive reports whether the package counts against shipment capacity.
func (p *Parcel) IsActive() bool {
	return p.status != Cancelled
}

// ChangeStatus performs a status move validated by the package transition
// table. Photo gates and the pricing recompute around this move are
// orchestrated by the caller; progression itself is allowed even past the
// immutability threshold.
func (p *Parcel) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := transitions.Check(p.status, target); err != nil {
		return err
	}
	p.status = target
	return nil
}

// SetMeasurements updates weight, volume and note. Rejected once the
// package is Shipped or later. The shipment-capacity check against the new
// values is the caller's responsibility and happens before persisting.
func (p *Parcel) SetMeasurements(weightKg, volumeM3 float64, note string) error {
	if err := p.ensureUnlocked(); err != nil {
		return err
	}
	if err := p.setMeasurements(weightKg, volumeM3); err != nil {
		return err
	}
	p.note = note
	return nil
}

// ApplyRates applies resolver-provided unit rates and recomputes the charge.
// Called at the Packed transition and after measurement edits; it never
// touches the override flag.
func (p *Parcel) ApplyRates(rates Rates) error {
	if err := p.ensureUnlocked(); err != nil {
		return err
	}
	if rates.Currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if rates.PerKg.IsNegative() || rates.PerM3.IsNegative() {
		return errs.NewValueIsInvalidError("rates must not be negative")
	}

	p.ratePerKg = rates.PerKg
	p.ratePerM3 = rates.PerM3
	p.currency = rates.Currency
	p.chargeAmount = ComputeCharge(p.weightKg, p.volumeM3, p.ratePerKg, p.ratePerM3)
	return nil
}

// RecomputeCharge refreshes the charge from the currently applied rates,
// used after measurement edits. The override flag is left untouched.
func (p *Parcel) RecomputeCharge() {
	p.chargeAmount = ComputeCharge(p.weightKg, p.volumeM3, p.ratePerKg, p.ratePerM3)
}

// ApplyOverride applies one manual pricing correction and returns its
// immutable audit row. A non-blank reason is mandatory; overrides are
// rejected once the package is Shipped or later. Changing a unit rate
// recomputes the charge with the other rate's current value; changing the
// total charge sets it directly. The override flag is set permanently.
func (p *Parcel) ApplyOverride(
	overrideID kernel.UUID,
	kind OverrideKind,
	newValue decimal.Decimal,
	reason string,
	actor string,
	at time.Time,
) (*Override, error) {
	if err := p.ensureUnlocked(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	if newValue.IsNegative() {
		return nil, errs.NewValueIsInvalidError("override value must not be negative")
	}

	var originalValue decimal.Decimal
	switch kind {
	case OverrideRatePerWeight:
		originalValue = p.ratePerKg
		p.ratePerKg = newValue
		p.chargeAmount = ComputeCharge(p.weightKg, p.volumeM3, p.ratePerKg, p.ratePerM3)
	case OverrideRatePerVolume:
		originalValue = p.ratePerM3
		p.ratePerM3 = newValue
		p.chargeAmount = ComputeCharge(p.weightKg, p.volumeM3, p.ratePerKg, p.ratePerM3)
	case OverrideTotalCharge:
		originalValue = p.chargeAmount
		p.chargeAmount = newValue
	default:
		return nil, errs.NewValueIsInvalidError("override kind")
	}

	p.hasPricingOverride = true
	return NewOverride(overrideID, p.id, kind, originalValue, newValue, reason, actor, at)
}

// RefreshPhotoFlags recomputes the denormalized evidence booleans from the
// package's media rows. Only the upload path writes these flags.
func (p *Parcel) RefreshPhotoFlags(rows []*media.Media) {
	hasDeparture, hasArrival := false, false
	for _, row := range rows {
		if !row.ParcelID().IsEqual(p.id) {
			continue
		}
		switch row.Stage() {
		case media.StageDeparture:
			hasDeparture = true
		case media.StageArrival:
			hasArrival = true
		}
	}
	p.hasDeparturePhotos = hasDeparture
	p.hasArrivalPhotos = hasArrival
}

// AddItem appends a content line. Rejected once the package is Shipped or later.
func (p *Parcel) AddItem(item *Item) error {
	if err := p.ensureUnlocked(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	for _, existing := range p.items {
		if existing.ID().IsEqual(item.ID()) {
			return errs.NewValueIsInvalidError("item already exists")
		}
	}
	p.items = append(p.items, item)
	return nil
}

// UpdateItem replaces quantity and note of an existing content line.
// Rejected once the package is Shipped or later.
func (p *Parcel) UpdateItem(itemID kernel.UUID, quantity int, note string) (*Item, error) {
	if err := p.ensureUnlocked(); err != nil {
		return nil, err
	}

	for i, existing := range p.items {
		if existing.ID().IsEqual(itemID) {
			updated, err := NewItem(existing.ID(), existing.GoodTypeID(), quantity, note)
			if err != nil {
				return nil, err
			}
			p.items[i] = updated
			return updated, nil
		}
	}
	return nil, ErrItemNotFound
}

// RemoveItem deletes a content line. Rejected once the package is Shipped or later.
func (p *Parcel) RemoveItem(itemID kernel.UUID) error {
	if err := p.ensureUnlocked(); err != nil {
		return err
	}

	for i, existing := range p.items {
		if existing.ID().IsEqual(itemID) {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (p *Parcel) ensureUnlocked() error {
	if p.status.IsLocked() {
		return errs.NewLockedErrorWithCause("package", p.id.String(),
			fmt.Errorf("status %s is past the immutability threshold", p.status))
	}
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipment", err)
	}
	p.shipmentID = id
	return nil
}

func (p *Parcel) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	p.customerID = id
	return nil
}

func (p *Parcel) setProvisioning(method ProvisioningMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.provisioning = method
	return nil
}

func (p *Parcel) setSupplyOrderID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("supply order", err)
	}
	p.supplyOrderID = id
	return nil
}

func (p *Parcel) setMeasurements(weightKg, volumeM3 float64) error {
	if weightKg < 0 {
		return errs.NewValueIsOutOfRangeError("weight", weightKg, 0, "unbounded")
	}
	if volumeM3 < 0 {
		return errs.NewValueIsOutOfRangeError("volume", volumeM3, 0, "unbounded")
	}
	p.weightKg = weightKg
	p.volumeM3 = volumeM3
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Parcel) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	p.items = make([]*Item, len(items))
	copy(p.items, items)
	return nil
}
