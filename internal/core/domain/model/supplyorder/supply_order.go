package supplyorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/lifecycle"
	"freight/internal/pkg/errs"
)

// ErrSupplyOrderIsNotConstructed is returned when a SupplyOrder was not
// created through NewSupplyOrder or RestoreSupplyOrder.
var ErrSupplyOrderIsNotConstructed = errors.New("SupplyOrder must be created via NewSupplyOrder constructor")

// Status represents the procurement stage of a supply order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial stage of a newly placed order.
	Draft

	// Ordered means the purchase was confirmed with the supplier.
	Ordered

	// InTransit means the goods are on their way to the origin warehouse.
	InTransit

	// Received is the successful terminal stage.
	Received

	// Cancelled is the abandoned terminal stage.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Ordered:   "Ordered",
		InTransit: "InTransit",
		Received:  "Received",
		Cancelled: "Cancelled",
	}
}

var transitions = lifecycle.NewTable("supply order", map[Status][]Status{
	Draft:     {Ordered, Cancelled},
	Ordered:   {InTransit, Cancelled},
	InTransit: {Received, Cancelled},
})

// Transitions exposes the supply order rule table.
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
			fmt.Errorf("%d is not a valid supply order status", s))
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
		fmt.Errorf("%q is not a valid supply order status", raw))
}

// SupplyOrder tracks the procurement of goods purchased on a customer's
// behalf. Procured packages reference their supply order and should not be
// marked Received before the order is.
type SupplyOrder struct {
	id         kernel.UUID
	customerID kernel.UUID
	supplier   string
	status     Status
	expectedAt *time.Time
	note       string

	isConstructed bool
}

// NewSupplyOrder places an order in Draft with the given supplier.
func NewSupplyOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	supplier string,
	expectedAt *time.Time,
	note string,
) (*SupplyOrder, error) {
	o := &SupplyOrder{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setSupplier(supplier),
	); err != nil {
		return nil, err
	}

	o.expectedAt = expectedAt
	o.note = note
	return o, nil
}

// RestoreSupplyOrder reconstructs a SupplyOrder from persistent storage.
func RestoreSupplyOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	supplier string,
	status Status,
	expectedAt *time.Time,
	note string,
) (*SupplyOrder, error) {
	o, err := NewSupplyOrder(id, customerID, supplier, expectedAt, note)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

// Validate ensures the SupplyOrder was created through a constructor.
func (o *SupplyOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrSupplyOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *SupplyOrder) ID() kernel.UUID { return o.id }

// CustomerID returns the customer the goods were purchased for.
func (o *SupplyOrder) CustomerID() kernel.UUID { return o.customerID }

// Supplier returns the supplier's name.
func (o *SupplyOrder) Supplier() string { return o.supplier }

// Status returns the current procurement stage.
func (o *SupplyOrder) Status() Status { return o.status }

// ExpectedAt returns the expected warehouse arrival, nil if unknown.
func (o *SupplyOrder) ExpectedAt() *time.Time { return o.expectedAt }

// Note returns the free-text note.
func (o *SupplyOrder) Note() string { return o.note }

// IsReceived reports whether the goods reached the origin warehouse.
func (o *SupplyOrder) IsReceived() bool { return o.status == Received }

// ChangeStatus performs a status move validated by the supply order
// transition table.
func (o *SupplyOrder) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := transitions.Check(o.status, target); err != nil {
		return err
	}
	o.status = target
	return nil
}

func (o *SupplyOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *SupplyOrder) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = id
	return nil
}

func (o *SupplyOrder) setSupplier(supplier string) error {
	supplier = strings.TrimSpace(supplier)
	if supplier == "" {
		return errs.NewValueIsRequiredError("supplier")
	}
	o.supplier = supplier
	return nil
}
