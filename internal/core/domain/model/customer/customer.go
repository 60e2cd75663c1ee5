package customer

import (
	"errors"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Consent records which WhatsApp notification categories a customer agreed
// to receive. A customer without a consent record is treated as fully
// opted out.
type Consent struct {
	StatusUpdates   bool
	DeparturePhotos bool
	ArrivalPhotos   bool
	OptedOutAt      *time.Time
}

// IsOptedOut reports whether the customer revoked all notifications.
func (c Consent) IsOptedOut() bool {
	return c.OptedOutAt != nil
}

// Customer is the recipient of packages and notifications. The display
// name labels gate failures and notification text; the phone number is the
// WhatsApp delivery address.
type Customer struct {
	id          kernel.UUID
	displayName string
	phone       string
	consent     *Consent

	isConstructed bool
}

// NewCustomer registers a customer. Consent is nil until the customer
// explicitly grants it.
func NewCustomer(id kernel.UUID, displayName, phone string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setDisplayName(displayName),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage.
func RestoreCustomer(id kernel.UUID, displayName, phone string, consent *Consent) (*Customer, error) {
	c, err := NewCustomer(id, displayName, phone)
	if err != nil {
		return nil, err
	}
	c.consent = consent
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// DisplayName returns the human-readable name.
func (c *Customer) DisplayName() string { return c.displayName }

// Phone returns the WhatsApp delivery address.
func (c *Customer) Phone() string { return c.phone }

// Consent returns the current consent record, nil if never granted.
func (c *Customer) Consent() *Consent { return c.consent }

// GrantConsent records the customer's notification preferences and clears
// any prior opt-out.
func (c *Customer) GrantConsent(statusUpdates, departurePhotos, arrivalPhotos bool) {
	c.consent = &Consent{
		StatusUpdates:   statusUpdates,
		DeparturePhotos: departurePhotos,
		ArrivalPhotos:   arrivalPhotos,
	}
}

// OptOut revokes all notification consent at the given time.
func (c *Customer) OptOut(at time.Time) {
	c.consent = &Consent{OptedOutAt: &at}
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("display name")
	}
	c.displayName = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
