package warehouse

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

const codeMaxLen = 8

// ErrWarehouseIsNotConstructed is returned when a Warehouse was not created
// through NewWarehouse or RestoreWarehouse.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse is an origin or destination endpoint of shipment routes. The
// short code is embedded in generated shipment reference codes.
type Warehouse struct {
	id      kernel.UUID
	code    string
	name    string
	city    string
	country string

	isConstructed bool
}

// NewWarehouse registers a warehouse. The code is normalized to uppercase
// and limited to 8 characters.
func NewWarehouse(id kernel.UUID, code, name, city, country string) (*Warehouse, error) {
	w := &Warehouse{isConstructed: true}

	if err := errors.Join(
		w.setID(id),
		w.setCode(code),
		w.setName(name),
	); err != nil {
		return nil, err
	}

	w.city = city
	w.country = country
	return w, nil
}

// RestoreWarehouse reconstructs a Warehouse from persistent storage.
func RestoreWarehouse(id kernel.UUID, code, name, city, country string) (*Warehouse, error) {
	return NewWarehouse(id, code, name, city, country)
}

// Validate ensures the Warehouse was created through a constructor.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID { return w.id }

// Code returns the short uppercase code used in reference codes.
func (w *Warehouse) Code() string { return w.code }

// Name returns the human-readable name.
func (w *Warehouse) Name() string { return w.name }

// City returns the warehouse's city.
func (w *Warehouse) City() string { return w.city }

// Country returns the warehouse's country.
func (w *Warehouse) Country() string { return w.country }

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if len(code) > codeMaxLen {
		return errs.NewValueIsOutOfRangeError("code", code, 1, codeMaxLen)
	}
	w.code = code
	return nil
}

func (w *Warehouse) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}
