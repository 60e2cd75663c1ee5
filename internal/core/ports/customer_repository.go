package ports

import (
	"context"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers and
// their notification consent records.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer, including consent.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAllByIDs retrieves the given customers in one round trip.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*customer.Customer, error)
}
