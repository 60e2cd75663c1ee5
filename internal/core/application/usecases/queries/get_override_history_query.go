package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOverrideHistoryQueryIsNotConstructed = errors.New(
	"GetOverrideHistoryQuery must be created via NewGetOverrideHistoryQuery constructor",
)

// GetOverrideHistoryQuery retrieves the full pricing override audit trail
// of one package, oldest correction first. Replaying the rows over the
// package's computed price reproduces its current charge.
type GetOverrideHistoryQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOverrideHistoryQuery creates a query for a package's audit trail.
func NewGetOverrideHistoryQuery(parcelID kernel.UUID) (GetOverrideHistoryQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetOverrideHistoryQuery{}, err
	}

	return GetOverrideHistoryQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverrideHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOverrideHistoryQueryIsNotConstructed)
}

// ParcelID returns the package being audited.
func (q GetOverrideHistoryQuery) ParcelID() kernel.UUID { return q.parcelID }

// GetOverrideHistoryQueryResponse is one audit row in the read model.
type GetOverrideHistoryQueryResponse struct {
	ID            kernel.UUID
	Kind          string
	OriginalValue decimal.Decimal
	NewValue      decimal.Decimal
	Reason        string
	Actor         string
	CreatedAt     time.Time
}
