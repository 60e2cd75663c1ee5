// Package supplyorderrepo provides data transfer objects and mapping
// functions for supply order persistence.
package supplyorderrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/supplyorder"

	"github.com/google/uuid"
)

// SupplyOrderDTO represents the database structure for persisting supply
// orders placed with sourcing suppliers on behalf of customers.
type SupplyOrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Supplier   string
	Status     int `gorm:"index"`
	ExpectedAt *time.Time
	Note       string
}

// TableName specifies the database table name for supply order entities.
func (SupplyOrderDTO) TableName() string {
	return "supply_orders"
}

// fromDomain converts a supply order domain aggregate to its database representation.
func fromDomain(aggregate *supplyorder.SupplyOrder) SupplyOrderDTO {
	return SupplyOrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Supplier:   aggregate.Supplier(),
		Status:     int(aggregate.Status()),
		ExpectedAt: aggregate.ExpectedAt(),
		Note:       aggregate.Note(),
	}
}

// toDomain converts a database DTO to a supply order domain aggregate.
func toDomain(dto SupplyOrderDTO) (*supplyorder.SupplyOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return supplyorder.RestoreSupplyOrder(
		id,
		customerID,
		dto.Supplier,
		supplyorder.Status(dto.Status),
		dto.ExpectedAt,
		dto.Note,
	)
}
