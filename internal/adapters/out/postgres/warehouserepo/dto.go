// Package warehouserepo provides data transfer objects and mapping
// functions for warehouse persistence.
package warehouserepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents the database structure for persisting warehouses.
type WarehouseDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code    string    `gorm:"uniqueIndex"`
	Name    string
	City    string
	Country string
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// fromDomain converts a warehouse domain aggregate to its database representation.
func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:      aggregate.ID().Bytes(),
		Code:    aggregate.Code(),
		Name:    aggregate.Name(),
		City:    aggregate.City(),
		Country: aggregate.Country(),
	}
}

// toDomain converts a database DTO to a warehouse domain aggregate.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, dto.Code, dto.Name, dto.City, dto.Country)
}
