// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence, consent record included.
package customerrepo

import (
	"time"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
// ConsentGranted marks whether a consent record exists at all; a customer
// who never touched the consent form has all consent columns at their
// zero values and ConsentGranted false.
type CustomerDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName            string
	Phone                  string `gorm:"uniqueIndex"`
	ConsentGranted         bool
	ConsentStatusUpdates   bool
	ConsentDeparturePhotos bool
	ConsentArrivalPhotos   bool
	OptedOutAt             *time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:          aggregate.ID().Bytes(),
		DisplayName: aggregate.DisplayName(),
		Phone:       aggregate.Phone(),
	}

	if consent := aggregate.Consent(); consent != nil {
		dto.ConsentGranted = true
		dto.ConsentStatusUpdates = consent.StatusUpdates
		dto.ConsentDeparturePhotos = consent.DeparturePhotos
		dto.ConsentArrivalPhotos = consent.ArrivalPhotos
		dto.OptedOutAt = consent.OptedOutAt
	}

	return dto
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var consent *customer.Consent
	if dto.ConsentGranted {
		consent = &customer.Consent{
			StatusUpdates:   dto.ConsentStatusUpdates,
			DeparturePhotos: dto.ConsentDeparturePhotos,
			ArrivalPhotos:   dto.ConsentArrivalPhotos,
			OptedOutAt:      dto.OptedOutAt,
		}
	}

	return customer.RestoreCustomer(id, dto.DisplayName, dto.Phone, consent)
}
