// Package parcelrepo provides data transfer objects and mapping functions
// for package persistence: the parcel row itself, its content items and
// its append-only pricing override audit rows.
package parcelrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. Content items live in their own table and are loaded with
// the parent row.
type ParcelDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID         uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID         uuid.UUID  `gorm:"type:uuid;index"`
	Provisioning       int
	SupplyOrderID      *uuid.UUID `gorm:"type:uuid"`
	Status             int        `gorm:"index"`
	WeightKg           float64
	VolumeM3           float64
	Currency           string
	RatePerKg          decimal.Decimal `gorm:"type:numeric"`
	RatePerM3          decimal.Decimal `gorm:"type:numeric"`
	ChargeAmount       decimal.Decimal `gorm:"type:numeric"`
	HasPricingOverride bool
	HasDeparturePhotos bool
	HasArrivalPhotos   bool
	Note               string
	Items              []ItemDTO `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// ItemDTO represents one content line of a parcel.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;index"`
	GoodTypeID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
	Note       string
}

// TableName specifies the database table name for parcel content items.
func (ItemDTO) TableName() string {
	return "parcel_items"
}

// OverrideDTO represents one immutable pricing override audit row.
type OverrideDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID `gorm:"type:uuid;index"`
	Kind          int
	OriginalValue decimal.Decimal `gorm:"type:numeric"`
	NewValue      decimal.Decimal `gorm:"type:numeric"`
	Reason        string
	Actor         string
	CreatedAt     time.Time
}

// TableName specifies the database table name for pricing override rows.
func (OverrideDTO) TableName() string {
	return "pricing_overrides"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var supplyOrderID *uuid.UUID
	if id := aggregate.SupplyOrderID(); id != nil {
		raw := id.Bytes()
		supplyOrderID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:         item.ID().Bytes(),
			ParcelID:   aggregate.ID().Bytes(),
			GoodTypeID: item.GoodTypeID().Bytes(),
			Quantity:   item.Quantity(),
			Note:       item.Note(),
		})
	}

	return ParcelDTO{
		ID:                 aggregate.ID().Bytes(),
		ShipmentID:         aggregate.ShipmentID().Bytes(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		Provisioning:       int(aggregate.Provisioning()),
		SupplyOrderID:      supplyOrderID,
		Status:             int(aggregate.Status()),
		WeightKg:           aggregate.WeightKg(),
		VolumeM3:           aggregate.VolumeM3(),
		Currency:           aggregate.Currency(),
		RatePerKg:          aggregate.RatePerKg(),
		RatePerM3:          aggregate.RatePerM3(),
		ChargeAmount:       aggregate.ChargeAmount(),
		HasPricingOverride: aggregate.HasPricingOverride(),
		HasDeparturePhotos: aggregate.HasDeparturePhotos(),
		HasArrivalPhotos:   aggregate.HasArrivalPhotos(),
		Note:               aggregate.Note(),
		Items:              itemDTOs,
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var supplyOrderID *kernel.UUID
	if dto.SupplyOrderID != nil {
		soID, soErr := kernel.UUIDFromBytes((*dto.SupplyOrderID)[:])
		if soErr != nil {
			return nil, soErr
		}
		supplyOrderID = &soID
	}

	items := make([]*parcel.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		goodTypeID, itemErr := kernel.UUIDFromBytes(itemDTO.GoodTypeID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := parcel.RestoreItem(itemID, goodTypeID, itemDTO.Quantity, itemDTO.Note)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return parcel.RestoreParcel(
		id,
		shipmentID,
		customerID,
		parcel.ProvisioningMethod(dto.Provisioning),
		supplyOrderID,
		parcel.Status(dto.Status),
		dto.WeightKg,
		dto.VolumeM3,
		dto.Currency,
		dto.RatePerKg,
		dto.RatePerM3,
		dto.ChargeAmount,
		dto.HasPricingOverride,
		dto.HasDeparturePhotos,
		dto.HasArrivalPhotos,
		dto.Note,
		items,
	)
}

// overrideFromDomain converts an audit row to its database representation.
func overrideFromDomain(row *parcel.Override) OverrideDTO {
	return OverrideDTO{
		ID:            row.ID().Bytes(),
		ParcelID:      row.ParcelID().Bytes(),
		Kind:          int(row.Kind()),
		OriginalValue: row.OriginalValue(),
		NewValue:      row.NewValue(),
		Reason:        row.Reason(),
		Actor:         row.Actor(),
		CreatedAt:     row.CreatedAt(),
	}
}

// overrideToDomain converts a database DTO to an audit row.
func overrideToDomain(dto OverrideDTO) (*parcel.Override, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return parcel.RestoreOverride(
		id,
		parcelID,
		parcel.OverrideKind(dto.Kind),
		dto.OriginalValue,
		dto.NewValue,
		dto.Reason,
		dto.Actor,
		dto.CreatedAt,
	)
}
