package mediarepo

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"

	"gorm.io/gorm"
)

// GormMediaRepository implements MediaRepository using GORM.
type GormMediaRepository struct {
	db *gorm.DB
}

// NewGormMediaRepository creates a new GORM media repository.
func NewGormMediaRepository(db *gorm.DB) *GormMediaRepository {
	return &GormMediaRepository{db: db}
}

// Add appends one photo evidence row.
func (r *GormMediaRepository) Add(ctx context.Context, record *media.Media) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByParcel retrieves every photo captured for one parcel.
func (r *GormMediaRepository) GetAllByParcel(ctx context.Context, parcelID kernel.UUID) ([]*media.Media, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MediaDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "parcel_id = ?", parcelID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByShipment retrieves every photo captured for any parcel on the
// shipment. The photo gate recounts these rows instead of trusting the
// parcels' denormalized flags.
func (r *GormMediaRepository) GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*media.Media, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MediaDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id IN (SELECT id FROM parcels WHERE shipment_id = ?)", shipmentID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []MediaDTO) ([]*media.Media, error) {
	records := make([]*media.Media, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
