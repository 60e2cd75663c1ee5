// Package mediarepo provides data transfer objects and mapping functions
// for photo evidence persistence.
package mediarepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"

	"github.com/google/uuid"
)

// MediaDTO represents one stored photo. Keys point into object storage;
// rows are append-only.
type MediaDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID     uuid.UUID `gorm:"type:uuid;index"`
	Stage        int       `gorm:"index"`
	OriginalKey  string
	ProcessedKey string
	ContentType  string
	SizeBytes    int64
	UploadedBy   string
	CreatedAt    time.Time
}

// TableName specifies the database table name for photo evidence rows.
func (MediaDTO) TableName() string {
	return "parcel_media"
}

// fromDomain converts a media record to its database representation.
func fromDomain(record *media.Media) MediaDTO {
	return MediaDTO{
		ID:           record.ID().Bytes(),
		ParcelID:     record.ParcelID().Bytes(),
		Stage:        int(record.Stage()),
		OriginalKey:  record.OriginalKey(),
		ProcessedKey: record.ProcessedKey(),
		ContentType:  record.ContentType(),
		SizeBytes:    record.SizeBytes(),
		UploadedBy:   record.UploadedBy(),
		CreatedAt:    record.CreatedAt(),
	}
}

// toDomain converts a database DTO to a media record.
func toDomain(dto MediaDTO) (*media.Media, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return media.RestoreMedia(
		id,
		parcelID,
		media.Stage(dto.Stage),
		dto.OriginalKey,
		dto.ProcessedKey,
		dto.ContentType,
		dto.SizeBytes,
		dto.UploadedBy,
		dto.CreatedAt,
	)
}
