package notificationrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/notification"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// AddCampaign saves a new campaign run.
func (r *GormNotificationRepository) AddCampaign(ctx context.Context, aggregate *notification.Campaign) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := campaignFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateCampaign saves an existing campaign run, typically to stamp
// completion.
func (r *GormNotificationRepository) UpdateCampaign(ctx context.Context, aggregate *notification.Campaign) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := campaignFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CampaignDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetCampaign retrieves a campaign run by ID.
func (r *GormNotificationRepository) GetCampaign(ctx context.Context, id kernel.UUID) (*notification.Campaign, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CampaignDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("campaign", id.String())
		}
		return nil, err
	}

	return campaignToDomain(dto)
}

// AddDeliveryLog appends one per-recipient outcome row. Rows are never
// updated or deleted.
func (r *GormNotificationRepository) AddDeliveryLog(ctx context.Context, row *notification.DeliveryLog) error {
	if err := row.Validate(); err != nil {
		return err
	}

	dto := logFromDomain(row)
	return r.db.WithContext(ctx).Create(&dto).Error
}
