package supplyorderrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/supplyorder"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSupplyOrderRepository implements SupplyOrderRepository using GORM.
type GormSupplyOrderRepository struct {
	db *gorm.DB
}

// NewGormSupplyOrderRepository creates a new GORM supply order repository.
func NewGormSupplyOrderRepository(db *gorm.DB) *GormSupplyOrderRepository {
	return &GormSupplyOrderRepository{db: db}
}

// Add saves a new supply order to the database.
func (r *GormSupplyOrderRepository) Add(ctx context.Context, aggregate *supplyorder.SupplyOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing supply order to the database.
func (r *GormSupplyOrderRepository) Update(ctx context.Context, aggregate *supplyorder.SupplyOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SupplyOrderDTO{}).
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

// Get retrieves a supply order by ID.
func (r *GormSupplyOrderRepository) Get(ctx context.Context, id kernel.UUID) (*supplyorder.SupplyOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SupplyOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("supply order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
