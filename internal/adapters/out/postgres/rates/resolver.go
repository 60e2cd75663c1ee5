// Package rates resolves the pricing configuration for a route from the
// database. Operations maintain one row per route.
package rates

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PricingConfigDTO holds the chargeable rates for one route.
type PricingConfigDTO struct {
	OriginWarehouseID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DestinationWarehouseID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RatePerKg              decimal.Decimal `gorm:"type:numeric"`
	RatePerM3              decimal.Decimal `gorm:"type:numeric"`
	Currency               string
}

// TableName specifies the database table name for pricing configurations.
func (PricingConfigDTO) TableName() string {
	return "pricing_configs"
}

// GormRateResolver implements RateResolver against the pricing_configs table.
type GormRateResolver struct {
	db *gorm.DB
}

// NewGormRateResolver creates a resolver bound to the given database.
func NewGormRateResolver(db *gorm.DB) *GormRateResolver {
	return &GormRateResolver{db: db}
}

// Resolve returns the rates configured for the route. A route without a
// pricing configuration surfaces as errs.ErrObjectNotFound, which blocks
// the package from entering the Packed stage until operations add one.
func (r *GormRateResolver) Resolve(ctx context.Context, route kernel.Route) (parcel.Rates, error) {
	var dto PricingConfigDTO
	err := r.db.WithContext(ctx).
		First(&dto,
			"origin_warehouse_id = ? AND destination_warehouse_id = ?",
			route.Origin().Bytes(), route.Destination().Bytes(),
		).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return parcel.Rates{}, errs.NewObjectNotFoundError("pricing config",
				route.Origin().String()+" -> "+route.Destination().String())
		}
		return parcel.Rates{}, err
	}

	return parcel.Rates{
		PerKg:    dto.RatePerKg,
		PerM3:    dto.RatePerM3,
		Currency: dto.Currency,
	}, nil
}
