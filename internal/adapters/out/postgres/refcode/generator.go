// Package refcode issues human-readable shipment reference codes backed
// by a per-warehouse database counter.
package refcode

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CounterDTO holds one warehouse's running shipment sequence number.
type CounterDTO struct {
	WarehouseID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Counter     int64
}

// TableName specifies the database table name for reference code counters.
func (CounterDTO) TableName() string {
	return "ref_code_counters"
}

// GormReferenceCodeGenerator issues codes of the form SHP-<warehouse
// code>-000042. The counter row is upserted atomically, so concurrent
// shipment creation never yields duplicate codes.
type GormReferenceCodeGenerator struct {
	db *gorm.DB
}

// NewGormReferenceCodeGenerator creates a generator bound to the given database.
func NewGormReferenceCodeGenerator(db *gorm.DB) *GormReferenceCodeGenerator {
	return &GormReferenceCodeGenerator{db: db}
}

// Next reserves and returns the next reference code for shipments
// originating at the given warehouse.
func (g *GormReferenceCodeGenerator) Next(ctx context.Context, originWarehouseID kernel.UUID) (string, error) {
	if err := originWarehouseID.Validate(); err != nil {
		return "", err
	}

	var code string
	err := g.db.WithContext(ctx).
		Raw("SELECT code FROM warehouses WHERE id = ?", originWarehouseID.Bytes()).
		Scan(&code).Error
	if err != nil {
		return "", err
	}
	if code == "" {
		return "", errs.NewObjectNotFoundError("warehouse", originWarehouseID.String())
	}

	var counter int64
	err = g.db.WithContext(ctx).Raw(`
		INSERT INTO ref_code_counters (warehouse_id, counter)
		VALUES (?, 1)
		ON CONFLICT (warehouse_id)
		DO UPDATE SET counter = ref_code_counters.counter + 1
		RETURNING counter
	`, originWarehouseID.Bytes()).Scan(&counter).Error
	if err != nil {
		return "", err
	}
	if counter == 0 {
		return "", errors.New("reference code counter returned no value")
	}

	return fmt.Sprintf("SHP-%s-%06d", code, counter), nil
}
