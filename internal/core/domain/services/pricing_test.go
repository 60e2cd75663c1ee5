package services_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingEngine_Reprice(t *testing.T) {
	engine := services.NewPricingEngine()
	rates := parcel.Rates{
		PerKg:    decimal.NewFromInt(8),
		PerM3:    decimal.NewFromInt(250),
		Currency: "USD",
	}

	t.Run("applies the larger of weight and volume pricing", func(t *testing.T) {
		p := newParcelOnShipment(t, kernel.NewUUID(), 10, 0.5)

		require.NoError(t, engine.Reprice(p, rates))

		// weight 10 * 8 = 80, volume 0.5 * 250 = 125
		assert.True(t, p.ChargeAmount().Equal(decimal.NewFromInt(125)),
			"got %s", p.ChargeAmount())
		assert.Equal(t, "USD", p.Currency())
	})

	t.Run("rejects an unconstructed package", func(t *testing.T) {
		require.Error(t, engine.Reprice(&parcel.Parcel{}, rates))
	})
}
