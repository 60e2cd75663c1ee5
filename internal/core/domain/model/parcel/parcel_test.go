package parcel_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/lifecycle"
	"freight/internal/core/domain/model/media"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		parcel.CustomerProvided, nil,
		10, 0.5, "USD", "",
	)
	require.NoError(t, err)
	return p
}

func advanceTo(t *testing.T, p *parcel.Parcel, target parcel.Status) {
	t.Helper()
	chain := []parcel.Status{
		parcel.Received, parcel.Packed, parcel.ReadyToShip, parcel.Shipped,
		parcel.ArrivedAtDestination, parcel.ReadyForHandout, parcel.HandedOut,
	}
	for _, status := range chain {
		require.NoError(t, p.ChangeStatus(status))
		if status == target {
			return
		}
	}
	t.Fatalf("status %s is not on the progression chain", target)
}

func standardRates() parcel.Rates {
	return parcel.Rates{
		PerKg:    decimal.NewFromInt(8),
		PerM3:    decimal.NewFromInt(250),
		Currency: "USD",
	}
}

func TestNewParcel(t *testing.T) {
	t.Run("starts in Draft without override", func(t *testing.T) {
		p := newDraftParcel(t)

		assert.Equal(t, parcel.Draft, p.Status())
		assert.False(t, p.HasPricingOverride())
		assert.False(t, p.HasDeparturePhotos())
		assert.True(t, p.IsActive())
	})

	t.Run("rejects negative measurements", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			parcel.CustomerProvided, nil,
			-1, 0, "USD", "",
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects unknown provisioning method", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			parcel.ProvisioningUnknown, nil,
			1, 1, "USD", "",
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParcel_ChangeStatus(t *testing.T) {
	t.Run("follows the rule table", func(t *testing.T) {
		p := newDraftParcel(t)

		err := p.ChangeStatus(parcel.Shipped)

		require.Error(t, err)
		assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
		assert.Equal(t, parcel.Draft, p.Status())
	})

	t.Run("progression stays open past the lock threshold", func(t *testing.T) {
		p := newDraftParcel(t)
		advanceTo(t, p, parcel.Shipped)

		require.NoError(t, p.ChangeStatus(parcel.ArrivedAtDestination))
		require.NoError(t, p.ChangeStatus(parcel.ReadyForHandout))
		require.NoError(t, p.ChangeStatus(parcel.HandedOut))
	})

	t.Run("cancelled package no longer counts against capacity", func(t *testing.T) {
		p := newDraftParcel(t)
		require.NoError(t, p.ChangeStatus(parcel.Cancelled))
		assert.False(t, p.IsActive())
	})
}

func TestParcel_SetMeasurements(t *testing.T) {
	t.Run("updates values below the lock threshold", func(t *testing.T) {
		p := newDraftParcel(t)

		require.NoError(t, p.SetMeasurements(25, 1.2, "fragile"))
		assert.InDelta(t, 25.0, p.WeightKg(), 0.0001)
		assert.InDelta(t, 1.2, p.VolumeM3(), 0.0001)
		assert.Equal(t, "fragile", p.Note())
	})

	t.Run("rejected once Shipped", func(t *testing.T) {
		p := newDraftParcel(t)
		advanceTo(t, p, parcel.Shipped)

		err := p.SetMeasurements(25, 1.2, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrLocked)
		assert.InDelta(t, 10.0, p.WeightKg(), 0.0001)
	})
}

func TestParcel_ApplyRates(t *testing.T) {
	t.Run("charge is the larger of weight and volume pricing", func(t *testing.T) {
		p := newDraftParcel(t)
		require.NoError(t, p.SetMeasurements(10, 0.5, ""))

		// by weight: 10 * 8 = 80, by volume: 0.5 * 250 = 125
		require.NoError(t, p.ApplyRates(standardRates()))
		assert.True(t, p.ChargeAmount().Equal(decimal.NewFromInt(125)),
			"got %s", p.ChargeAmount())

		// by weight: 20 * 8 = 160, by volume: 0.5 * 250 = 125
		require.NoError(t, p.SetMeasurements(20, 0.5, ""))
		p.RecomputeCharge()
		assert.True(t, p.ChargeAmount().Equal(decimal.NewFromInt(160)),
			"got %s", p.ChargeAmount())
	})

	t.Run("requires a currency", func(t *testing.T) {
		p := newDraftParcel(t)
		err := p.ApplyRates(parcel.Rates{PerKg: decimal.NewFromInt(8), PerM3: decimal.NewFromInt(250)})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejected once Shipped", func(t *testing.T) {
		p := newDraftParcel(t)
		advanceTo(t, p, parcel.Shipped)

		err := p.ApplyRates(standardRates())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrLocked)
	})
}

func TestParcel_ApplyOverride(t *testing.T) {
	t.Run("rate override recomputes the charge and records both values", func(t *testing.T) {
		p := newDraftParcel(t)
		require.NoError(t, p.ApplyRates(standardRates()))

		row, err := p.ApplyOverride(
			kernel.NewUUID(), parcel.OverrideRatePerWeight,
			decimal.NewFromInt(20), "negotiated bulk rate", "operator-1", time.Now(),
		)

		require.NoError(t, err)
		// by weight: 10 * 20 = 200, by volume: 0.5 * 250 = 125
		assert.True(t, p.ChargeAmount().Equal(decimal.NewFromInt(200)))
		assert.True(t, p.HasPricingOverride())
		assert.True(t, row.OriginalValue().Equal(decimal.NewFromInt(8)))
		assert.True(t, row.NewValue().Equal(decimal.NewFromInt(20)))
		assert.Equal(t, parcel.OverrideRatePerWeight, row.Kind())
	})

	t.Run("total override sets the charge directly", func(t *testing.T) {
		p := newDraftParcel(t)
		require.NoError(t, p.ApplyRates(standardRates()))

		row, err := p.ApplyOverride(
			kernel.NewUUID(), parcel.OverrideTotalCharge,
			decimal.NewFromInt(99), "goodwill discount", "operator-1", time.Now(),
		)

		require.NoError(t, err)
		assert.True(t, p.ChargeAmount().Equal(decimal.NewFromInt(99)))
		assert.True(t, row.OriginalValue().Equal(decimal.NewFromInt(125)))
	})

	t.Run("requires a reason", func(t *testing.T) {
		p := newDraftParcel(t)

		_, err := p.ApplyOverride(
			kernel.NewUUID(), parcel.OverrideTotalCharge,
			decimal.NewFromInt(99), "", "operator-1", time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.False(t, p.HasPricingOverride())
	})

	t.Run("rejected once Shipped", func(t *testing.T) {
		p := newDraftParcel(t)
		advanceTo(t, p, parcel.Shipped)

		_, err := p.ApplyOverride(
			kernel.NewUUID(), parcel.OverrideTotalCharge,
			decimal.NewFromInt(99), "late discount", "operator-1", time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrLocked)
	})

	t.Run("replaying the audit rows reproduces the final pricing", func(t *testing.T) {
		p := newDraftParcel(t)
		require.NoError(t, p.ApplyRates(standardRates()))

		var rows []*parcel.Override
		apply := func(kind parcel.OverrideKind, value int64) {
			row, err := p.ApplyOverride(kernel.NewUUID(), kind,
				decimal.NewFromInt(value), "correction", "operator-1", time.Now())
			require.NoError(t, err)
			rows = append(rows, row)
		}
		apply(parcel.OverrideRatePerWeight, 30)
		apply(parcel.OverrideRatePerVolume, 100)
		apply(parcel.OverrideTotalCharge, 275)
		apply(parcel.OverrideRatePerWeight, 12)

		replayed, err := parcel.RestoreParcel(
			p.ID(), p.ShipmentID(), p.CustomerID(), p.Provisioning(), nil,
			parcel.Draft, p.WeightKg(), p.VolumeM3(), "USD",
			decimal.NewFromInt(8), decimal.NewFromInt(250), decimal.NewFromInt(125),
			false, false, false, "", nil,
		)
		require.NoError(t, err)
		for _, row := range rows {
			got, err := replayed.ApplyOverride(kernel.NewUUID(), row.Kind(),
				row.NewValue(), row.Reason(), row.Actor(), row.CreatedAt())
			require.NoError(t, err)
			assert.True(t, got.OriginalValue().Equal(row.OriginalValue()))
		}

		assert.True(t, replayed.ChargeAmount().Equal(p.ChargeAmount()))
		assert.True(t, replayed.RatePerKg().Equal(p.RatePerKg()))
		assert.True(t, replayed.RatePerM3().Equal(p.RatePerM3()))
	})
}

func TestParcel_Items(t *testing.T) {
	newItem := func(t *testing.T) *parcel.Item {
		t.Helper()
		item, err := parcel.NewItem(kernel.NewUUID(), kernel.NewUUID(), 3, "")
		require.NoError(t, err)
		return item
	}

	t.Run("add, update and remove below the lock threshold", func(t *testing.T) {
		p := newDraftParcel(t)
		item := newItem(t)

		require.NoError(t, p.AddItem(item))
		require.Len(t, p.Items(), 1)

		updated, err := p.UpdateItem(item.ID(), 5, "restocked")
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Quantity())

		require.NoError(t, p.RemoveItem(item.ID()))
		assert.Empty(t, p.Items())
	})

	t.Run("duplicate item id is rejected", func(t *testing.T) {
		p := newDraftParcel(t)
		item := newItem(t)
		require.NoError(t, p.AddItem(item))

		err := p.AddItem(item)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown item id", func(t *testing.T) {
		p := newDraftParcel(t)

		_, err := p.UpdateItem(kernel.NewUUID(), 5, "")
		assert.ErrorIs(t, err, parcel.ErrItemNotFound)

		assert.ErrorIs(t, p.RemoveItem(kernel.NewUUID()), parcel.ErrItemNotFound)
	})

	t.Run("mutations rejected once Shipped", func(t *testing.T) {
		p := newDraftParcel(t)
		item := newItem(t)
		require.NoError(t, p.AddItem(item))
		advanceTo(t, p, parcel.Shipped)

		assert.ErrorIs(t, p.AddItem(newItem(t)), errs.ErrLocked)
		_, err := p.UpdateItem(item.ID(), 7, "")
		assert.ErrorIs(t, err, errs.ErrLocked)
		assert.ErrorIs(t, p.RemoveItem(item.ID()), errs.ErrLocked)
		require.Len(t, p.Items(), 1)
	})
}

func TestParcel_RefreshPhotoFlags(t *testing.T) {
	p := newDraftParcel(t)

	departure, err := media.NewMedia(
		kernel.NewUUID(), p.ID(), media.StageDeparture,
		"orig/a.jpg", "proc/a.jpg", "image/jpeg", 1024, "operator-1", time.Now(),
	)
	require.NoError(t, err)
	foreign, err := media.NewMedia(
		kernel.NewUUID(), kernel.NewUUID(), media.StageArrival,
		"orig/b.jpg", "proc/b.jpg", "image/jpeg", 1024, "operator-1", time.Now(),
	)
	require.NoError(t, err)

	p.RefreshPhotoFlags([]*media.Media{departure, foreign})

	assert.True(t, p.HasDeparturePhotos())
	assert.False(t, p.HasArrivalPhotos(), "other packages' media must not count")
}

func TestParcel_Validate(t *testing.T) {
	var p parcel.Parcel
	require.Error(t, p.Validate())
	require.NoError(t, newDraftParcel(t).Validate())
}
