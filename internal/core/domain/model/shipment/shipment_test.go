package shipment_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/lifecycle"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoute(t *testing.T) kernel.Route {
	t.Helper()
	route, err := kernel.NewRoute(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return route
}

func newDraftShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		"SHP-MAIN-000001",
		newTestRoute(t),
		time.Now().AddDate(0, 0, 30),
		time.Now().AddDate(0, 0, 60),
		1000, 50,
	)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("starts in Draft without carrier code", func(t *testing.T) {
		s := newDraftShipment(t)

		assert.Equal(t, shipment.Draft, s.Status())
		assert.Empty(t, s.CarrierCode())
		assert.Nil(t, s.ActualDepartureAt())
		assert.Nil(t, s.Tracking())
	})

	t.Run("requires a reference code", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), "  ", newTestRoute(t),
			time.Time{}, time.Time{}, 0, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative capacity limits", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), "SHP-1", newTestRoute(t),
			time.Time{}, time.Time{}, -1, 0)
		require.Error(t, err)
	})

	t.Run("rejects arrival planned before departure", func(t *testing.T) {
		departure := time.Now()
		_, err := shipment.NewShipment(kernel.NewUUID(), "SHP-1", newTestRoute(t),
			departure, departure.Add(-time.Hour), 0, 0)
		require.Error(t, err)
	})
}

func TestShipment_SetCarrierCode(t *testing.T) {
	t.Run("normalizes to uppercase", func(t *testing.T) {
		s := newDraftShipment(t)

		require.NoError(t, s.SetCarrierCode(" mscu1234567 "))
		assert.Equal(t, "MSCU1234567", s.CarrierCode())
	})

	t.Run("rejects blank code", func(t *testing.T) {
		s := newDraftShipment(t)
		err := s.SetCarrierCode("   ")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects over-length code", func(t *testing.T) {
		s := newDraftShipment(t)
		err := s.SetCarrierCode("MSCU12345678")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("locked once no longer Draft", func(t *testing.T) {
		s := newDraftShipment(t)
		require.NoError(t, s.SetCarrierCode("MSCU1234567"))
		require.NoError(t, s.ChangeStatus(shipment.Scheduled, time.Now()))

		err := s.SetCarrierCode("OTHER123")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrLocked)
		assert.Equal(t, "MSCU1234567", s.CarrierCode())
	})
}

func TestShipment_ChangeStatus(t *testing.T) {
	t.Run("Scheduled requires carrier code", func(t *testing.T) {
		s := newDraftShipment(t)

		err := s.ChangeStatus(shipment.Scheduled, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, shipment.Draft, s.Status())
	})

	t.Run("illegal move is rejected by the rule table", func(t *testing.T) {
		s := newDraftShipment(t)

		err := s.ChangeStatus(shipment.Departed, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
		assert.Equal(t, shipment.Draft, s.Status())
	})

	t.Run("Cancelled is reachable from Draft", func(t *testing.T) {
		s := newDraftShipment(t)
		require.NoError(t, s.ChangeStatus(shipment.Cancelled, time.Now()))
		assert.Equal(t, shipment.Cancelled, s.Status())
	})

	t.Run("Arrived stamps actual arrival time", func(t *testing.T) {
		s := newDraftShipment(t)
		require.NoError(t, s.SetCarrierCode("MSCU1234567"))
		now := time.Now()
		require.NoError(t, s.ChangeStatus(shipment.Scheduled, now))
		require.NoError(t, s.ChangeStatus(shipment.ReadyToDepart, now))
		require.NoError(t, s.Depart(now))

		arrivedAt := now.Add(24 * time.Hour)
		require.NoError(t, s.ChangeStatus(shipment.Arrived, arrivedAt))

		require.NotNil(t, s.ActualArrivalAt())
		assert.Equal(t, arrivedAt, *s.ActualArrivalAt())
	})
}

func TestShipment_Depart(t *testing.T) {
	t.Run("stamps actual departure time", func(t *testing.T) {
		s := newDraftShipment(t)
		require.NoError(t, s.SetCarrierCode("MSCU1234567"))
		now := time.Now()
		require.NoError(t, s.ChangeStatus(shipment.Scheduled, now))
		require.NoError(t, s.ChangeStatus(shipment.ReadyToDepart, now))

		require.NoError(t, s.Depart(now))

		assert.Equal(t, shipment.Departed, s.Status())
		require.NotNil(t, s.ActualDepartureAt())
		assert.Equal(t, now, *s.ActualDepartureAt())
	})

	t.Run("rejected while Draft", func(t *testing.T) {
		s := newDraftShipment(t)
		require.NoError(t, s.SetCarrierCode("MSCU1234567"))

		err := s.Depart(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
		assert.Nil(t, s.ActualDepartureAt())
	})
}

func TestShipment_ApplyTracking(t *testing.T) {
	snapshot := shipment.TrackingSnapshot{
		Code:        "MSCU1234567",
		Name:        "Evergreen",
		Origin:      "Shanghai",
		Destination: "Rotterdam",
		Status:      "In Transit",
	}

	t.Run("rejected while Draft", func(t *testing.T) {
		s := newDraftShipment(t)

		err := s.ApplyTracking(snapshot, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrLocked)
		assert.Nil(t, s.Tracking())
	})

	t.Run("overwrites snapshot and stamps sync time", func(t *testing.T) {
		s := newDraftShipment(t)
		require.NoError(t, s.SetCarrierCode("MSCU1234567"))
		require.NoError(t, s.ChangeStatus(shipment.Scheduled, time.Now()))

		syncedAt := time.Now()
		require.NoError(t, s.ApplyTracking(snapshot, syncedAt))

		require.NotNil(t, s.Tracking())
		assert.Equal(t, "Evergreen", s.Tracking().Name)
		assert.Equal(t, syncedAt, s.Tracking().LastSyncedAt)
	})
}

func TestShipment_SetTotals(t *testing.T) {
	s := newDraftShipment(t)

	require.NoError(t, s.SetTotals(900, 42.5))
	assert.InDelta(t, 900.0, s.TotalWeightKg(), 0.0001)
	assert.InDelta(t, 42.5, s.TotalVolumeM3(), 0.0001)

	require.Error(t, s.SetTotals(-1, 0))
}

func TestShipment_Validate(t *testing.T) {
	var s shipment.Shipment
	require.Error(t, s.Validate())
	require.NoError(t, newDraftShipment(t).Validate())
}
