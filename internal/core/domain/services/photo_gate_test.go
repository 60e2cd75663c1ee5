package services_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParcelOnShipment(t *testing.T, shipmentID kernel.UUID, weightKg, volumeM3 float64) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(), shipmentID, kernel.NewUUID(),
		parcel.CustomerProvided, nil,
		weightKg, volumeM3, "USD", "",
	)
	require.NoError(t, err)
	return p
}

func departurePhoto(t *testing.T, parcelID kernel.UUID) *media.Media {
	t.Helper()
	m, err := media.NewMedia(
		kernel.NewUUID(), parcelID, media.StageDeparture,
		"orig/key.jpg", "proc/key.jpg", "image/jpeg", 1024, "operator-1", time.Now(),
	)
	require.NoError(t, err)
	return m
}

func namerFor(names map[kernel.UUID]string) services.CustomerNamer {
	return func(customerID kernel.UUID) string {
		return names[customerID]
	}
}

func TestPhotoGate_CheckShipment(t *testing.T) {
	gate := services.NewPhotoGate()
	shipmentID := kernel.NewUUID()

	t.Run("lists every package without departure photos", func(t *testing.T) {
		covered := newParcelOnShipment(t, shipmentID, 10, 1)
		bare1 := newParcelOnShipment(t, shipmentID, 10, 1)
		bare2 := newParcelOnShipment(t, shipmentID, 10, 1)
		names := map[kernel.UUID]string{
			bare1.CustomerID(): "Amina Yusuf",
			bare2.CustomerID(): "Chen Wei",
		}

		err := gate.CheckShipment(
			media.StageDeparture,
			[]*parcel.Parcel{covered, bare1, bare2},
			[]*media.Media{departurePhoto(t, covered.ID())},
			namerFor(names),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrPhotoGateFailed)

		var gateErr *services.PhotoGateError
		require.ErrorAs(t, err, &gateErr)
		require.Len(t, gateErr.Missing, 2)
		assert.Equal(t, bare1.ID(), gateErr.Missing[0].ParcelID)
		assert.Equal(t, "Amina Yusuf", gateErr.Missing[0].CustomerLabel)
		assert.Equal(t, media.StageDeparture, gateErr.Missing[0].Stage)
		assert.Equal(t, "Chen Wei", gateErr.Missing[1].CustomerLabel)
	})

	t.Run("cancelled packages are exempt", func(t *testing.T) {
		cancelled := newParcelOnShipment(t, shipmentID, 10, 1)
		require.NoError(t, cancelled.ChangeStatus(parcel.Cancelled))

		err := gate.CheckShipment(
			media.StageDeparture, []*parcel.Parcel{cancelled}, nil, namerFor(nil),
		)

		assert.NoError(t, err)
	})

	t.Run("arrival photos do not satisfy the departure gate", func(t *testing.T) {
		p := newParcelOnShipment(t, shipmentID, 10, 1)
		arrival, err := media.NewMedia(
			kernel.NewUUID(), p.ID(), media.StageArrival,
			"orig/key.jpg", "proc/key.jpg", "image/jpeg", 1024, "operator-1", time.Now(),
		)
		require.NoError(t, err)

		gateErr := gate.CheckShipment(
			media.StageDeparture, []*parcel.Parcel{p}, []*media.Media{arrival}, namerFor(nil),
		)

		assert.ErrorIs(t, gateErr, services.ErrPhotoGateFailed)
	})
}

func TestPhotoGate_CheckParcelTransition(t *testing.T) {
	gate := services.NewPhotoGate()
	shipmentID := kernel.NewUUID()

	t.Run("Shipped needs the departure flag", func(t *testing.T) {
		p := newParcelOnShipment(t, shipmentID, 10, 1)

		err := gate.CheckParcelTransition(p, parcel.Shipped, namerFor(nil))
		require.Error(t, err)

		var gateErr *services.PhotoGateError
		require.ErrorAs(t, err, &gateErr)
		assert.Equal(t, media.StageDeparture, gateErr.Stage)

		p.RefreshPhotoFlags([]*media.Media{departurePhoto(t, p.ID())})
		assert.NoError(t, gate.CheckParcelTransition(p, parcel.Shipped, namerFor(nil)))
	})

	t.Run("HandedOut needs the arrival flag", func(t *testing.T) {
		p := newParcelOnShipment(t, shipmentID, 10, 1)

		err := gate.CheckParcelTransition(p, parcel.HandedOut, namerFor(nil))

		var gateErr *services.PhotoGateError
		require.ErrorAs(t, err, &gateErr)
		assert.Equal(t, media.StageArrival, gateErr.Stage)
	})

	t.Run("ungated moves pass without evidence", func(t *testing.T) {
		p := newParcelOnShipment(t, shipmentID, 10, 1)
		assert.NoError(t, gate.CheckParcelTransition(p, parcel.Received, namerFor(nil)))
		assert.NoError(t, gate.CheckParcelTransition(p, parcel.Cancelled, namerFor(nil)))
	})
}
