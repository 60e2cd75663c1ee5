package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func newTestRoute(t *testing.T) kernel.Route {
	t.Helper()
	route, err := kernel.NewRoute(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return route
}

func newDraftShipment(t *testing.T, maxWeightKg, maxVolumeM3 float64) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), "SHP-GZ-000001", newTestRoute(t),
		time.Now().AddDate(0, 0, 30), time.Now().AddDate(0, 0, 60),
		maxWeightKg, maxVolumeM3,
	)
	require.NoError(t, err)
	return s
}

func newReadyShipment(t *testing.T, maxWeightKg float64) *shipment.Shipment {
	t.Helper()
	s := newDraftShipment(t, maxWeightKg, 0)
	require.NoError(t, s.SetCarrierCode("MSCU1234567"))
	now := time.Now()
	require.NoError(t, s.ChangeStatus(shipment.Scheduled, now))
	require.NoError(t, s.ChangeStatus(shipment.ReadyToDepart, now))
	return s
}

func newTestParcel(t *testing.T, shipmentID kernel.UUID, weightKg, volumeM3 float64) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(), shipmentID, kernel.NewUUID(),
		parcel.CustomerProvided, nil,
		weightKg, volumeM3, "USD", "",
	)
	require.NoError(t, err)
	return p
}

func advanceParcel(t *testing.T, p *parcel.Parcel, target parcel.Status) {
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

func newStagePhoto(t *testing.T, parcelID kernel.UUID, stage media.Stage) *media.Media {
	t.Helper()
	m, err := media.NewMedia(
		kernel.NewUUID(), parcelID, stage,
		"orig/key.jpg", "proc/key.jpg", "image/jpeg", 1024, "operator-1", time.Now(),
	)
	require.NoError(t, err)
	return m
}

func newTestCustomer(t *testing.T, id kernel.UUID, name string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(id, name, "+3161234"+id.String()[:4])
	require.NoError(t, err)
	return c
}
