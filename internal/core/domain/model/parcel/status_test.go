package parcel_test

import (
	"testing"

	"freight/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
)

func allStatuses() []parcel.Status {
	return []parcel.Status{
		parcel.Draft, parcel.Received, parcel.Packed, parcel.ReadyToShip,
		parcel.Shipped, parcel.ArrivedAtDestination, parcel.ReadyForHandout,
		parcel.HandedOut, parcel.Cancelled,
	}
}

func TestStatus_Transitions(t *testing.T) {
	allowed := map[parcel.Status][]parcel.Status{
		parcel.Draft:                {parcel.Received, parcel.Cancelled},
		parcel.Received:             {parcel.Packed, parcel.Cancelled},
		parcel.Packed:               {parcel.ReadyToShip, parcel.Cancelled},
		parcel.ReadyToShip:          {parcel.Shipped, parcel.Cancelled},
		parcel.Shipped:              {parcel.ArrivedAtDestination, parcel.Cancelled},
		parcel.ArrivedAtDestination: {parcel.ReadyForHandout, parcel.Cancelled},
		parcel.ReadyForHandout:      {parcel.HandedOut, parcel.Cancelled},
		parcel.HandedOut:            {},
		parcel.Cancelled:            {},
	}

	table := parcel.Transitions()
	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			want := false
			for _, target := range allowed[from] {
				if target == to {
					want = true
				}
			}
			assert.Equal(t, want, table.Can(from, to),
				"%s -> %s", from, to)
		}
	}
}

func TestStatus_IsLocked(t *testing.T) {
	locked := map[parcel.Status]bool{
		parcel.Draft:                false,
		parcel.Received:             false,
		parcel.Packed:               false,
		parcel.ReadyToShip:          false,
		parcel.Shipped:              true,
		parcel.ArrivedAtDestination: true,
		parcel.ReadyForHandout:      true,
		parcel.HandedOut:            true,
		parcel.Cancelled:            true,
	}

	for status, want := range locked {
		assert.Equal(t, want, status.IsLocked(), status.String())
	}
}

func TestStatus_IsTerminalHandling(t *testing.T) {
	for _, status := range allStatuses() {
		want := status == parcel.HandedOut || status == parcel.Cancelled
		assert.Equal(t, want, status.IsTerminalHandling(), status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses() {
		assert.NoError(t, status.Validate(), status.String())
	}
	assert.Error(t, parcel.Unknown.Validate())
	assert.Error(t, parcel.Status(100).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ReadyForHandout", parcel.ReadyForHandout.String())
	assert.Equal(t, "Unknown", parcel.Status(100).String())
}
