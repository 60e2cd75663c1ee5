package shipment_test

import (
	"fmt"
	"testing"

	"freight/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []shipment.Status {
	return []shipment.Status{
		shipment.Unknown,
		shipment.Draft,
		shipment.Scheduled,
		shipment.ReadyToDepart,
		shipment.Departed,
		shipment.Arrived,
		shipment.Closed,
		shipment.Cancelled,
	}
}

func TestStatus_String(t *testing.T) {
	expected := map[shipment.Status]string{
		shipment.Unknown:       "Unknown",
		shipment.Draft:         "Draft",
		shipment.Scheduled:     "Scheduled",
		shipment.ReadyToDepart: "ReadyToDepart",
		shipment.Departed:      "Departed",
		shipment.Arrived:       "Arrived",
		shipment.Closed:        "Closed",
		shipment.Cancelled:     "Cancelled",
	}

	for status, name := range expected {
		assert.Equal(t, name, status.String())
	}
	assert.Equal(t, "Unknown", shipment.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses()[1:] {
		t.Run(status.String(), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	require.Error(t, shipment.Unknown.Validate())
	require.Error(t, shipment.Status(-1).Validate())
	require.Error(t, shipment.Status(99).Validate())
}

// TestTransitions_Exhaustive enumerates every (from, to) pair against the
// rule table: the forward chain plus Cancelled from any non-terminal state,
// nothing else.
func TestTransitions_Exhaustive(t *testing.T) {
	legal := map[shipment.Status][]shipment.Status{
		shipment.Draft:         {shipment.Scheduled, shipment.Cancelled},
		shipment.Scheduled:     {shipment.ReadyToDepart, shipment.Cancelled},
		shipment.ReadyToDepart: {shipment.Departed, shipment.Cancelled},
		shipment.Departed:      {shipment.Arrived, shipment.Cancelled},
		shipment.Arrived:       {shipment.Closed, shipment.Cancelled},
	}

	table := shipment.Transitions()
	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			expected := false
			for _, target := range legal[from] {
				if target == to {
					expected = true
				}
			}

			t.Run(fmt.Sprintf("%s->%s", from, to), func(t *testing.T) {
				assert.Equal(t, expected, table.Can(from, to))
				if expected {
					require.NoError(t, table.Check(from, to))
				} else {
					require.Error(t, table.Check(from, to))
				}
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, shipment.Closed.IsTerminal())
	assert.True(t, shipment.Cancelled.IsTerminal())

	for _, status := range []shipment.Status{
		shipment.Draft, shipment.Scheduled, shipment.ReadyToDepart,
		shipment.Departed, shipment.Arrived,
	} {
		assert.False(t, status.IsTerminal(), status.String())
	}
}
