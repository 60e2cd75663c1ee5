package supplyorder_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/lifecycle"
	"freight/internal/core/domain/model/supplyorder"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftOrder(t *testing.T) *supplyorder.SupplyOrder {
	t.Helper()
	o, err := supplyorder.NewSupplyOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Guangzhou Trading Co", nil, "",
	)
	require.NoError(t, err)
	return o
}

func TestNewSupplyOrder(t *testing.T) {
	t.Run("starts in Draft", func(t *testing.T) {
		o := newDraftOrder(t)
		assert.Equal(t, supplyorder.Draft, o.Status())
		assert.False(t, o.IsReceived())
	})

	t.Run("requires a supplier", func(t *testing.T) {
		_, err := supplyorder.NewSupplyOrder(
			kernel.NewUUID(), kernel.NewUUID(), "  ", nil, "",
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSupplyOrder_ChangeStatus(t *testing.T) {
	all := []supplyorder.Status{
		supplyorder.Draft, supplyorder.Ordered, supplyorder.InTransit,
		supplyorder.Received, supplyorder.Cancelled,
	}
	allowed := map[supplyorder.Status][]supplyorder.Status{
		supplyorder.Draft:     {supplyorder.Ordered, supplyorder.Cancelled},
		supplyorder.Ordered:   {supplyorder.InTransit, supplyorder.Cancelled},
		supplyorder.InTransit: {supplyorder.Received, supplyorder.Cancelled},
	}

	table := supplyorder.Transitions()
	for _, from := range all {
		for _, to := range all {
			want := false
			for _, target := range allowed[from] {
				if target == to {
					want = true
				}
			}
			assert.Equal(t, want, table.Can(from, to), "%s -> %s", from, to)
		}
	}

	t.Run("skipping a stage is rejected", func(t *testing.T) {
		o := newDraftOrder(t)
		err := o.ChangeStatus(supplyorder.Received)
		require.Error(t, err)
		assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	})

	t.Run("full chain reaches Received", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.ChangeStatus(supplyorder.Ordered))
		require.NoError(t, o.ChangeStatus(supplyorder.InTransit))
		require.NoError(t, o.ChangeStatus(supplyorder.Received))
		assert.True(t, o.IsReceived())
	})
}
