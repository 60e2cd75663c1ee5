package kernel_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	t.Run("distinct warehouses are accepted", func(t *testing.T) {
		origin := kernel.NewUUID()
		destination := kernel.NewUUID()

		route, err := kernel.NewRoute(origin, destination)

		require.NoError(t, err)
		assert.True(t, route.Origin().IsEqual(origin))
		assert.True(t, route.Destination().IsEqual(destination))
	})

	t.Run("same origin and destination is rejected", func(t *testing.T) {
		warehouse := kernel.NewUUID()

		_, err := kernel.NewRoute(warehouse, warehouse)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrSameOriginAndDestination, err)
	})

	t.Run("zero origin is rejected", func(t *testing.T) {
		_, err := kernel.NewRoute(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero destination is rejected", func(t *testing.T) {
		_, err := kernel.NewRoute(kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRoute_IsEqual(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()

	forward, err := kernel.NewRoute(a, b)
	require.NoError(t, err)
	reverse, err := kernel.NewRoute(b, a)
	require.NoError(t, err)
	same, err := kernel.NewRoute(a, b)
	require.NoError(t, err)

	assert.True(t, forward.IsEqual(same))
	assert.False(t, forward.IsEqual(reverse))
}

func TestRoute_Validate_ZeroValue(t *testing.T) {
	var route kernel.Route
	require.Error(t, route.Validate())
}
