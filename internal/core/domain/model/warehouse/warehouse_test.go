package warehouse_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/warehouse"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWarehouse(t *testing.T) {
	t.Run("normalizes code to uppercase", func(t *testing.T) {
		w, err := warehouse.NewWarehouse(kernel.NewUUID(), " gz ", "Guangzhou Hub", "Guangzhou", "CN")
		require.NoError(t, err)
		assert.Equal(t, "GZ", w.Code())
	})

	t.Run("requires a code", func(t *testing.T) {
		_, err := warehouse.NewWarehouse(kernel.NewUUID(), "", "Guangzhou Hub", "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects over-length code", func(t *testing.T) {
		_, err := warehouse.NewWarehouse(kernel.NewUUID(), "WAREHOUSE", "Guangzhou Hub", "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := warehouse.NewWarehouse(kernel.NewUUID(), "GZ", "  ", "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
