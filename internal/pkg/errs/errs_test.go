package errs_test

import (
	"errors"
	"testing"

	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentId", "123")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shipmentId", "123", cause)

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: shipmentId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("carrier code")

		assert.Equal(t, "carrier code", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: carrier code", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("carrier code", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: carrier code (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -5, 1, 1000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -5 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("reason")

		assert.Equal(t, "reason", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: reason", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("reason", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: reason (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestLockedError(t *testing.T) {
	t.Run("NewLockedError", func(t *testing.T) {
		err := errs.NewLockedError("package", "abc-123")

		assert.Equal(t, "package", err.Entity)
		assert.Equal(t, "abc-123", err.ID)
		assert.Equal(t, "entity is locked: package abc-123", err.Error())
		assert.Equal(t, errs.ErrLocked, err.Unwrap())
		assert.ErrorIs(t, error(err), errs.ErrLocked)
	})

	t.Run("NewLockedErrorWithCause", func(t *testing.T) {
		cause := errors.New("status is Shipped")
		err := errs.NewLockedErrorWithCause("package", "abc-123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "entity is locked: package abc-123 (cause: status is Shipped)", err.Error())
	})
}

func TestCapacityExceededError(t *testing.T) {
	err := errs.NewCapacityExceededError("weight", 1001, 1000)

	assert.Equal(t, "weight", err.Dimension)
	assert.InDelta(t, 1001.0, err.Requested, 0.0001)
	assert.InDelta(t, 1000.0, err.Limit, 0.0001)
	assert.Equal(t, "capacity exceeded: weight total 1001.000 exceeds limit 1000.000", err.Error())
	assert.ErrorIs(t, error(err), errs.ErrCapacityExceeded)
}
