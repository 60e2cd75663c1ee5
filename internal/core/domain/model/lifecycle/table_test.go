package lifecycle_test

import (
	"testing"

	"freight/internal/core/domain/model/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStatus int

const (
	stateA testStatus = iota
	stateB
	stateC
)

func (s testStatus) String() string {
	switch s {
	case stateA:
		return "A"
	case stateB:
		return "B"
	case stateC:
		return "C"
	}
	return "Unknown"
}

func newTestTable() lifecycle.Table[testStatus] {
	return lifecycle.NewTable("widget", map[testStatus][]testStatus{
		stateA: {stateB},
		stateB: {stateC, stateA},
	})
}

func TestTable_Can(t *testing.T) {
	table := newTestTable()

	assert.True(t, table.Can(stateA, stateB))
	assert.True(t, table.Can(stateB, stateC))
	assert.True(t, table.Can(stateB, stateA))

	assert.False(t, table.Can(stateA, stateC))
	assert.False(t, table.Can(stateA, stateA))
	assert.False(t, table.Can(stateC, stateA), "terminal status has no targets")
}

func TestTable_Check(t *testing.T) {
	table := newTestTable()

	t.Run("legal move returns nil", func(t *testing.T) {
		require.NoError(t, table.Check(stateA, stateB))
	})

	t.Run("illegal move names entity and pair", func(t *testing.T) {
		err := table.Check(stateC, stateA)

		require.Error(t, err)
		assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)

		var transitionErr *lifecycle.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "widget", transitionErr.Entity)
		assert.Equal(t, "C", transitionErr.From)
		assert.Equal(t, "A", transitionErr.To)
		assert.Equal(t, "invalid status transition: widget cannot move from C to A", err.Error())
	})
}

func TestTable_AllowedFrom(t *testing.T) {
	table := newTestTable()

	assert.ElementsMatch(t, []testStatus{stateC, stateA}, table.AllowedFrom(stateB))
	assert.Empty(t, table.AllowedFrom(stateC))

	// Mutating the returned slice must not leak into the table.
	targets := table.AllowedFrom(stateA)
	targets[0] = stateC
	assert.True(t, table.Can(stateA, stateB))
	assert.False(t, table.Can(stateA, stateC))
}
