package efsm_test

import (
	"testing"

	"github.com/benjaminpotter/go-efsm/efsm"
	"github.com/benjaminpotter/go-efsm/interval"
	"github.com/stretchr/testify/assert"
)

// TestFindNonEmpty_BoundedAcceptor exercises scenario S4: for the machine
// of S3, find_non_empty("s0") must report both s0 and s1, with s1 (the
// accepting location) unbounded and s0's interval containing 0.
func TestFindNonEmpty_BoundedAcceptor(t *testing.T) {
	m := boundedAcceptor()

	safe, err := m.FindNonEmpty("s0")
	assert.NoError(t, err)

	s1, ok := safe["s1"]
	assert.True(t, ok, "s1 must be present")
	assert.Equal(t, interval.Unbounded[int](), s1)

	s0, ok := safe["s0"]
	assert.True(t, ok, "s0 must be present")
	assert.True(t, s0.Contains(0))
}

func TestFindNonEmpty_ExhaustedBudgetReturnsPartialMap(t *testing.T) {
	// A self-loop with no accepting location reachable exhausts the budget
	// quickly once the budget is set unrealistically low relative to the
	// branching factor, since both transitions stay enabled forever.
	// Exhaustion is not an error: FindNonEmpty reports whatever it has
	// established so far, which here is nothing, since no accepting
	// location is ever reached.
	type update = efsm.AddUpdate[int, byte]
	m := efsm.NewBuilder[int, byte, update]().
		WithTransition("s0", efsm.TransitionDefault[int, byte, update]("s0", update{Amount: 1})).
		WithTransition("s0", efsm.TransitionDefault[int, byte, update]("s0", update{Amount: -1})).
		Build()

	safe, err := m.FindNonEmpty("s0", efsm.WithNodeBudget(3))
	assert.NoError(t, err)
	assert.Empty(t, safe)
}
