package efsm

import (
	"fmt"

	"github.com/benjaminpotter/go-efsm/interval"
)

// Update is the capability a transition exercises on the register: given
// the current concrete value (or, during reachability analysis, the
// current interval of possible values) and the input symbol, it computes
// the value (or interval) the register holds after the transition fires.
//
// Update is a capability object rather than a base type to implement: a
// single Machine is parameterized by exactly one concrete U, so every
// transition in that machine shares the same update behavior but may carry
// different configuration (see AddUpdate's Amount field).
type Update[D interval.Numeric, I any] interface {
	fmt.Stringer

	Apply(data D, input I) D
	ApplyInterval(bound interval.Interval[D]) interval.Interval[D]
}

// AddUpdate adds a fixed Amount to the register on every transition it is
// attached to, ignoring the input symbol. It is the concrete update the
// bounded-acceptor scenarios in this package's tests build on.
type AddUpdate[D interval.Numeric, I any] struct {
	Amount D
}

// Apply returns data + Amount.
func (u AddUpdate[D, I]) Apply(data D, _ I) D {
	return data + u.Amount
}

// ApplyInterval lifts Amount onto an interval: the lower bound always
// shifts by Amount; the upper bound shifts via CheckedAdd so that an
// overflowing sum degrades to "unbounded" rather than wrapping around.
func (u AddUpdate[D, I]) ApplyInterval(bound interval.Interval[D]) interval.Interval[D] {
	lower, upper := bound.Explicit()
	newUpper, ok := interval.CheckedAdd(upper, u.Amount)
	if !ok {
		return interval.AtLeast(lower + u.Amount)
	}
	return interval.Closed(lower+u.Amount, newUpper)
}

// String renders the update for diagnostic and DOT-export labels, e.g.
// "d += 3".
func (u AddUpdate[D, I]) String() string {
	return fmt.Sprintf("d += %v", u.Amount)
}

// IdentityUpdate leaves the register untouched, for no-op self-loops and
// catch-all edges (for example, passed as the update to TransitionDefault).
type IdentityUpdate[D interval.Numeric, I any] struct{}

// Apply returns data unchanged.
func (IdentityUpdate[D, I]) Apply(data D, _ I) D {
	return data
}

// ApplyInterval returns bound unchanged.
func (IdentityUpdate[D, I]) ApplyInterval(bound interval.Interval[D]) interval.Interval[D] {
	return bound
}

// String renders the update as "id".
func (IdentityUpdate[D, I]) String() string {
	return "id"
}
