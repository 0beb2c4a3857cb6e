// File: partial.go
// Role: a single-sided online monitor. Tracks exactly one configuration
// through a machine and consults a precomputed reachability map to decide,
// without running the rest of the input, that the tracked configuration
// can no longer reach an accepting location.
// Concurrency: a partialMonitor is not safe for concurrent use; it mutates
// its tracked configuration on every next call.
package monitor

import (
	"fmt"

	"github.com/benjaminpotter/go-efsm/efsm"
	"github.com/benjaminpotter/go-efsm/interval"
)

type partialMonitor[D interval.Numeric, I any, U efsm.Update[D, I]] struct {
	config         efsm.Configuration[D]
	machine        *efsm.Machine[D, I, U]
	nonEmptyStates map[string]interval.Interval[D]
}

// falsifyFrom builds a partial monitor over machine directly: it declares
// a conclusive result once the tracked configuration leaves every interval
// FindNonEmpty considers safe.
func falsifyFrom[D interval.Numeric, I any, U efsm.Update[D, I]](
	location string,
	data D,
	machine *efsm.Machine[D, I, U],
	opts ...efsm.FindNonEmptyOption,
) (*partialMonitor[D, I, U], error) {
	nonEmptyStates, err := machine.FindNonEmpty(location, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: partial monitor: %v", ErrConstructionFailed, err)
	}

	return &partialMonitor[D, I, U]{
		config:         efsm.Configuration[D]{Location: location, Data: data},
		machine:        machine,
		nonEmptyStates: nonEmptyStates,
	}, nil
}

// proveFrom builds a partial monitor over machine's complement: reaching a
// configuration the complement can no longer escape from means the
// original machine can no longer avoid acceptance.
func proveFrom[D interval.Numeric, I any, U efsm.Update[D, I]](
	location string,
	data D,
	machine *efsm.Machine[D, I, U],
	opts ...efsm.FindNonEmptyOption,
) (*partialMonitor[D, I, U], error) {
	complement, err := machine.Complement()
	if err != nil {
		return nil, fmt.Errorf("%w: complement failed: %v", ErrConstructionFailed, err)
	}
	return falsifyFrom(location, data, complement, opts...)
}

// next feeds input to the tracked configuration and reports whether the
// resulting configuration is conclusively outside every safe interval —
// i.e. this side of the monitor has reached a verdict.
func (p *partialMonitor[D, I, U]) next(input I) (bool, error) {
	next := p.machine.Step(input, []efsm.Configuration[D]{p.config})

	if len(next) != 1 {
		return false, fmt.Errorf("%w: got %d next configurations, want 1", ErrTransitionFailed, len(next))
	}

	p.config = next[0]

	if bound, ok := p.nonEmptyStates[p.config.Location]; ok {
		if bound.Contains(p.config.Data) {
			// still possibly safe; no verdict yet
			return false, nil
		}
	}

	// no recorded safe interval contains the current register value: this
	// branch can no longer reach the locations it was watching for.
	return true, nil
}
