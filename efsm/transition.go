package efsm

import "github.com/benjaminpotter/go-efsm/interval"

// Enable is a transition guard: given the current register value and the
// input symbol being consumed, it reports whether the transition may fire.
type Enable[D, I any] func(data D, input I) bool

// Transition describes a single directed edge out of a location: where it
// leads, under what guard it fires, the interval of register values for
// which the reachability analyzer considers it fireable, and how it
// updates the register.
type Transition[D interval.Numeric, I any, U Update[D, I]] struct {
	ToLocation string
	Enable     Enable[D, I]
	Bound      interval.Interval[D]
	Update     U
}

// Configuration is a single point in the machine's non-deterministic
// execution frontier: a location paired with a concrete register value.
type Configuration[D any] struct {
	Location string
	Data     D
}
