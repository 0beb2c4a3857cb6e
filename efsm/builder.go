// File: builder.go
// Role: the fluent constructor for Machine, mirroring builder.GraphBuilder's
// chained With* style.
package efsm

import "github.com/benjaminpotter/go-efsm/interval"

// Builder accumulates a transition table and an accepting-location set
// before producing an immutable Machine with Build.
type Builder[D interval.Numeric, I any, U Update[D, I]] struct {
	locations map[string][]Transition[D, I, U]
	accepting map[string]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder[D interval.Numeric, I any, U Update[D, I]]() *Builder[D, I, U] {
	return &Builder[D, I, U]{
		locations: make(map[string][]Transition[D, I, U]),
		accepting: make(map[string]struct{}),
	}
}

// WithTransition adds transition as an outgoing edge of fromLocation.
// Transitions out of a location are tried in the order they were added.
func (b *Builder[D, I, U]) WithTransition(fromLocation string, transition Transition[D, I, U]) *Builder[D, I, U] {
	b.locations[fromLocation] = append(b.locations[fromLocation], transition)
	return b
}

// WithAccepting marks location as accepting.
func (b *Builder[D, I, U]) WithAccepting(location string) *Builder[D, I, U] {
	b.accepting[location] = struct{}{}
	return b
}

// Build returns the Machine described by the calls made so far. The
// builder remains usable afterward; further With* calls do not affect
// machines already built.
func (b *Builder[D, I, U]) Build() *Machine[D, I, U] {
	locations := make(map[string][]Transition[D, I, U], len(b.locations))
	for loc, transitions := range b.locations {
		cloned := make([]Transition[D, I, U], len(transitions))
		copy(cloned, transitions)
		locations[loc] = cloned
	}

	accepting := make(map[string]struct{}, len(b.accepting))
	for loc := range b.accepting {
		accepting[loc] = struct{}{}
	}

	return &Machine[D, I, U]{locations: locations, accepting: accepting}
}

// TransitionDefault returns a transition that targets toLocation, is
// always enabled, is unbounded, and carries update — a terse way to build
// self-loops and catch-all edges without repeating the default guard and
// bound at every call site.
func TransitionDefault[D interval.Numeric, I any, U Update[D, I]](toLocation string, update U) Transition[D, I, U] {
	return Transition[D, I, U]{
		ToLocation: toLocation,
		Enable:     func(D, I) bool { return true },
		Bound:      interval.Unbounded[D](),
		Update:     update,
	}
}
