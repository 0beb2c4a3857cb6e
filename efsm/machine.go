// File: machine.go
// Role: the Machine type — an immutable directed graph of locations and
// guarded, bounded transitions, plus an accepting-location set.
// Concurrency: Machine carries no locks. A single value must not be driven
// from more than one goroutine concurrently; Clone hands out an
// independent copy for safe cross-goroutine sharing.
package efsm

import "github.com/benjaminpotter/go-efsm/interval"

// Machine is an extended finite state machine: D is the register type, I
// the input alphabet, and U the concrete Update implementation shared by
// every transition in the machine. Construct one with Builder.
type Machine[D interval.Numeric, I any, U Update[D, I]] struct {
	locations map[string][]Transition[D, I, U]
	accepting map[string]struct{}
}

// Locations returns the machine's full transition table, keyed by source
// location. The returned map must not be mutated by the caller.
func (m *Machine[D, I, U]) Locations() map[string][]Transition[D, I, U] {
	return m.locations
}

// Accepting returns the set of accepting locations. The returned map must
// not be mutated by the caller.
func (m *Machine[D, I, U]) Accepting() map[string]struct{} {
	return m.accepting
}

// IsAccepting reports whether location is in the accepting set.
func (m *Machine[D, I, U]) IsAccepting(location string) bool {
	_, ok := m.accepting[location]
	return ok
}

// TransitionsFrom returns the transitions leaving location, and false if
// the location has none recorded (a sink).
func (m *Machine[D, I, U]) TransitionsFrom(location string) ([]Transition[D, I, U], bool) {
	t, ok := m.locations[location]
	return t, ok
}

// Clone returns a deep copy of the machine: the transition table and
// accepting set are copied so that mutating operations on the clone (such
// as Complement) never affect the receiver.
func (m *Machine[D, I, U]) Clone() *Machine[D, I, U] {
	locations := make(map[string][]Transition[D, I, U], len(m.locations))
	for loc, transitions := range m.locations {
		cloned := make([]Transition[D, I, U], len(transitions))
		copy(cloned, transitions)
		locations[loc] = cloned
	}

	accepting := make(map[string]struct{}, len(m.accepting))
	for loc := range m.accepting {
		accepting[loc] = struct{}{}
	}

	return &Machine[D, I, U]{locations: locations, accepting: accepting}
}

// Complement returns a new machine over the same transitions whose
// accepting set is every location that appears in the transition table, as
// the source or the target of a transition, but was not accepting in the
// receiver.
//
// Precondition (not checked): the receiver is deterministic and total —
// every reachable configuration has exactly one enabled outgoing
// transition per input. Complement does not verify this; calling it on a
// machine that violates the precondition produces a "complement" machine
// whose rejection language does not actually complement the original's
// acceptance language.
func (m *Machine[D, I, U]) Complement() (*Machine[D, I, U], error) {
	clone := m.Clone()

	rejecting := make(map[string]struct{}, len(clone.locations))
	for loc, transitions := range clone.locations {
		if _, ok := clone.accepting[loc]; !ok {
			rejecting[loc] = struct{}{}
		}
		for _, t := range transitions {
			if _, ok := clone.accepting[t.ToLocation]; !ok {
				rejecting[t.ToLocation] = struct{}{}
			}
		}
	}

	clone.accepting = rejecting
	return clone, nil
}
