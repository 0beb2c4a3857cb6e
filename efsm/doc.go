// 🤖 Package efsm implements extended finite state machines (EFSMs):
// finite-state machines whose transitions additionally carry a guard over
// an auxiliary data register and an update function that computes the
// register's next value.
//
// A Machine[D, I, U] is built once, from a fixed set of locations and
// transitions, via Builder. Execution (Exec) steps a non-deterministic
// frontier of (location, data) configurations through an input sequence and
// reports whether any configuration in the final frontier lands on an
// accepting location.
//
// FindNonEmpty performs a one-time, bounded reachability analysis that
// over-approximates, for every location, the set of register values from
// which an accepting location is still reachable. This "safe" map is what
// package monitor consults to decide, without executing the machine to
// completion, that a run can no longer possibly accept or can no longer
// possibly reject.
//
// Machine carries no concurrency guarantees: a single Machine value must
// not be driven from more than one goroutine at a time. Clone gives callers
// an independent copy when a machine needs to be shared across goroutines
// or mutated in derived form (see Machine.Complement).
package efsm
