// File: monitor.go
// Role: the two-sided online monitor: a prover and a falsifier advanced in
// lockstep, the prover consulted first on every input.
package monitor

import (
	"github.com/benjaminpotter/go-efsm/efsm"
	"github.com/benjaminpotter/go-efsm/interval"
)

// Verdict is the outcome of feeding one input to a Monitor.
type Verdict int

const (
	// Inconclusive means neither side of the monitor has ruled out its
	// watched outcome yet; more input is needed.
	Inconclusive Verdict = iota
	// Accepted means the prover has shown the run can no longer avoid
	// ending in an accepting location.
	Accepted
	// Rejected means the falsifier has shown the run can no longer reach
	// an accepting location.
	Rejected
)

// String renders the verdict for diagnostic output.
func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "inconclusive"
	}
}

// Monitor watches a single run of an efsm.Machine and reports a Verdict
// after each input, without ever re-executing input already consumed.
type Monitor[D interval.Numeric, I any, U efsm.Update[D, I]] struct {
	prover    *partialMonitor[D, I, U]
	falsifier *partialMonitor[D, I, U]
}

// New builds a Monitor tracking machine starting at (location, data). It
// performs two reachability analyses up front (one over machine, one over
// its complement); FindNonEmptyOption values configure both.
func New[D interval.Numeric, I any, U efsm.Update[D, I]](
	location string,
	data D,
	machine *efsm.Machine[D, I, U],
	opts ...efsm.FindNonEmptyOption,
) (*Monitor[D, I, U], error) {
	prover, err := proveFrom(location, data, machine, opts...)
	if err != nil {
		return nil, err
	}

	falsifier, err := falsifyFrom(location, data, machine, opts...)
	if err != nil {
		return nil, err
	}

	return &Monitor[D, I, U]{prover: prover, falsifier: falsifier}, nil
}

// Next feeds input to the monitor and returns the resulting Verdict. The
// prover is consulted first: if it reaches a conclusive verdict, Next
// returns Accepted immediately without calling into the falsifier for this
// input.
func (m *Monitor[D, I, U]) Next(input I) (Verdict, error) {
	proved, err := m.prover.next(input)
	if err != nil {
		return Inconclusive, err
	}
	if proved {
		return Accepted, nil
	}

	falsified, err := m.falsifier.next(input)
	if err != nil {
		return Inconclusive, err
	}
	if falsified {
		return Rejected, nil
	}

	return Inconclusive, nil
}
