// File: exec.go
// Role: non-deterministic frontier execution.
// Determinism: Step's output order is deterministic for a deterministic
// iteration order of the input frontier and of each location's transition
// list; it does not depend on map iteration order because each location's
// transition slice keeps the order of the WithTransition calls.
package efsm

// Step advances every configuration in frontier by one input symbol,
// trying every transition enabled from each configuration's location and
// whose guard accepts (data, input). A configuration with no enabled
// transition simply drops out of the returned frontier — it represents a
// dead branch of the non-deterministic run. The returned frontier is not
// deduplicated: two configurations that happen to coincide are kept as
// separate entries, matching the underlying machine model exactly.
func (m *Machine[D, I, U]) Step(input I, frontier []Configuration[D]) []Configuration[D] {
	next := make([]Configuration[D], 0, len(frontier))
	for _, cfg := range frontier {
		transitions, ok := m.locations[cfg.Location]
		if !ok {
			continue
		}
		for _, t := range transitions {
			if !t.Enable(cfg.Data, input) {
				continue
			}
			next = append(next, Configuration[D]{
				Location: t.ToLocation,
				Data:     t.Update.Apply(cfg.Data, input),
			})
		}
	}
	return next
}

// Exec reports whether the input sequence drives some branch of the
// machine's non-deterministic execution, started from (location, data),
// into an accepting location. It returns false as soon as the frontier
// empties (every branch has died) without waiting for the rest of input.
func (m *Machine[D, I, U]) Exec(location string, data D, input []I) bool {
	frontier := []Configuration[D]{{Location: location, Data: data}}

	for _, i := range input {
		if len(frontier) == 0 {
			return false
		}
		frontier = m.Step(i, frontier)
	}

	for _, cfg := range frontier {
		if m.IsAccepting(cfg.Location) {
			return true
		}
	}
	return false
}
