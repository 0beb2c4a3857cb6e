// File: reach.go
// Role: bounded depth-first reachability analysis. Builds a search arena of
// path nodes (indexed by int rather than owned via parent pointers, so the
// tree can be walked back to front without borrow-checker-style aliasing
// concerns) and folds every path that reaches an accepting location, or
// re-enters an already-safe location, into a per-location "safe" interval.
// Determinism: node visitation order is depth-first, most-recently-pushed
// first (a LIFO work stack). A node's children are pushed in the order
// transitions were added to the machine, so the child of the last-added
// transition is visited first.
// Concurrency: FindNonEmpty reads the receiver only; it is safe to run
// concurrently with other read-only Machine operations on the same value.
package efsm

import "github.com/benjaminpotter/go-efsm/interval"

const defaultNodeBudget = 100

// FindNonEmptyOption configures a single FindNonEmpty call.
type FindNonEmptyOption func(*findNonEmptyConfig)

type findNonEmptyConfig struct {
	nodeBudget int
}

// WithNodeBudget overrides the search-arena size at which FindNonEmpty
// stops expanding nodes and returns whatever safe map it has accumulated so
// far. A node's children are all appended before the size is checked, so
// the arena can end somewhat larger than the budget. The default is 100.
func WithNodeBudget(budget int) FindNonEmptyOption {
	return func(c *findNonEmptyConfig) {
		c.nodeBudget = budget
	}
}

// pathNode is one entry in the search arena: a location reached by
// narrowing the parent's interval through one transition's bound and
// update. parentIdx is -1 for the root.
type pathNode[D interval.Numeric] struct {
	parentIdx      int
	parentInterval interval.Interval[D]
	location       string
	interval       interval.Interval[D]
}

// pathTo returns the arena indices from the root down to node idx,
// inclusive, in root-to-leaf order.
func pathTo[D interval.Numeric](nodes []pathNode[D], idx int) []int {
	var path []int
	for next := idx; next != -1; next = nodes[next].parentIdx {
		path = append(path, next)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// FindNonEmpty performs a one-time bounded search from location and
// returns, for every location it can establish as "safe", the interval of
// register values from which an accepting location remains reachable. The
// accepting locations themselves are always present, mapped to the fully
// unbounded interval.
//
// The search explores at most WithNodeBudget nodes (100 by default); if
// the budget is exhausted before the frontier drains, FindNonEmpty still
// returns the safe map accumulated so far, with a nil error — exhausting
// the budget is an ordinary, expected outcome on cyclic machines, not a
// failure. In that case the map may lack locations or values that a larger
// budget would have added. Independently of the budget, each entry is
// widened to a convex hull (see interval.Interval.Widen), so it can also
// include values from which no accepting location is reachable.
func (m *Machine[D, I, U]) FindNonEmpty(location string, opts ...FindNonEmptyOption) (map[string]interval.Interval[D], error) {
	cfg := findNonEmptyConfig{nodeBudget: defaultNodeBudget}
	for _, opt := range opts {
		opt(&cfg)
	}

	safe := make(map[string]interval.Interval[D], len(m.accepting))
	for loc := range m.accepting {
		safe[loc] = interval.Unbounded[D]()
	}

	nodes := []pathNode[D]{{
		parentIdx: -1,
		location:  location,
		interval:  interval.Unbounded[D](),
	}}
	toVisit := []int{0}

	for len(nodes) <= cfg.nodeBudget {
		if len(toVisit) == 0 {
			return safe, nil
		}

		idx := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		current := nodes[idx]

		isSafe := m.IsAccepting(current.location)
		if !isSafe {
			if bound, ok := safe[current.location]; ok {
				isSafe = bound.ContainsInterval(current.interval)
			}
		}

		if isSafe {
			for _, stepIdx := range pathTo(nodes, idx) {
				step := nodes[stepIdx]
				if step.parentIdx == -1 {
					continue
				}
				loc := nodes[step.parentIdx].location
				if existing, ok := safe[loc]; ok {
					existing.Widen(step.parentInterval)
					safe[loc] = existing
				} else {
					safe[loc] = step.parentInterval
				}
			}
		}

		transitions, ok := m.locations[current.location]
		if !ok {
			continue
		}
		for _, t := range transitions {
			postcondition, ok := current.interval.Intersect(t.Bound)
			if !ok {
				continue
			}

			childIdx := len(nodes)
			nodes = append(nodes, pathNode[D]{
				parentIdx:      idx,
				parentInterval: postcondition,
				location:       t.ToLocation,
				interval:       t.Update.ApplyInterval(postcondition),
			})
			toVisit = append(toVisit, childIdx)
		}
	}

	// Node budget exhausted before the stack drained: return what has been
	// established so far, possibly missing entries a larger budget would add.
	return safe, nil
}
