// File: graph.go
// Role: a small DOT builder, built without a general-purpose Graphviz
// dependency — the format this package emits is fixed and tiny enough that
// hand-rolling it is simpler than wiring in a full DOT library.
package gviz

import (
	"fmt"
	"strings"

	"github.com/benjaminpotter/go-efsm/efsm"
	"github.com/benjaminpotter/go-efsm/interval"
)

type node struct {
	label       string
	peripheries int
}

type edge struct {
	label string
	head  string
	tail  string
}

// Graph is a DOT representation of a machine's locations and transitions.
type Graph struct {
	nodes []node
	edges []edge
}

// FromMachine builds a Graph from m. U must additionally implement
// fmt.Stringer so transitions can be labelled with their update; both
// efsm.AddUpdate and efsm.IdentityUpdate satisfy this.
func FromMachine[D interval.Numeric, I any, U efsm.Update[D, I]](m *efsm.Machine[D, I, U]) Graph {
	g := Graph{}

	for location, transitions := range m.Locations() {
		peripheries := 1
		if m.IsAccepting(location) {
			peripheries = 2
		}
		g.nodes = append(g.nodes, node{label: location, peripheries: peripheries})

		for _, t := range transitions {
			g.edges = append(g.edges, edge{
				label: fmt.Sprintf("%s<br/>%s", t.Update, t.Bound),
				head:  location,
				tail:  t.ToLocation,
			})
		}
	}

	// Locations that only appear as a transition target still get a node.
	listed := make(map[string]bool, len(g.nodes))
	for _, n := range g.nodes {
		listed[n.label] = true
	}
	for _, e := range g.edges {
		if !listed[e.tail] {
			listed[e.tail] = true
			peripheries := 1
			if m.IsAccepting(e.tail) {
				peripheries = 2
			}
			g.nodes = append(g.nodes, node{label: e.tail, peripheries: peripheries})
		}
	}

	return g
}

// String renders the graph as a DOT "digraph machine { ... }" document.
func (g Graph) String() string {
	var b strings.Builder

	b.WriteString("digraph machine {\n")
	b.WriteString("graph [center=true pad=.5];\n")
	b.WriteString("rankdir=LR;\n")

	for _, n := range g.nodes {
		fmt.Fprintf(&b, "%s[shape=circle,peripheries=%d];\n", n.label, n.peripheries)
	}
	for _, e := range g.edges {
		fmt.Fprintf(&b, "%s -> %s [label=<%s>];\n", e.head, e.tail, e.label)
	}

	b.WriteString("}\n")
	return b.String()
}
