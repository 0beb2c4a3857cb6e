// Package goefsm (go-efsm) is a Go port of the extended finite state
// machine (EFSM) runtime property-monitor library this repository is
// named after.
//
// 🤖 What is go-efsm?
//
//	A small, zero-external-runtime-dependency library for building EFSMs
//	and watching them online as input arrives:
//
//	  • Construction: a fluent Builder describing locations, guarded and
//	    bounded transitions, and accepting locations
//	  • Execution: non-deterministic frontier stepping over an input
//	    sequence (Machine.Exec)
//	  • Reachability: a bounded, arena-based search producing a
//	    per-location interval of register values still able to reach
//	    acceptance (Machine.FindNonEmpty)
//	  • Monitoring: a two-sided online monitor (package monitor) that
//	    reports Accepted/Rejected/Inconclusive after each input, without
//	    ever re-running the input already consumed
//
// ✨ Design notes
//
//   - Generic over the register type D (any fixed-width numeric kind, see
//     package interval) and the input alphabet I
//   - Update is a capability interface, not a base type: AddUpdate and
//     IdentityUpdate are the two concrete implementations this repository
//     ships, and user code can supply its own
//   - No concurrency guarantees: a Machine or Monitor value is driven from
//     a single goroutine; Clone produces an independent copy for sharing
//
// Subpackages:
//
//	interval/ — closed numeric intervals with optional unbounded endpoints
//	efsm/     — Machine, Builder, Transition, Update, reachability analysis
//	monitor/  — the online two-sided monitor built on efsm
//	gviz/     — Graphviz DOT export of a Machine
package goefsm
