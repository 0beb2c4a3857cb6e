// Package gviz renders an efsm.Machine as a Graphviz DOT graph: one node
// per location (doubled periphery for accepting locations) and one edge
// per transition, labelled with the transition's update and bound.
package gviz
