// Package interval implements closed numeric intervals with optional open
// endpoints over a fixed-width numeric register type.
//
// An Interval[D] represents the inclusive set {d | lower <= d <= upper},
// substituting the type's minimum/maximum value for an unbounded endpoint.
// Canonicalization keeps the representation unique: an explicit endpoint
// equal to the type's minimum (resp. maximum) is always stored as
// unbounded, so two intervals covering the same set of values compare
// equal with reflect.DeepEqual / testify's assert.Equal.
//
// All operations are pure: Intersect and the canonicalizing constructors
// return new values, and only Widen mutates its receiver (in place, to
// become the convex hull of itself and its argument).
package interval
