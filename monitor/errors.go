// File: errors.go
// Role: sentinel errors for the monitor package.
package monitor

import "errors"

// ErrTransitionFailed indicates that a PartialMonitor's single tracked
// configuration did not transition to exactly one next configuration on
// the most recent input — meaning the underlying machine is
// non-deterministic (or malformed) from that configuration. A partial
// monitor can only track one branch at a time; this is the signal that
// the assumption broke.
var ErrTransitionFailed = errors.New("monitor: machine did not yield exactly one next configuration")

// ErrConstructionFailed indicates that building a Monitor failed because
// either the machine's complement or its reachability analysis could not
// be computed from the given starting location.
var ErrConstructionFailed = errors.New("monitor: construction failed")
