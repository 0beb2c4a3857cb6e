// File: errors.go
// Role: sentinel errors for the efsm package.
//
// Error policy (matching builder/errors.go):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     context is attached with fmt.Errorf("%w: ...") at the call site.

package efsm

import "errors"

// ErrUndecidable is returned by Complement when a machine is known not to
// satisfy Complement's determinism/totality precondition. The current
// implementation does not attempt this check (see Machine.Complement's
// doc comment) and so never returns it; the sentinel is kept so that a
// future, stricter Complement can report the failure without breaking
// callers that already branch on it.
var ErrUndecidable = errors.New("efsm: machine is not known to be deterministic and total")

// ErrFindNonEmptyFailed is reserved for a genuine FindNonEmpty precondition
// failure. Exhausting the node budget is not such a failure: FindNonEmpty
// always returns its accumulated safe map with a nil error in that case
// (the map may then lack entries a larger budget would have added). The
// current implementation has no precondition it can detect violated, so
// this sentinel is never returned yet; it is kept, like ErrUndecidable, so
// a future stricter analysis can report the failure without breaking
// callers that already branch on it.
var ErrFindNonEmptyFailed = errors.New("efsm: find non empty failed")
