// 🤖 Package monitor implements online, two-sided runtime verification over
// an efsm.Machine: given a sequence of inputs delivered one at a time, it
// reports, as early as possible, whether the sequence is guaranteed to end
// in acceptance, guaranteed to end in rejection, or still inconclusive.
//
// Monitor pairs two partial monitors that each run a single-sided
// check: the falsifier watches the original machine and declares rejection
// once it reaches a configuration no accepting location can still be
// reached from; the prover watches the machine's complement and declares
// acceptance once the complement can no longer reject (equivalently, the
// original can no longer avoid accepting). Neither partial monitor
// executes the full remaining input — each consults a reachability map
// computed once, up front, by efsm.Machine.FindNonEmpty.
package monitor
