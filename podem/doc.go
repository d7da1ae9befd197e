// Package podem implements the PODEM (Path-Oriented Decision Making)
// test generation algorithm per spec §4.6, grounded on the recursive
// objective/backtrace/imply structure of the original D-algorithm-era
// ATPG tools:
//
//   - getObjective: if the fault site is unassigned, activating it is
//     the objective; once activated (D/D̄ present), an unassigned
//     input of the first D-frontier gate is the objective, with the
//     value that would let the fault's effect pass through that gate.
//   - backtrace: walks from the objective toward a primary input,
//     descending through the first unassigned (X) fanin at each step
//     and counting inverting gates traversed, to decide whether the
//     objective value must flip before reaching that PI.
//   - imply: a full five-valued resimulation of the circuit (every
//     non-PI reset to X, then recomputed in levelized order) after
//     each primary input assignment, applying the fault's stuck-at
//     injection at its site via logic.SetValueCheckFault.
//
// On a recursive call's failure, the search sets the chosen PI to the
// opposite value and retries; if both values fail, the PI is
// unassigned (X) and the call fails upward, backtracking one
// assignment at a time (not full chronological backtracking as in the
// dalg package).
//
// Errors
//
//   - ErrCircuitNil, ErrNotLevelized, ErrUnknownFaultSite.
//   - ErrUntestable: the search space was exhausted with no test found.
//   - ErrTimeout: WithContext's deadline elapsed or was cancelled.
package podem
