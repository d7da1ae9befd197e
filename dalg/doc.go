// Package dalg implements the D-algorithm per spec §4.7, the
// decision-level search that excites a stuck-at fault and justifies
// its propagation to a primary output through alternating forward and
// backward constraint propagation.
//
// Imply-and-check
//
// Every assignment seeds a worklist. Each popped node first tries
// backward implication on its own unassigned fanin (BRANCH/NOT copy
// or invert; XOR solves a lone unknown input by parity; AND/NAND/OR/
// NOR force every fanin to the non-controlling value when the output
// holds that value, or force a lone unknown fanin to the controlling
// value when the output requires it and no fanin already supplies
// it). Then forward implication recomputes every fanout via
// logic.Eval, which already implements the controlling/X/D-D̄-masking
// rule uniformly across gate kinds — one call replaces the dozen
// hand-written per-gate-type branches a direct transcription would
// need. A mismatch between a freshly derived value and one already
// assigned aborts the branch.
//
// Decision levels
//
// With no conflict, decide checks every primary output for D/D̄
// (success) or computes the D-frontier (nodes at X with a D/D̄ fanin).
// A non-empty frontier is a propagation decision: for each candidate
// gate in turn, force its remaining X fanins to non-controlling and
// recurse one decision level deeper, rolling back entirely on
// failure before trying the next candidate. An empty frontier falls
// back to a justification decision: find a controlling gate whose
// settled output needs a controlling fanin that two-or-more
// remaining X fanins leave ambiguous, and try each such fanin at both
// polarities. Exhausting every candidate at every level backtracks to
// ErrUntestable.
//
// Exciting the fault site: its own value is the fault's symbolic
// axiom, not something forward/backward implication ever derives, so
// excite backward-justifies its real fanin once up front. BRANCH has
// no gate logic of its own, so its stem is seeded directly (spec's
// SUPPLEMENTED branch special-casing); NOT inverts; AND/NAND/OR/NOR
// either force every fanin to the non-controlling value or force one
// fanin to the controlling value — a controlling input always
// dominates regardless of the rest, so no search is needed even when
// more than one fanin could have supplied it. XOR fault sites are
// left unconstrained, the same known gap as backwardXOR's
// multi-unknown case.
//
// Errors
//
//   - ErrCircuitNil, ErrNotLevelized, ErrUnknownFaultSite.
//   - ErrUntestable: every decision branch was exhausted.
//   - ErrTimeout: WithContext's deadline elapsed or was cancelled.
package dalg
