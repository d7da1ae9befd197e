// Package simulate provides event-driven three-valued logic simulation
// over a circuit.Circuit.
//
// Usage
//
//	result, err := simulate.SimulateFresh(c, map[int]logic.Value{
//	    piIdx1: logic.One, piIdx2: logic.Zero,
//	})
//
// Complexity: O(V + E) amortized per call for a circuit whose PI
// assignment differs from the prior call in O(1) bits, since only the
// affected fanout cone is re-evaluated.
//
// Errors
//
//   - ErrCircuitNil, ErrNotLevelized, ErrPatternLength.
//   - context.Canceled / context.DeadlineExceeded via WithContext.
package simulate
