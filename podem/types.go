// Package podem implements the PODEM test generation algorithm of
// spec §4.6: given a single stuck-at fault, it searches primary input
// space by objective selection, backtrace, and implication, backing
// off the most recent primary input assignment on failure (single-PI
// backtracking, not full chronological backtracking as in dalg).
package podem

import (
	"context"
	"errors"

	"github.com/SrikanthGadde/ee658/logic"
)

// Sentinel errors.
var (
	// ErrCircuitNil is returned if a nil *circuit.Circuit is passed.
	ErrCircuitNil = errors.New("podem: circuit is nil")

	// ErrNotLevelized is returned if the circuit has not been
	// levelized yet.
	ErrNotLevelized = errors.New("podem: circuit is not levelized")

	// ErrUnknownFaultSite is returned when the fault names a node
	// index outside the circuit.
	ErrUnknownFaultSite = errors.New("podem: unknown fault site")

	// ErrUntestable is returned when the search space is exhausted
	// without finding a test: the fault has no activating/propagating
	// assignment.
	ErrUntestable = errors.New("podem: fault is untestable")

	// ErrTimeout is returned when the context passed via WithContext
	// is cancelled or its deadline elapses before a test is found.
	ErrTimeout = errors.New("podem: search exceeded time budget")
)

// Fault is a single stuck-at fault, named by dense circuit index and
// stuck value (0 or 1).
type Fault struct {
	NodeIndex int
	Stuck     int
}

// Option configures a Generate call.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext bounds the search by ctx: cancellation or deadline
// elapsing aborts the recursion and Generate returns ErrTimeout.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// Result is a found test: the primary input assignment that activates
// and propagates the target fault, plus the full node-value vector it
// produced (PIs that backtrace never constrained are absent from PIs
// and hold logic.X in Values).
type Result struct {
	// PIs holds the generated primary input assignment, keyed by
	// circuit index. A PI absent from this map was never constrained
	// (don't-care) and may be set to either value.
	PIs map[int]logic.Value

	// Values is the full five-valued node vector the search settled
	// on when the fault's effect reached a primary output.
	Values []logic.Value
}
