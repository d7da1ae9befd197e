// Package dalg implements the D-algorithm test generator of spec
// §4.7: a decision-level search that excites a stuck-at fault and
// propagates its effect to a primary output via alternating forward
// and backward constraint propagation (imply-and-check), backtracking
// chronologically across every decision level on failure — unlike
// podem's single-PI flip-flop backtrack.
package dalg

import (
	"context"
	"errors"

	"github.com/SrikanthGadde/ee658/logic"
)

// Sentinel errors.
var (
	// ErrCircuitNil is returned if a nil *circuit.Circuit is passed.
	ErrCircuitNil = errors.New("dalg: circuit is nil")

	// ErrNotLevelized is returned if the circuit has not been
	// levelized yet.
	ErrNotLevelized = errors.New("dalg: circuit is not levelized")

	// ErrUnknownFaultSite is returned when the fault names a node
	// index outside the circuit.
	ErrUnknownFaultSite = errors.New("dalg: unknown fault site")

	// ErrUntestable is returned when the decision search is exhausted
	// without finding a test.
	ErrUntestable = errors.New("dalg: fault is untestable")

	// ErrTimeout is returned when the context passed via WithContext
	// is cancelled or its deadline elapses before a test is found.
	ErrTimeout = errors.New("dalg: search exceeded time budget")
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

// Result is a found test: the primary input assignment that excites
// and propagates the target fault to a primary output, plus the full
// node-value vector the search settled on. A PI absent from PIs was
// never constrained (don't-care).
type Result struct {
	PIs    map[int]logic.Value
	Values []logic.Value
}
