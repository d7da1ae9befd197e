// Package simulate provides tunable options and error definitions for
// event-driven three-valued simulation over a circuit.Circuit.
package simulate

import (
	"context"
	"errors"

	"github.com/SrikanthGadde/ee658/logic"
)

// Sentinel errors for Simulate.
var (
	// ErrCircuitNil is returned if a nil *circuit.Circuit is passed.
	ErrCircuitNil = errors.New("simulate: circuit is nil")

	// ErrNotLevelized is returned if the circuit has not been
	// levelized yet (OrderError per spec §7).
	ErrNotLevelized = errors.New("simulate: circuit is not levelized")

	// ErrPatternLength is returned when the PI assignment map's size
	// does not match the circuit's declared PI count.
	ErrPatternLength = errors.New("simulate: pattern length does not match PI count")
)

// Option configures Simulate behavior via functional arguments.
type Option func(*options)

type options struct {
	ctx        context.Context
	onEvaluate func(nodeIndex int)
}

func defaultOptions() options {
	return options{
		ctx:        context.Background(),
		onEvaluate: func(int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnEvaluate registers a callback invoked each time a node is
// popped from the work queue and re-evaluated, useful for
// instrumentation (e.g. counting gate evaluations).
func WithOnEvaluate(fn func(nodeIndex int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onEvaluate = fn
		}
	}
}

// Result holds the outcome of one Simulate call: the full per-node
// value vector (indexed by circuit.Node.Index) and the subset of
// values at primary outputs.
type Result struct {
	Values []logic.Value
	PO     map[int]logic.Value
}
