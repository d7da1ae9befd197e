// Package simulate implements the event-driven three-valued simulator
// of spec §4.2: given new PI assignments and the prior node values, it
// propagates changes through a level-ordered work queue, recomputing
// each popped node's value from its fanins and enqueuing its fanouts
// whenever that value changes.
//
// Determinism: the result is level-order independent — it is the fixed
// point of the combinational function under the given PIs, regardless
// of pop order (spec §8's "universal invariant"). Popping the
// lowest-level ready index first would only minimize re-work; this
// implementation seeds the queue from the PI assignment map (in map
// iteration order) and uses a plain FIFO thereafter.
package simulate

import (
	"fmt"

	"github.com/SrikanthGadde/ee658/circuit"
	"github.com/SrikanthGadde/ee658/logic"
)

// Simulate evaluates c under the PI assignment pis (node index -> new
// value), starting from prior (the previous call's full value vector,
// or nil on the first pattern — all PIs are then treated as changed).
// It returns a fresh Result with every node's new value and the PO
// subset. The circuit must be levelized; prior, if non-nil, must have
// length c.NumNodes().
func Simulate(c *circuit.Circuit, pis map[int]logic.Value, prior []logic.Value, opts ...Option) (*Result, error) {
	if c == nil {
		return nil, ErrCircuitNil
	}
	if !c.Levelized() {
		return nil, ErrNotLevelized
	}
	if len(pis) != len(c.PIs) {
		return nil, fmt.Errorf("%w: got %d assignments, want %d", ErrPatternLength, len(pis), len(c.PIs))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := c.NumNodes()
	values := make([]logic.Value, n)
	if prior != nil {
		copy(values, prior)
	} else {
		for i := range values {
			values[i] = logic.X
		}
	}

	inQueue := make([]bool, n)
	queue := make([]int, 0, n)
	enqueue := func(idx int) {
		if !inQueue[idx] {
			inQueue[idx] = true
			queue = append(queue, idx)
		}
	}

	for idx, v := range pis {
		if values[idx] != v || prior == nil {
			values[idx] = v
			for _, fo := range c.Nodes[idx].Fanout {
				enqueue(fo)
			}
		}
	}

	poValues := make(map[int]logic.Value, len(c.POs))

	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		idx := queue[0]
		queue = queue[1:]
		inQueue[idx] = false

		o.onEvaluate(idx)

		node := c.Nodes[idx]
		inputs := make([]logic.Value, len(node.Fanin))
		for i, fi := range node.Fanin {
			inputs[i] = values[fi]
		}
		newVal := logic.Eval(node.Kind, inputs)

		if newVal != values[idx] {
			values[idx] = newVal
			for _, fo := range node.Fanout {
				enqueue(fo)
			}
		}
		if node.IsOutput {
			poValues[idx] = values[idx]
		}
	}

	// Every PO reflects its current (possibly unchanged-this-call)
	// value, not only those re-evaluated this pass.
	for _, poIdx := range c.POs {
		if _, ok := poValues[poIdx]; !ok {
			poValues[poIdx] = values[poIdx]
		}
	}

	return &Result{Values: values, PO: poValues}, nil
}

// SimulateFresh runs Simulate with no prior state (every PI treated as
// newly assigned, every non-PI node starting at X), producing a
// complete well-formed result regardless of any earlier call — per
// spec §9's resolution of the original's inconsistent header-row
// handling, every Simulate/SimulateFresh invocation is self-contained.
func SimulateFresh(c *circuit.Circuit, pis map[int]logic.Value, opts ...Option) (*Result, error) {
	return Simulate(c, pis, nil, opts...)
}
