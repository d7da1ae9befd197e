package podem

import (
	"github.com/SrikanthGadde/ee658/circuit"
	"github.com/SrikanthGadde/ee658/logic"
)

// Generate searches for a test pattern detecting fault on c, per spec
// §4.6. It returns ErrUntestable if the search space is exhausted, or
// ErrTimeout if opts' context is cancelled first.
func Generate(c *circuit.Circuit, fault Fault, opts ...Option) (*Result, error) {
	if c == nil {
		return nil, ErrCircuitNil
	}
	if !c.Levelized() {
		return nil, ErrNotLevelized
	}
	if fault.NodeIndex < 0 || fault.NodeIndex >= c.NumNodes() {
		return nil, ErrUnknownFaultSite
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	activation := logic.One
	if fault.Stuck == 1 {
		activation = logic.Zero
	}

	w := &walker{
		c:          c,
		opts:       o,
		fault:      fault,
		activation: activation,
		values:     make([]logic.Value, c.NumNodes()),
		assigned:   make(map[int]logic.Value),
	}
	for i := range w.values {
		w.values[i] = logic.X
	}

	ok, err := w.recurse()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUntestable
	}

	return &Result{PIs: w.assigned, Values: append([]logic.Value(nil), w.values...)}, nil
}

// walker holds one PODEM search's mutable state, mirroring the
// teacher's per-traversal walker struct idiom: construction isolates
// all working state from the algorithm's recursive control flow.
type walker struct {
	c          *circuit.Circuit
	opts       options
	fault      Fault
	activation logic.Value
	values     []logic.Value
	assigned   map[int]logic.Value
}

func (w *walker) recurse() (bool, error) {
	select {
	case <-w.opts.ctx.Done():
		return false, ErrTimeout
	default:
	}

	for _, idx := range w.c.POs {
		if logic.IsDisagreement(w.values[idx]) {
			return true, nil
		}
	}

	objIdx, objVal, ok := w.getObjective()
	if !ok {
		return false, nil
	}

	piIdx, piVal := w.backtrace(objIdx, objVal)

	w.assignPI(piIdx, piVal)
	w.simulateFull()
	if res, err := w.recurse(); err != nil || res {
		return res, err
	}

	w.assignPI(piIdx, logic.Not(piVal))
	w.simulateFull()
	if res, err := w.recurse(); err != nil || res {
		return res, err
	}

	w.unassignPI(piIdx)
	w.simulateFull()
	return false, nil
}

// getObjective implements spec §4.6's rule: if the fault site is still
// unassigned, the objective is exciting it; if it already settled to a
// plain 0/1 without exciting the fault, the search has failed; if it
// holds D/D̄, the objective comes from the first gate on the current
// D-frontier that still has an unassigned (X) input.
func (w *walker) getObjective() (int, logic.Value, bool) {
	fv := w.values[w.fault.NodeIndex]
	if fv == logic.X {
		return w.fault.NodeIndex, w.activation, true
	}
	if fv == logic.Zero || fv == logic.One {
		return 0, logic.X, false
	}

	frontier := w.dFrontier()
	if len(frontier) == 0 {
		return 0, logic.X, false
	}
	d := w.c.Nodes[frontier[0]]

	var inIdx int = -1
	for _, fi := range d.Fanin {
		if w.values[fi] == logic.X {
			inIdx = fi
			break
		}
	}
	if inIdx < 0 {
		return 0, logic.X, false
	}

	var v logic.Value
	switch d.Kind {
	case circuit.KindAND, circuit.KindNAND:
		v = logic.One
	case circuit.KindOR, circuit.KindNOR:
		v = logic.Zero
	case circuit.KindXOR:
		v = logic.Zero
	default:
		v = logic.X
	}
	return inIdx, v, true
}

// dFrontier lists every node whose value is X but has at least one
// fanin holding D or D̄ — the gates through which the fault's effect
// might still propagate.
func (w *walker) dFrontier() []int {
	var out []int
	for _, idx := range w.c.Order {
		node := w.c.Nodes[idx]
		if w.values[idx] != logic.X {
			continue
		}
		for _, fi := range node.Fanin {
			if logic.IsDisagreement(w.values[fi]) {
				out = append(out, idx)
				break
			}
		}
	}
	return out
}

// backtrace walks from the objective gate toward a primary input,
// always descending into the first fanin still holding X, counting
// inversions along the path (NOT/NAND/NOR) to determine whether the
// objective value must flip before reaching the chosen PI.
func (w *walker) backtrace(objIdx int, objVal logic.Value) (int, logic.Value) {
	idx := objIdx
	inversions := 0
	if inverts(w.c.Nodes[idx].Kind) {
		inversions++
	}

	for w.c.Nodes[idx].Kind != circuit.KindPI {
		node := w.c.Nodes[idx]
		next := idx
		for _, fi := range node.Fanin {
			if w.values[fi] == logic.X {
				next = fi
				break
			}
		}
		idx = next
		if inverts(w.c.Nodes[idx].Kind) {
			inversions++
		}
	}

	if inversions%2 == 1 {
		return idx, logic.Not(objVal)
	}
	return idx, objVal
}

func inverts(k circuit.Kind) bool {
	return k == circuit.KindNOT || k == circuit.KindNAND || k == circuit.KindNOR
}

func (w *walker) assignPI(idx int, v logic.Value) {
	w.assigned[idx] = v
	w.values[idx] = logic.SetValueCheckFault(faultStuckAt(w, idx), v)
}

func (w *walker) unassignPI(idx int) {
	delete(w.assigned, idx)
	w.values[idx] = logic.X
}

// faultStuckAt returns the stuck value that applies at idx (only
// meaningful for the single designated fault site; every other node
// passes straight through since computed == returned for any non-match
// case in SetValueCheckFault).
func faultStuckAt(w *walker, idx int) int {
	if idx == w.fault.NodeIndex {
		return w.fault.Stuck
	}
	return -1
}

// simulateFull resets every non-PI node to X and recomputes the whole
// circuit in levelized order, applying the fault's stuck-at injection
// at its site — the full-circuit resimulation spec §4.6 performs after
// every primary input assignment, since PODEM backtracks by flipping a
// single PI rather than tracking incremental implications.
func (w *walker) simulateFull() {
	for _, idx := range w.c.Order {
		if w.c.Nodes[idx].Kind == circuit.KindPI {
			continue
		}
		w.values[idx] = logic.X
	}

	for _, idx := range w.c.Order {
		node := w.c.Nodes[idx]
		if node.Kind == circuit.KindPI {
			continue
		}
		ins := make([]logic.Value, len(node.Fanin))
		for i, fi := range node.Fanin {
			ins[i] = w.values[fi]
		}
		computed := logic.Eval(node.Kind, ins)
		w.values[idx] = logic.SetValueCheckFault(faultStuckAt(w, idx), computed)
	}
}
