package dalg

import (
	"github.com/SrikanthGadde/ee658/circuit"
	"github.com/SrikanthGadde/ee658/logic"
)

// Generate searches for a test pattern detecting fault on c via the
// D-algorithm, per spec §4.7.
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

	w := &walker{
		c:      c,
		opts:   o,
		fault:  fault,
		values: make([]logic.Value, c.NumNodes()),
		level:  make([]int, c.NumNodes()),
	}
	for i := range w.values {
		w.values[i] = logic.X
		w.level[i] = -1
	}

	seed := w.excite()

	ok, err := w.decide(1, seed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUntestable
	}

	pis := make(map[int]logic.Value, len(c.PIs))
	for _, piIdx := range c.PIs {
		if w.values[piIdx] != logic.X {
			pis[piIdx] = w.values[piIdx]
		}
	}
	return &Result{PIs: pis, Values: append([]logic.Value(nil), w.values...)}, nil
}

// walker holds one D-algorithm search's mutable state: the node value
// vector, the decision level each assigned node was set at (-1 if
// unassigned), and the trail of assigned indices used to roll back a
// failed decision branch.
type walker struct {
	c      *circuit.Circuit
	opts   options
	fault  Fault
	values []logic.Value
	level  []int
	trail  []int
}

// excite sets the fault site to D (stuck-at-0) or D̄ (stuck-at-1) at
// decision level 0, then backward-justifies the fault site's own
// fanin toward the activating good value — the site's value is the
// fault's symbolic axiom, not a gate computation, so nothing else
// ever derives what its real inputs must be. BRANCH/NOT resolve in
// one step (spec's SUPPLEMENTED branch case: a branch has no gate
// logic of its own, so its stem is seeded directly, mirroring the
// teacher circuit's DalgCall setup). AND/NAND/OR/NOR resolve fully
// too: when the activating value is the non-controlling output every
// fanin is forced at once, and when it's the controlling output,
// forcing just the first fanin to the controlling value determines
// the gate's output regardless of the rest — no search needed, since
// a controlling input always dominates. XOR has no controlling value
// to reason about and is left unconstrained here, the same known gap
// as backwardXOR's multi-unknown case.
func (w *walker) excite() []int {
	val := logic.D
	if w.fault.Stuck == 1 {
		val = logic.DBar
	}
	w.assign(w.fault.NodeIndex, val, 0)
	seed := []int{w.fault.NodeIndex}

	node := w.c.Nodes[w.fault.NodeIndex]
	activation := w.activation()

	switch node.Kind {
	case circuit.KindBranch:
		w.assign(node.Fanin[0], activation, 0)
		seed = append(seed, node.Fanin[0])
	case circuit.KindNOT:
		w.assign(node.Fanin[0], logic.Not(activation), 0)
		seed = append(seed, node.Fanin[0])
	case circuit.KindXOR, circuit.KindPI:
		// no gate logic to backward-justify; nothing to do.
	default:
		cv := logic.FromBit(node.Kind.ControllingValue())
		nc := logic.Not(cv)
		outIfControlling, outIfNonControlling := cv, nc
		if node.Kind.Inverting() {
			outIfControlling, outIfNonControlling = logic.Not(cv), logic.Not(nc)
		}
		switch activation {
		case outIfNonControlling:
			for _, fi := range node.Fanin {
				w.assign(fi, nc, 0)
				seed = append(seed, fi)
			}
		case outIfControlling:
			w.assign(node.Fanin[0], cv, 0)
			seed = append(seed, node.Fanin[0])
		}
	}
	return seed
}

// activation is the good-circuit value the fault site must settle to
// for the fault to excite: One for stuck-at-0, Zero for stuck-at-1.
func (w *walker) activation() logic.Value {
	if w.fault.Stuck == 0 {
		return logic.One
	}
	return logic.Zero
}

func (w *walker) assign(idx int, v logic.Value, level int) {
	w.values[idx] = v
	w.level[idx] = level
	w.trail = append(w.trail, idx)
}

// rollback undoes every assignment made at or after the trail length
// mark, resetting those nodes to X.
func (w *walker) rollback(mark int) {
	for i := len(w.trail) - 1; i >= mark; i-- {
		idx := w.trail[i]
		w.values[idx] = logic.X
		w.level[idx] = -1
	}
	w.trail = w.trail[:mark]
}

// decide runs imply-and-check from seed, then either declares success
// (D/D̄ reached a primary output) or branches: for D-frontier
// propagation it forces every candidate's remaining inputs to
// non-controlling in turn; with no D-frontier, for ambiguous backward
// justification it tries every unassigned input of one such gate at
// both polarities. It fails on an implication conflict, when every
// branch fails, or when there is neither a D-frontier nor a gate left
// to justify. Each branch recurses at level+1 and rolls back fully on
// failure before trying the next, giving true chronological
// backtracking across decision levels.
func (w *walker) decide(level int, seed []int) (bool, error) {
	select {
	case <-w.opts.ctx.Done():
		return false, ErrTimeout
	default:
	}

	mark := len(w.trail)
	if !w.propagate(level, seed) {
		w.rollback(mark)
		return false, nil
	}

	for _, poIdx := range w.c.POs {
		if logic.IsDisagreement(w.values[poIdx]) {
			return true, nil
		}
	}

	if frontier := w.dFrontier(); len(frontier) > 0 {
		for _, gIdx := range frontier {
			branchMark := len(w.trail)
			node := w.c.Nodes[gIdx]
			nc := nonControllingValue(node.Kind)

			var toAssign []int
			conflict := false
			for _, fi := range node.Fanin {
				if w.values[fi] == logic.X {
					w.assign(fi, nc, level)
					toAssign = append(toAssign, fi)
				} else if w.values[fi] != nc && !logic.IsDisagreement(w.values[fi]) {
					conflict = true
				}
			}
			if !conflict {
				if ok, err := w.decide(level+1, toAssign); err != nil {
					return false, err
				} else if ok {
					return true, nil
				}
			}
			w.rollback(branchMark)
		}
		w.rollback(mark)
		return false, nil
	}

	if gIdx, ok := w.pickJustifyGate(); ok {
		node := w.c.Nodes[gIdx]
		cv := logic.FromBit(node.Kind.ControllingValue())
		for _, fi := range node.Fanin {
			if w.values[fi] != logic.X {
				continue
			}
			for _, v := range [2]logic.Value{cv, logic.Not(cv)} {
				branchMark := len(w.trail)
				w.assign(fi, v, level)
				if ok, err := w.decide(level+1, []int{fi}); err != nil {
					return false, err
				} else if ok {
					return true, nil
				}
				w.rollback(branchMark)
			}
		}
		w.rollback(mark)
		return false, nil
	}

	w.rollback(mark)
	return false, nil
}

// propagate runs the worklist implication pass seeded by the just
// assigned nodes, mirroring imply_and_check: each popped node first
// tries backward implication on its own unassigned fanins, then
// forward implication on every fanout, returning false the instant a
// derived value conflicts with one already assigned.
func (w *walker) propagate(level int, seed []int) bool {
	queue := append([]int(nil), seed...)
	queued := make(map[int]bool, len(seed))
	for _, s := range seed {
		queued[s] = true
	}
	enqueue := func(idx int) {
		if !queued[idx] {
			queued[idx] = true
			queue = append(queue, idx)
		}
	}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		queued[idx] = false

		node := w.c.Nodes[idx]
		if node.Kind != circuit.KindPI {
			if !w.backwardImply(node, level, enqueue) {
				return false
			}
		}
		for _, fo := range node.Fanout {
			if !w.forwardImply(fo, level, enqueue) {
				return false
			}
		}
	}
	return true
}

func (w *walker) backwardImply(node circuit.Node, level int, enqueue func(int)) bool {
	v := w.values[node.Index]
	if v != logic.Zero && v != logic.One {
		return true
	}

	switch node.Kind {
	case circuit.KindBranch:
		return w.forceFanin(node.Fanin[0], v, level, enqueue)
	case circuit.KindNOT:
		return w.forceFanin(node.Fanin[0], logic.Not(v), level, enqueue)
	case circuit.KindXOR:
		return w.backwardXOR(node, v, level, enqueue)
	default:
		return w.backwardControlling(node, v, level, enqueue)
	}
}

func (w *walker) forceFanin(fi int, want logic.Value, level int, enqueue func(int)) bool {
	switch w.values[fi] {
	case logic.X:
		w.assign(fi, want, level)
		enqueue(fi)
		return true
	case want:
		return true
	default:
		return false
	}
}

func (w *walker) backwardXOR(node circuit.Node, v logic.Value, level int, enqueue func(int)) bool {
	unknown := -1
	numUnknown := 0
	known := v
	for _, fi := range node.Fanin {
		switch w.values[fi] {
		case logic.X:
			numUnknown++
			unknown = fi
		case logic.D, logic.DBar:
			return false
		default:
			known = xorBit(known, w.values[fi])
		}
	}
	if numUnknown == 1 {
		w.assign(unknown, known, level)
		enqueue(unknown)
	}
	return true
}

func xorBit(a, b logic.Value) logic.Value {
	if a == b {
		return logic.Zero
	}
	return logic.One
}

// backwardControlling implements the AND/NAND/OR/NOR backward
// justification rule: a non-controlling output forces every
// unassigned fanin to the non-controlling value (conflict if any
// fanin is D/D̄ or the wrong constant); a controlling output with no
// already-controlling fanin forces a lone unassigned fanin to the
// controlling value, fails if no fanin can ever reach it, and leaves
// two-or-more-unknown cases for decide's justify branch.
func (w *walker) backwardControlling(node circuit.Node, v logic.Value, level int, enqueue func(int)) bool {
	cv := logic.FromBit(node.Kind.ControllingValue())
	nc := logic.Not(cv)
	inv := node.Kind.Inverting()

	outIfControlling := cv
	outIfNonControlling := nc
	if inv {
		outIfControlling = logic.Not(cv)
		outIfNonControlling = logic.Not(nc)
	}

	switch v {
	case outIfNonControlling:
		for _, fi := range node.Fanin {
			if w.values[fi] == logic.X {
				w.assign(fi, nc, level)
				enqueue(fi)
			} else if w.values[fi] != nc {
				return false
			}
		}
		return true
	case outIfControlling:
		hasControlling, numX, dNum, dBarNum := false, 0, 0, 0
		var onlyX int
		for _, fi := range node.Fanin {
			switch w.values[fi] {
			case cv:
				hasControlling = true
			case logic.X:
				numX++
				onlyX = fi
			case logic.D:
				dNum++
			case logic.DBar:
				dBarNum++
			}
		}
		if hasControlling {
			return true
		}
		switch {
		case numX == 0:
			return dNum > 0 && dBarNum > 0
		case numX == 1:
			w.assign(onlyX, cv, level)
			enqueue(onlyX)
			return true
		default:
			return true // ambiguous: left for decide's justify branch
		}
	default:
		return true
	}
}

// forwardImply derives fo's value from its fanin, X standing in for
// any not-yet-assigned input: logic.Eval already implements every
// gate's controlling/X/D-D̄-masking rule, so this single call covers
// AND/NAND/OR/NOR/XOR/NOT/BRANCH uniformly.
func (w *walker) forwardImply(fo int, level int, enqueue func(int)) bool {
	node := w.c.Nodes[fo]
	ins := make([]logic.Value, len(node.Fanin))
	for i, fi := range node.Fanin {
		ins[i] = w.values[fi]
	}
	computed := logic.Eval(node.Kind, ins)
	if computed == logic.X {
		return true
	}
	if w.values[fo] == logic.X {
		w.assign(fo, computed, level)
		enqueue(fo)
		return true
	}
	return valuesAgree(w.values[fo], computed)
}

// valuesAgree reconciles an already-assigned value against one freshly
// derived from (possibly still-unknown) fanin. A plain computed value
// at a node already carrying D or D̄ — the fault site itself, whose
// value was set by excite rather than derived — must match that
// symbol's good-circuit half; everywhere else equality is exact.
func valuesAgree(existing, computed logic.Value) bool {
	if computed == logic.D || computed == logic.DBar {
		return existing == computed
	}
	switch existing {
	case logic.D:
		return computed == logic.One
	case logic.DBar:
		return computed == logic.Zero
	default:
		return existing == computed
	}
}

// dFrontier lists every node whose value is X but has at least one
// fanin holding D or D̄.
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

// pickJustifyGate finds a controlling gate whose determined output
// requires a controlling fanin that isn't forced yet because two or
// more fanins are still unassigned — the genuine decision point
// backward justification defers to the search rather than resolving
// by implication alone. The fault site's own fanin is never a
// candidate here: excite already resolved it deterministically.
func (w *walker) pickJustifyGate() (gateIdx int, ok bool) {
	for _, idx := range w.c.Order {
		node := w.c.Nodes[idx]
		if node.Kind == circuit.KindPI || node.Kind == circuit.KindBranch ||
			node.Kind == circuit.KindNOT || node.Kind == circuit.KindXOR {
			continue
		}
		v := w.values[idx]
		if v != logic.Zero && v != logic.One {
			continue
		}
		cv := logic.FromBit(node.Kind.ControllingValue())
		outIfControlling := cv
		if node.Kind.Inverting() {
			outIfControlling = logic.Not(cv)
		}
		if v != outIfControlling {
			continue
		}
		hasControlling, numX := false, 0
		for _, fi := range node.Fanin {
			switch w.values[fi] {
			case cv:
				hasControlling = true
			case logic.X:
				numX++
			}
		}
		if !hasControlling && numX >= 2 {
			return idx, true
		}
	}
	return 0, false
}

// nonControllingValue is the input value that lets a gate's output be
// driven purely by its other, already-D/D̄-carrying inputs.
func nonControllingValue(k circuit.Kind) logic.Value {
	return logic.Not(logic.FromBit(k.ControllingValue()))
}
