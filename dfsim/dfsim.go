package dfsim

import (
	"fmt"

	"github.com/SrikanthGadde/ee658/circuit"
	"github.com/SrikanthGadde/ee658/logic"
)

// Simulate runs deductive fault simulation for a single pattern and
// returns the fault set detected at each primary output (keyed by
// circuit index), per spec §4.4.
func Simulate(c *circuit.Circuit, pis map[int]logic.Value) (map[int]FaultSet, error) {
	if c == nil {
		return nil, ErrCircuitNil
	}
	if !c.Levelized() {
		return nil, ErrNotLevelized
	}
	if len(pis) != len(c.PIs) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPatternLength, len(pis), len(c.PIs))
	}

	values := make([]logic.Value, c.NumNodes())
	faults := make([]FaultSet, c.NumNodes())

	for _, piIdx := range c.PIs {
		v, ok := pis[piIdx]
		if !ok {
			return nil, fmt.Errorf("%w: missing assignment for PI index %d", ErrPatternLength, piIdx)
		}
		values[piIdx] = v
		faults[piIdx] = localFault(piIdx, v)
	}

	for _, idx := range c.Order {
		node := c.Nodes[idx]
		if node.Kind == circuit.KindPI {
			continue
		}
		ins := make([]logic.Value, len(node.Fanin))
		for i, fi := range node.Fanin {
			ins[i] = values[fi]
		}
		val := logic.Eval(node.Kind, ins)
		values[idx] = val
		faults[idx] = propagate(node, val, values, faults)
	}

	out := make(map[int]FaultSet, len(c.POs))
	for _, poIdx := range c.POs {
		out[poIdx] = faults[poIdx]
	}
	return out, nil
}

// localFault is the single fault at a line's own stuck-at-opposite
// value — the fault that would flip the line by itself, independent of
// anything upstream.
func localFault(idx int, val logic.Value) FaultSet {
	stuck := 1
	if val == logic.One {
		stuck = 0
	}
	return FaultSet{Fault{NodeIndex: idx, Stuck: stuck}: struct{}{}}
}

// propagate computes F(v) for a gate node from its fanin fault sets,
// dispatching on gate kind per spec §4.4.
func propagate(node circuit.Node, val logic.Value, values []logic.Value, faults []FaultSet) FaultSet {
	local := localFault(node.Index, val)

	switch node.Kind {
	case circuit.KindBranch, circuit.KindNOT:
		return union(faults[node.Fanin[0]], local)
	case circuit.KindXOR:
		return union(parity(node.Fanin, faults), local)
	default:
		return union(controllingPropagate(node, values, faults), local)
	}
}

// controllingPropagate implements the AND/NAND/OR/NOR rule: faults
// common to every currently-controlling input survive if more than one
// input holds the controlling value; a lone controlling input's unique
// faults survive (masked by any fault shared with a non-controlling
// input); with no controlling input present, every input's faults
// propagate.
func controllingPropagate(node circuit.Node, values []logic.Value, faults []FaultSet) FaultSet {
	cv := logic.FromBit(node.Kind.ControllingValue())

	var controlling, noncontrolling []int
	for _, fi := range node.Fanin {
		if values[fi] == cv {
			controlling = append(controlling, fi)
		} else {
			noncontrolling = append(noncontrolling, fi)
		}
	}

	if len(controlling) == 0 {
		var acc FaultSet
		for _, fi := range node.Fanin {
			acc = union(acc, faults[fi])
		}
		return acc
	}
	if len(controlling) == 1 {
		result := cloneSet(faults[controlling[0]])
		for _, fi := range noncontrolling {
			for f := range faults[fi] {
				delete(result, f)
			}
		}
		return result
	}
	result := intersection(controlling, faults)
	for _, fi := range noncontrolling {
		for f := range faults[fi] {
			delete(result, f)
		}
	}
	return result
}

func union(sets ...FaultSet) FaultSet {
	out := make(FaultSet)
	for _, s := range sets {
		for f := range s {
			out[f] = struct{}{}
		}
	}
	return out
}

func cloneSet(s FaultSet) FaultSet {
	out := make(FaultSet, len(s))
	for f := range s {
		out[f] = struct{}{}
	}
	return out
}

func intersection(indices []int, faults []FaultSet) FaultSet {
	if len(indices) == 0 {
		return make(FaultSet)
	}
	out := cloneSet(faults[indices[0]])
	for _, idx := range indices[1:] {
		for f := range out {
			if _, ok := faults[idx][f]; !ok {
				delete(out, f)
			}
		}
	}
	return out
}

// parity computes the symmetric difference across every fanin's fault
// set: a fault survives an XOR iff it appears in an odd number of
// input sets, since flipping an odd number of XOR inputs flips the
// output and flipping an even number cancels out.
func parity(fanin []int, faults []FaultSet) FaultSet {
	count := make(map[Fault]int)
	for _, fi := range fanin {
		for f := range faults[fi] {
			count[f]++
		}
	}
	out := make(FaultSet)
	for f, n := range count {
		if n%2 == 1 {
			out[f] = struct{}{}
		}
	}
	return out
}
