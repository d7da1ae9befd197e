package pfs

import (
	"fmt"

	"github.com/SrikanthGadde/ee658/circuit"
)

// DetectedSet is the set of faults found detected by at least one
// pattern at at least one primary output.
type DetectedSet map[Fault]struct{}

const allOnesWord = Word(^uint64(0))

// Simulate runs every pattern against the given fault list, chunking
// faults into groups of ChunkFaults per spec §4.3, and returns the set
// of faults detected by at least one pattern.
func Simulate(c *circuit.Circuit, patterns []Pattern, faults []Fault) (DetectedSet, error) {
	if c == nil {
		return nil, ErrCircuitNil
	}
	if !c.Levelized() {
		return nil, ErrNotLevelized
	}

	detected := make(DetectedSet)
	values := make([]Word, c.NumNodes())

	for _, pat := range patterns {
		if len(pat) != len(c.PIs) {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrPatternLength, len(pat), len(c.PIs))
		}
		if err := simulatePattern(c, pat, faults, values, detected); err != nil {
			return nil, err
		}
	}
	return detected, nil
}

func simulatePattern(c *circuit.Circuit, pat Pattern, faults []Fault, values []Word, detected DetectedSet) error {
	for start := 0; start < len(faults); start += ChunkFaults {
		end := start + ChunkFaults
		if end > len(faults) {
			end = len(faults)
		}
		chunk := faults[start:end]

		var bitFault [WordWidth]*Fault
		for b := range chunk {
			f := chunk[b]
			bitFault[b+1] = &f
		}

		assignPIs(c, pat, values)
		evaluateChunk(c, values, bitFault)
		recordDetections(c, values, bitFault, detected)
	}
	return nil
}

func assignPIs(c *circuit.Circuit, pat Pattern, values []Word) {
	for i, piIdx := range c.PIs {
		if pat[i] != 0 {
			values[piIdx] = allOnesWord
		} else {
			values[piIdx] = 0
		}
	}
}

func evaluateChunk(c *circuit.Circuit, values []Word, bitFault [WordWidth]*Fault) {
	for _, idx := range c.Order {
		node := c.Nodes[idx]
		if node.Kind != circuit.KindPI {
			values[idx] = evalWord(node.Kind, node.Fanin, values)
		}
		for b := 1; b < WordWidth; b++ {
			f := bitFault[b]
			if f != nil && f.NodeIndex == idx {
				values[idx] = forceBit(values[idx], b, f.Stuck)
			}
		}
	}
}

func recordDetections(c *circuit.Circuit, values []Word, bitFault [WordWidth]*Fault, detected DetectedSet) {
	for _, poIdx := range c.POs {
		word := values[poIdx]
		ref := word & 1
		for b := 1; b < WordWidth; b++ {
			f := bitFault[b]
			if f == nil {
				continue
			}
			bit := (word >> uint(b)) & 1
			if bit != ref {
				detected[*f] = struct{}{}
			}
		}
	}
}

// evalWord computes a gate's packed bitwise value from its fanin's
// already-computed packed values, implementing spec §4.3 step 3's
// bitwise table: BRANCH copies, AND/OR/XOR combine bitwise, NAND/NOR
// complement the AND/OR result, NOT complements its single input.
func evalWord(kind circuit.Kind, fanin []int, values []Word) Word {
	switch kind {
	case circuit.KindBranch:
		return values[fanin[0]]
	case circuit.KindNOT:
		return ^values[fanin[0]]
	case circuit.KindAND:
		w := allOnesWord
		for _, fi := range fanin {
			w &= values[fi]
		}
		return w
	case circuit.KindNAND:
		w := allOnesWord
		for _, fi := range fanin {
			w &= values[fi]
		}
		return ^w
	case circuit.KindOR:
		var w Word
		for _, fi := range fanin {
			w |= values[fi]
		}
		return w
	case circuit.KindNOR:
		var w Word
		for _, fi := range fanin {
			w |= values[fi]
		}
		return ^w
	case circuit.KindXOR:
		var w Word
		for _, fi := range fanin {
			w ^= values[fi]
		}
		return w
	default:
		return 0
	}
}

// forceBit sets bit b of w to val (0 or 1), leaving every other bit
// unchanged — the post-evaluation fault injection of spec §4.3 step 4.
func forceBit(w Word, b int, val int) Word {
	mask := Word(1) << uint(b)
	if val != 0 {
		return w | mask
	}
	return w &^ mask
}
