// Package pfs implements the bit-packed Parallel Fault Simulator of
// spec §4.3: each gate evaluation packs W-1 faults plus one fault-free
// reference into a single machine word, using bitwise AND/OR/XOR/NOT.
package pfs

import "errors"

// Word is the packed per-node value: bit b holds the simulated value
// under fault-injection slot b; bit 0 is always the fault-free
// reference.
type Word = uint64

// WordWidth is the number of bits packed per evaluation (a build
// parameter per spec §4.3/§5; correctness does not depend on its
// value, only chunking granularity does).
const WordWidth = 64

// ChunkFaults is the number of faults injected per chunk: WordWidth-1,
// since bit 0 is reserved for the fault-free reference.
const ChunkFaults = WordWidth - 1

// Sentinel errors.
var (
	// ErrCircuitNil is returned if a nil *circuit.Circuit is passed.
	ErrCircuitNil = errors.New("pfs: circuit is nil")

	// ErrNotLevelized is returned if the circuit has not been
	// levelized yet.
	ErrNotLevelized = errors.New("pfs: circuit is not levelized")

	// ErrPatternLength is returned when a pattern row's length does
	// not match the circuit's declared PI count.
	ErrPatternLength = errors.New("pfs: pattern length does not match PI count")
)

// Fault is a single stuck-at fault: NodeIndex is the dense circuit
// index (not the external netlist id), Stuck is 0 or 1.
type Fault struct {
	NodeIndex int
	Stuck     int
}

// Pattern is one row of PI assignments, indexed by circuit.Circuit.PIs
// position (Pattern[i] is the bit for c.PIs[i]).
type Pattern []int
