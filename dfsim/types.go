// Package dfsim implements Deductive Fault Simulation (spec §4.4): for
// a single pattern, it computes the fault set F(v) at every node in one
// forward pass, where F(v) is the set of faults whose presence would
// flip v's value under that pattern.
package dfsim

import "errors"

// Sentinel errors.
var (
	// ErrCircuitNil is returned if a nil *circuit.Circuit is passed.
	ErrCircuitNil = errors.New("dfsim: circuit is nil")

	// ErrNotLevelized is returned if the circuit has not been
	// levelized yet.
	ErrNotLevelized = errors.New("dfsim: circuit is not levelized")

	// ErrPatternLength is returned when a pattern's PI assignment does
	// not cover every primary input.
	ErrPatternLength = errors.New("dfsim: pattern length does not match PI count")
)

// Fault is a single stuck-at fault, named by dense circuit index and
// stuck value (0 or 1).
type Fault struct {
	NodeIndex int
	Stuck     int
}

// FaultSet is the set of faults alive at some node under some pattern.
type FaultSet map[Fault]struct{}

// Pattern is one row of PI bit assignments, indexed by
// circuit.Circuit.PIs position.
type Pattern []int
