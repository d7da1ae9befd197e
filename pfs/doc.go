// Package pfs implements bit-parallel stuck-at fault simulation: for
// every pattern, faults are processed ChunkFaults at a time, each
// chunk's W-1 faults sharing a single machine-word evaluation pass with
// bit 0 held as the fault-free reference.
//
// Correctness (spec §8): a fault is marked detected iff there exists a
// pattern and a primary output where its faulty projection differs
// from the fault-free projection (bit b vs. bit 0). Word width
// (WordWidth) only changes chunking granularity, never the result.
//
// Errors
//
//   - ErrCircuitNil, ErrNotLevelized, ErrPatternLength.
package pfs
