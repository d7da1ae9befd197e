// Package dfsim implements deductive fault simulation per spec §4.4:
// one forward pass per pattern computes, at every node, the exact set
// of faults whose presence would flip that node's value, given the
// fault sets already computed for its fanin.
//
// Propagation rules
//
//   - BRANCH / NOT: F(v) = F(input) (value inverts or copies, but any
//     upstream fault that flips the input flips v identically).
//   - XOR: F(v) = symmetric difference across all input fault sets —
//     a fault survives iff it appears in an odd number of inputs,
//     since an odd number of flipped XOR inputs flips the output and
//     an even number cancels.
//   - AND/NAND/OR/NOR: with two or more controlling inputs, only the
//     faults common to every controlling input survive, minus any
//     fault also present at a non-controlling input; with exactly one
//     controlling input its faults survive minus those shared with a
//     non-controlling input; with no controlling input present, every
//     input's fault set propagates.
//
// Every node's own stuck-at-opposite-of-its-value fault is added at
// that node (the "local" fault).
//
// Unlike pfs, dfsim operates on one pattern and the full fault
// universe at once rather than chunking a fixed fault list across
// patterns; the two are independent, cross-checked implementations of
// the same detection semantics (spec §8).
package dfsim
