// Package circuit provides the arena-of-nodes gate graph (Circuit,
// Node) and its levelizer, shared by every simulator and test
// generator in this module.
//
// What
//
//   - Circuit: an arena of Node records addressed by dense integer
//     index, with symmetric Fanin/Fanout adjacency.
//   - Node: id, index, gate Kind, fanin/fanout indices, Level.
//   - Levelize: iterative fixed-point leveler producing a stable
//     evaluation Order (spec §4.1).
//
// Why
//
//   - Every other package (logic, simulate, pfs, dfsim, podem, dalg,
//     engine) operates over this single shared structure, referencing
//     nodes exclusively by Index — never by pointer — so the graph can
//     be cloned, cleared, and reused across commands without aliasing.
//
// Invariants (spec §3)
//
//   - Nodes[i].Index == i.
//   - Every id in a node's Fanin references a node with that node's
//     index present in the referenced node's Fanout (symmetric
//     adjacency), established by Wire.
//   - After Levelize, every non-PI node's Level strictly exceeds every
//     fanin's Level; PI nodes have Level 0.
//
// Errors
//
//   - ErrDuplicateID, ErrUnknownID: construction-time misuse.
//   - ErrUnknownKind: fatal during netlist parsing (spec §4.9).
//   - ErrMalformedCircuit: Levelize made no progress on a full scan.
package circuit
