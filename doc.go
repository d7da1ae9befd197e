// Package ee658 is an Automatic Test Pattern Generation (ATPG) and
// fault-simulation engine for combinational gate-level netlists.
//
// What is this?
//
//	A levelized gate-graph engine that brings together:
//
//	  - Circuit model: arena-of-nodes netlist with fanin/fanout adjacency
//	  - Simulation: three-valued event-driven logic simulation
//	  - Fault simulation: bit-parallel (PFS) and set-algebraic (DFS)
//	  - Test generation: PODEM and the D-algorithm
//	  - Driver: checkpoint-theorem fault lists, hybrid random/deterministic ATPG
//
// Under the hood, everything is organized under subpackages:
//
//	circuit/  — Node/Circuit arena, fanin/fanout adjacency, levelization
//	logic/    — three- and five-valued algebra tables
//	simulate/ — event-driven three-valued simulator
//	pfs/      — bit-packed parallel fault simulator
//	dfsim/    — deductive (set-algebraic) fault simulator
//	podem/    — PODEM test generator
//	dalg/     — D-algorithm test generator
//	engine/   — ATPG driver: fault-list synthesis, coverage, orchestration
//	netlist/  — ISCAS "self" netlist, pattern, fault, and report file I/O
//	cmd/atpgsh — thin non-interactive CLI over engine.Engine
//
// Quick example (ISCAS c17, PIs 1 2 3 6 7, POs 22 23, all gates NAND):
//
//	10 = NAND(1, 3)     16 = NAND(2, 11)    22 = NAND(10, 16)
//	11 = NAND(3, 6)     19 = NAND(11, 7)    23 = NAND(16, 19)
//
// See SPEC_FULL.md and DESIGN.md for the full specification and the
// grounding ledger.
package ee658
