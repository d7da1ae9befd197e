// Package logic documents the algebra tables used throughout this
// module.
//
// Three-valued algebra {0,1,X}: X is absorbing under disagreement;
// {0,1} behave conventionally. Used by the event-driven simulator.
//
// Five-valued algebra {0,1,X,D,D̄}: D means "1 in the fault-free
// circuit, 0 in the faulty circuit"; D̄ is its complement. Used by
// PODEM and the D-algorithm to track fault propagation directly in the
// simulated values, without a separate fault-free/faulty pair of
// circuits.
//
// Eval is the single exhaustive per-kind table (spec §9 Design Note);
// callers restricting inputs to {0,1,X} get three-valued semantics for
// free, since D/D̄ simply never appear.
package logic
