// Package netlist is the module's sole boundary with external text
// formats.
//
// Self-format netlist
//
// One record per line, whitespace-separated integers: role, external
// id, then a role-specific shape. FB (fanout branch) hardcodes
// fanout=fanin=1 and reads only a kind column plus its single fanin
// id; PI/PO/GATE all read a kind/fanout/fanin triple followed by
// exactly that many fanin ids. Every id is added to the circuit arena
// before any fanin is wired, so a record may reference a fanin
// declared later in the file.
//
// Pattern and fault files
//
// Pattern files are CSV: a header row of PI ids in the circuit's own
// PI-declaration order, then one 0/1 row per test vector. Fault files
// are "<id>@<stuck>" lines. Output of either round-trips through the
// corresponding reader; output fault files are additionally sorted by
// (id, stuck) for reproducibility.
//
// Errors
//
// Every error here is a FormatError or IoError per spec §7; nothing
// in this package classifies or logs — that is engine's job.
package netlist
