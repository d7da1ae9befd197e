// Package engine is the ATPG driver: the single stateful orchestrator
// that owns a loaded circuit.Circuit and exposes one method per
// command in spec §6 (READ, PC, LEV, LOGICSIM, RFL, PFS, DFS, RTG,
// PODEM, DALG, ATPG_DET, ATPG), translating between the file-shaped
// I/O of netlist and the pure in-memory algorithms of circuit, logic,
// simulate, dfsim, pfs, podem, and dalg.
//
// Every method reads like the original reader's REPL command dispatch
// (cread/lev/logicsim/...). All but Read, which opens the netlist path
// it is given, accept io.Reader/io.Writer rather than file paths —
// cmd/atpgsh owns the filename conventions
// (<circuit>_<ALG>_ATPG_patterns.txt and friends) and opens the
// concrete files, keeping this package testable without touching a
// filesystem.
//
// Configuration is layered: NewConfig's functional options for
// programmatic callers, LoadConfig's YAML for the CLI. Errors
// returned by any method may be passed through ClassifyError to
// recover the spec §7 taxonomy a caller needs for exit-code or retry
// decisions.
package engine
