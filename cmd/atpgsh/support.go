package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/SrikanthGadde/ee658/engine"
	"github.com/SrikanthGadde/ee658/logic"
)

// newEngine builds an Engine from the --config flag (or defaults) and
// loads --netlist, the one I/O boundary every subcommand shares.
func newEngine() (*engine.Engine, error) {
	cfg := engine.DefaultConfig()
	if configPath != "" {
		loaded, err := engine.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if netlistPath == "" {
		return nil, fmt.Errorf("--netlist is required")
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()
	e := engine.New(cfg, log)
	if err := e.Read(netlistPath); err != nil {
		return nil, err
	}
	return e, nil
}

// outputWriter opens args[0] for writing if present, else returns
// stdout; the returned close func is always safe to defer.
func outputWriter(args []string) (io.Writer, func() error, error) {
	if len(args) == 0 {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// printAssignment prints a PODEM/D-alg primary input assignment, one
// "<external-id>=<value>" line per constrained PI, sorted by id.
func printAssignment(w io.Writer, e *engine.Engine, pis map[int]logic.Value) {
	ids := make([]int, 0, len(pis))
	byID := make(map[int]logic.Value, len(pis))
	for idx, v := range pis {
		id := e.ExternalID(idx)
		ids = append(ids, id)
		byID[id] = v
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "%d=%s\n", id, byID[id])
	}
}
