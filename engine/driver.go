package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/SrikanthGadde/ee658/circuit"
	"github.com/SrikanthGadde/ee658/dfsim"
	"github.com/SrikanthGadde/ee658/logic"
	"github.com/SrikanthGadde/ee658/netlist"
	"github.com/SrikanthGadde/ee658/pfs"
	"github.com/SrikanthGadde/ee658/simulate"
)

// Engine is the ATPG driver: the exclusive owner of the loaded
// circuit's mutable state for the duration of one command (spec §5).
// It is not safe for concurrent use — this engine is single-threaded
// and synchronous by design.
type Engine struct {
	cfg Config
	log zerolog.Logger
	rng *rand.Rand

	c    *circuit.Circuit
	name string
}

// New builds an Engine from cfg, logging structured events to log
// (AMBIENT STACK Logging — library packages below engine stay
// logging-free).
func New(cfg Config, log zerolog.Logger) *Engine {
	return &Engine{
		cfg: cfg,
		log: log,
		rng: rand.New(rand.NewSource(cfg.RandSeed)),
	}
}

// Loaded reports whether a circuit is currently loaded.
func (e *Engine) Loaded() bool { return e.c != nil }

// CircuitName is the name derived from the last successful Read call
// (the netlist file's base name, extension stripped), or "" if none.
func (e *Engine) CircuitName() string { return e.name }

func (e *Engine) requireLoaded() error {
	if e.c == nil {
		return ErrNoCircuitLoaded
	}
	return nil
}

// ensureLevelized levelizes the loaded circuit if it has not been
// already, so every command works regardless of whether LEV was
// invoked explicitly first (the original reader's internal lev()
// self-call before every pfs/dfs/logicsim command, spec §4.1).
func (e *Engine) ensureLevelized() error {
	if e.c.Levelized() {
		return nil
	}
	return e.c.Levelize()
}

// Read loads a netlist from path, replacing any previously loaded
// circuit. On a FormatError the loaded state is cleared per spec §7
// ("state cleared" on format error) rather than left partially built.
func (e *Engine) Read(path string) error {
	f, err := osOpen(path)
	if err != nil {
		e.log.Warn().Err(err).Str("path", path).Msg("read: open failed")
		return fmt.Errorf("%w: %v", netlist.ErrIO, err)
	}
	defer f.Close()

	c, err := netlist.ReadCircuit(f)
	if err != nil {
		e.c = nil
		e.name = ""
		e.log.Warn().Err(err).Str("path", path).Msg("read: parse failed")
		return err
	}

	e.c = c
	e.name = circuitNameFromPath(path)
	e.log.Info().
		Str("circuit", e.name).
		Int("nodes", c.NumNodes()).
		Int("pis", len(c.PIs)).
		Int("pos", len(c.POs)).
		Msg("read: circuit loaded")
	return nil
}

func circuitNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PrintCircuit writes a structural dump of every node — id, kind,
// fanin ids, fanout ids, level — in declaration order (SUPPLEMENTED
// FEATURES item 1).
func (e *Engine) PrintCircuit(w io.Writer) error {
	if err := e.requireLoaded(); err != nil {
		return err
	}
	bw := newLineWriter(w)
	for _, n := range e.c.Nodes {
		bw.line("%d %s fanin=%v fanout=%v level=%d",
			n.ID, n.Kind, idsOf(e.c, n.Fanin), idsOf(e.c, n.Fanout), n.Level)
	}
	return bw.err
}

// ExternalID translates a dense circuit index back to its external
// netlist id, for presentation layers (cmd/atpgsh) that receive
// index-keyed results from Podem/Dalg.
func (e *Engine) ExternalID(idx int) int { return e.c.Nodes[idx].ID }

// WritePatterns writes rows using the loaded circuit's declared PI
// order (the same shape netlist.ReadPatterns accepts).
func (e *Engine) WritePatterns(w io.Writer, rows []netlist.PatternRow) error {
	if err := e.requireLoaded(); err != nil {
		return err
	}
	return netlist.WritePatterns(w, e.c, rows)
}

func idsOf(c *circuit.Circuit, idxs []int) []int {
	ids := make([]int, len(idxs))
	for i, idx := range idxs {
		ids[i] = c.Nodes[idx].ID
	}
	return ids
}

// Lev levelizes the loaded circuit and writes a summary — circuit
// name, PI/PO/node/gate counts, then one "id level" line per node.
func (e *Engine) Lev(w io.Writer) error {
	if err := e.requireLoaded(); err != nil {
		return err
	}
	if err := e.c.Levelize(); err != nil {
		e.log.Error().Err(err).Msg("lev: levelize failed")
		return err
	}

	gates := 0
	for _, n := range e.c.Nodes {
		if n.Kind != circuit.KindPI {
			gates++
		}
	}

	bw := newLineWriter(w)
	bw.line("%s", e.name)
	bw.line("#PI: %d", len(e.c.PIs))
	bw.line("#PO: %d", len(e.c.POs))
	bw.line("Nodes: %d", e.c.NumNodes())
	bw.line("#Gates: %d", gates)
	for _, n := range e.c.Nodes {
		bw.line("%d %d", n.ID, n.Level)
	}
	e.log.Info().Int("maxLevel", e.c.MaxLevel()).Msg("lev: levelized")
	return bw.err
}

// Logicsim replays every row of a pattern file through the
// event-driven three-valued simulator, carrying prior node values row
// to row (spec §4.2), and writes a CSV of PO values: a header of PO
// ids, then one row of values per pattern (all rows, per the
// resolved LOGICSIM Open Question — not len-1).
func (e *Engine) Logicsim(r io.Reader, w io.Writer) error {
	if err := e.requireLoaded(); err != nil {
		return err
	}
	if err := e.ensureLevelized(); err != nil {
		return err
	}
	rows, err := netlist.ReadPatterns(r, e.c)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := make([]string, len(e.c.POs))
	for i, poIdx := range e.c.POs {
		header[i] = strconv.Itoa(e.c.Nodes[poIdx].ID)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("%w: %v", netlist.ErrIO, err)
	}

	var prior []logic.Value
	for _, row := range rows {
		pis := make(map[int]logic.Value, len(e.c.PIs))
		for i, piIdx := range e.c.PIs {
			pis[piIdx] = logic.FromBit(row[i])
		}
		res, err := simulate.Simulate(e.c, pis, prior)
		if err != nil {
			return err
		}
		prior = res.Values

		fields := make([]string, len(e.c.POs))
		for i, poIdx := range e.c.POs {
			fields[i] = strconv.Itoa(int(res.PO[poIdx]))
		}
		if err := cw.Write(fields); err != nil {
			return fmt.Errorf("%w: %v", netlist.ErrIO, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %v", netlist.ErrIO, err)
	}
	e.log.Info().Int("patterns", len(rows)).Msg("logicsim: done")
	return nil
}

// Rfl synthesizes the checkpoint fault list — every PI and BRANCH
// node at both stuck-at values (spec §4.7) — and writes it.
func (e *Engine) Rfl(w io.Writer) error {
	if err := e.requireLoaded(); err != nil {
		return err
	}
	faults := e.checkpointFaultSpecs()
	e.log.Info().Int("faults", len(faults)).Msg("rfl: checkpoint fault list synthesized")
	return netlist.WriteFaultList(w, faults)
}

// checkpointFaultIndices returns the checkpoint fault list by dense
// circuit index, for internal use by Rtg/Atpg/AtpgDet.
func (e *Engine) checkpointFaultIndices() []pfs.Fault {
	var faults []pfs.Fault
	for idx, n := range e.c.Nodes {
		if n.Kind == circuit.KindPI || n.Kind == circuit.KindBranch {
			faults = append(faults, pfs.Fault{NodeIndex: idx, Stuck: 0}, pfs.Fault{NodeIndex: idx, Stuck: 1})
		}
	}
	return faults
}

func (e *Engine) checkpointFaultSpecs() []netlist.FaultSpec {
	var specs []netlist.FaultSpec
	for _, f := range e.checkpointFaultIndices() {
		specs = append(specs, netlist.FaultSpec{ID: e.c.Nodes[f.NodeIndex].ID, Stuck: f.Stuck})
	}
	return specs
}

// Pfs runs parallel fault simulation over the given pattern and fault
// files and writes the detected subset of faults.
func (e *Engine) Pfs(patternsR, faultsR io.Reader, w io.Writer) error {
	if err := e.requireLoaded(); err != nil {
		return err
	}
	if err := e.ensureLevelized(); err != nil {
		return err
	}
	patterns, faults, err := e.readPatternsAndFaults(patternsR, faultsR)
	if err != nil {
		return err
	}
	detected, err := pfs.Simulate(e.c, patterns, faults)
	if err != nil {
		return err
	}
	e.log.Info().Int("faults", len(faults)).Int("detected", len(detected)).Msg("pfs: done")
	return netlist.WriteFaultList(w, specsOf(e.c, detectedToSlice(detected)))
}

func (e *Engine) readPatternsAndFaults(patternsR, faultsR io.Reader) ([]pfs.Pattern, []pfs.Fault, error) {
	rows, err := netlist.ReadPatterns(patternsR, e.c)
	if err != nil {
		return nil, nil, err
	}
	specs, err := netlist.ReadFaultList(faultsR)
	if err != nil {
		return nil, nil, err
	}
	faults := make([]pfs.Fault, len(specs))
	for i, s := range specs {
		idx, err := e.c.IndexOf(s.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", netlist.ErrMalformedFault, err)
		}
		faults[i] = pfs.Fault{NodeIndex: idx, Stuck: s.Stuck}
	}
	patterns := make([]pfs.Pattern, len(rows))
	for i, row := range rows {
		patterns[i] = pfs.Pattern(row)
	}
	return patterns, faults, nil
}

func detectedToSlice(d pfs.DetectedSet) []pfs.Fault {
	faults := make([]pfs.Fault, 0, len(d))
	for f := range d {
		faults = append(faults, f)
	}
	return faults
}

func specsOf(c *circuit.Circuit, faults []pfs.Fault) []netlist.FaultSpec {
	specs := make([]netlist.FaultSpec, len(faults))
	for i, f := range faults {
		specs[i] = netlist.FaultSpec{ID: c.Nodes[f.NodeIndex].ID, Stuck: f.Stuck}
	}
	return specs
}

// Dfs runs deductive fault simulation over every row of a pattern
// file and writes the union, across every pattern and every primary
// output, of faults found detected (spec §4.4).
func (e *Engine) Dfs(r io.Reader, w io.Writer) error {
	if err := e.requireLoaded(); err != nil {
		return err
	}
	if err := e.ensureLevelized(); err != nil {
		return err
	}
	rows, err := netlist.ReadPatterns(r, e.c)
	if err != nil {
		return err
	}

	detected := make(map[dfsim.Fault]struct{})
	for _, row := range rows {
		pis := make(map[int]logic.Value, len(e.c.PIs))
		for i, piIdx := range e.c.PIs {
			pis[piIdx] = logic.FromBit(row[i])
		}
		perPO, err := dfsim.Simulate(e.c, pis)
		if err != nil {
			return err
		}
		for _, poIdx := range e.c.POs {
			for f := range perPO[poIdx] {
				detected[f] = struct{}{}
			}
		}
	}

	specs := make([]netlist.FaultSpec, 0, len(detected))
	for f := range detected {
		specs = append(specs, netlist.FaultSpec{ID: e.c.Nodes[f.NodeIndex].ID, Stuck: f.Stuck})
	}
	e.log.Info().Int("patterns", len(rows)).Int("detected", len(specs)).Msg("dfs: done")
	return netlist.WriteFaultList(w, specs)
}

// newLineWriter/idsOf/circuitNameFromPath/osOpen live in support.go.
