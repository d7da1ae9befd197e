package engine

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/SrikanthGadde/ee658/dalg"
	"github.com/SrikanthGadde/ee658/logic"
	"github.com/SrikanthGadde/ee658/netlist"
	"github.com/SrikanthGadde/ee658/pfs"
	"github.com/SrikanthGadde/ee658/podem"
)

func bitOf(v logic.Value) int {
	switch v {
	case logic.One, logic.D:
		return 1
	default:
		return 0
	}
}

// patternFromResult turns a PODEM/D-alg assignment into a full pattern
// row, filling every unconstrained (don't-care) primary input with a
// fresh random bit.
func (e *Engine) patternFromResult(assigned map[int]logic.Value) netlist.PatternRow {
	row := make(netlist.PatternRow, len(e.c.PIs))
	for i, piIdx := range e.c.PIs {
		if v, ok := assigned[piIdx]; ok {
			row[i] = bitOf(v)
		} else {
			row[i] = e.rng.Intn(2)
		}
	}
	return row
}

// Podem runs PODEM for a single stuck-at fault named by external node
// id and stuck value.
func (e *Engine) Podem(nodeID, stuck int) (*podem.Result, error) {
	if err := e.requireLoaded(); err != nil {
		return nil, err
	}
	if err := e.ensureLevelized(); err != nil {
		return nil, err
	}
	idx, err := e.c.IndexOf(nodeID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.TimeBudget)
	defer cancel()
	res, err := podem.Generate(e.c, podem.Fault{NodeIndex: idx, Stuck: stuck}, podem.WithContext(ctx))
	if err != nil {
		e.log.Warn().Err(classifyFault(err, nodeID, stuck)).Msg("podem: failed")
		return nil, err
	}
	e.log.Info().Int("node", nodeID).Int("stuck", stuck).Msg("podem: test found")
	return res, nil
}

// Dalg runs the D-algorithm for a single stuck-at fault named by
// external node id and stuck value.
func (e *Engine) Dalg(nodeID, stuck int) (*dalg.Result, error) {
	if err := e.requireLoaded(); err != nil {
		return nil, err
	}
	if err := e.ensureLevelized(); err != nil {
		return nil, err
	}
	idx, err := e.c.IndexOf(nodeID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.TimeBudget)
	defer cancel()
	res, err := dalg.Generate(e.c, dalg.Fault{NodeIndex: idx, Stuck: stuck}, dalg.WithContext(ctx))
	if err != nil {
		e.log.Warn().Err(classifyFault(err, nodeID, stuck)).Msg("dalg: failed")
		return nil, err
	}
	e.log.Info().Int("node", nodeID).Int("stuck", stuck).Msg("dalg: test found")
	return res, nil
}

// AtpgDet runs one of "PODEM" or "DALG" against every checkpoint fault
// in turn (spec §4.7 Deterministic mode), replays the resulting
// pattern set through PFS for the final coverage figure, and reports
// elapsed wall-clock time.
func (e *Engine) AtpgDet(algorithm string) ([]netlist.PatternRow, netlist.CoverageReport, error) {
	if err := e.requireLoaded(); err != nil {
		return nil, netlist.CoverageReport{}, err
	}
	if err := e.ensureLevelized(); err != nil {
		return nil, netlist.CoverageReport{}, err
	}
	alg := strings.ToUpper(algorithm)
	if alg != "PODEM" && alg != "DALG" {
		return nil, netlist.CoverageReport{}, ErrUnknownAlgorithm
	}

	start := time.Now()
	faults := e.checkpointFaultIndices()
	total := len(faults)

	var patterns []netlist.PatternRow
	for _, f := range faults {
		pis, err := e.generateOne(alg, f)
		if err != nil {
			e.log.Warn().Err(classifyFault(err, e.c.Nodes[f.NodeIndex].ID, f.Stuck)).Msg("atpg-det: fault skipped")
			continue
		}
		patterns = append(patterns, e.patternFromResult(pis))
	}

	rep, err := e.replayCoverage(alg, patterns, faults, total, start)
	if err != nil {
		return nil, netlist.CoverageReport{}, err
	}
	e.log.Info().Str("algorithm", alg).Float64("coverage", rep.FaultCoverage).Msg("atpg-det: done")
	return patterns, rep, nil
}

func (e *Engine) generateOne(alg string, f pfs.Fault) (map[int]logic.Value, error) {
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.TimeBudget)
	defer cancel()
	if alg == "PODEM" {
		res, err := podem.Generate(e.c, podem.Fault{NodeIndex: f.NodeIndex, Stuck: f.Stuck}, podem.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		return res.PIs, nil
	}
	res, err := dalg.Generate(e.c, dalg.Fault{NodeIndex: f.NodeIndex, Stuck: f.Stuck}, dalg.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return res.PIs, nil
}

func (e *Engine) replayCoverage(alg string, patterns []netlist.PatternRow, faults []pfs.Fault, total int, start time.Time) (netlist.CoverageReport, error) {
	batch := make([]pfs.Pattern, len(patterns))
	for i, p := range patterns {
		batch[i] = pfs.Pattern(p)
	}
	detected, err := pfs.Simulate(e.c, batch, faults)
	if err != nil {
		return netlist.CoverageReport{}, err
	}
	coverage := 0.0
	if total > 0 {
		coverage = float64(len(detected)) * 100.0 / float64(total)
	}
	return netlist.CoverageReport{
		Algorithm:     alg,
		CircuitName:   e.name,
		FaultCoverage: coverage,
		Elapsed:       time.Since(start),
	}, nil
}

// Atpg runs the full hybrid pipeline of spec §4.7: generate random
// patterns in batches of ceil(N*HybridBatchFraction), dropping
// detected faults from the working list after each batch, until the
// coverage gain between successive batches falls below
// HybridGainThreshold (or the list empties); then runs PODEM on every
// fault still undetected; then replays the complete pattern set
// through PFS for the final reported coverage.
func (e *Engine) Atpg() ([]netlist.PatternRow, []BatchReport, netlist.CoverageReport, error) {
	if err := e.requireLoaded(); err != nil {
		return nil, nil, netlist.CoverageReport{}, err
	}
	if err := e.ensureLevelized(); err != nil {
		return nil, nil, netlist.CoverageReport{}, err
	}

	start := time.Now()
	faults := e.checkpointFaultIndices()
	total := len(faults)
	detected := make(map[pfs.Fault]struct{})
	remaining := append([]pfs.Fault(nil), faults...)

	batchSize := int(math.Ceil(float64(total) * e.cfg.HybridBatchFraction))
	if batchSize < 1 {
		batchSize = 1
	}

	var allPatterns []netlist.PatternRow
	var reports []BatchReport
	fc, fcOld := 0.0, 0.0
	for first := true; first || (fc-fcOld > e.cfg.HybridGainThreshold && len(remaining) > 0); first = false {
		batch := make([]pfs.Pattern, batchSize)
		rows := make([]netlist.PatternRow, batchSize)
		for i := range rows {
			row := e.randomPattern()
			rows[i] = row
			batch[i] = pfs.Pattern(row)
		}
		allPatterns = append(allPatterns, rows...)

		hit, err := pfs.Simulate(e.c, batch, remaining)
		if err != nil {
			return nil, nil, netlist.CoverageReport{}, err
		}
		for f := range hit {
			detected[f] = struct{}{}
		}
		remaining = dropDetected(remaining, hit)

		fcOld = fc
		if total > 0 {
			fc = float64(len(detected)) * 100.0 / float64(total)
		}
		reports = append(reports, BatchReport{PatternsSoFar: len(allPatterns), Coverage: fc})
		e.log.Info().Int("patternsSoFar", len(allPatterns)).Float64("coverage", fc).Int("remaining", len(remaining)).Msg("atpg: random batch done")
	}

	e.log.Info().Int("remaining", len(remaining)).Msg("atpg: switching to podem fallback")
	for _, f := range remaining {
		pis, err := e.generateOne("PODEM", f)
		if err != nil {
			e.log.Warn().Err(classifyFault(err, e.c.Nodes[f.NodeIndex].ID, f.Stuck)).Msg("atpg: podem fallback failed")
			continue
		}
		allPatterns = append(allPatterns, e.patternFromResult(pis))
	}

	rep, err := e.replayCoverage("HYBRID", allPatterns, faults, total, start)
	if err != nil {
		return nil, nil, netlist.CoverageReport{}, err
	}
	e.log.Info().Float64("coverage", rep.FaultCoverage).Dur("elapsed", rep.Elapsed).Msg("atpg: done")
	return allPatterns, reports, rep, nil
}
