package engine

import (
	"io"

	"github.com/SrikanthGadde/ee658/netlist"
	"github.com/SrikanthGadde/ee658/pfs"
)

// BatchReport is one row of a random-test-generation trail: the
// cumulative pattern count after a batch and the checkpoint fault
// coverage achieved so far (SUPPLEMENTED FEATURES item 2).
type BatchReport struct {
	PatternsSoFar int
	Coverage      float64
}

func (e *Engine) randomPattern() netlist.PatternRow {
	row := make(netlist.PatternRow, len(e.c.PIs))
	for i := range row {
		row[i] = e.rng.Intn(2)
	}
	return row
}

// dropDetected returns the subset of faults not present in detected,
// never aliasing faults' backing array.
func dropDetected(faults []pfs.Fault, detected map[pfs.Fault]struct{}) []pfs.Fault {
	out := make([]pfs.Fault, 0, len(faults))
	for _, f := range faults {
		if _, ok := detected[f]; !ok {
			out = append(out, f)
		}
	}
	return out
}

// RandomTestGeneration generates totalPatterns random patterns in
// batches of batchSize, simulating each batch with PFS against the
// checkpoint fault list and reporting cumulative coverage after every
// batch (spec §4.7's plain random mode — no early-stop rule, no PODEM
// fallback; that combination is Atpg's hybrid mode).
func (e *Engine) RandomTestGeneration(totalPatterns, batchSize int) ([]netlist.PatternRow, []BatchReport, error) {
	if err := e.requireLoaded(); err != nil {
		return nil, nil, err
	}
	if err := e.ensureLevelized(); err != nil {
		return nil, nil, err
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	faults := e.checkpointFaultIndices()
	total := len(faults)
	detected := make(map[pfs.Fault]struct{})

	var allPatterns []netlist.PatternRow
	var reports []BatchReport
	for len(allPatterns) < totalPatterns {
		n := batchSize
		if len(allPatterns)+n > totalPatterns {
			n = totalPatterns - len(allPatterns)
		}
		batch := make([]pfs.Pattern, n)
		rows := make([]netlist.PatternRow, n)
		for i := 0; i < n; i++ {
			row := e.randomPattern()
			rows[i] = row
			batch[i] = pfs.Pattern(row)
		}
		allPatterns = append(allPatterns, rows...)

		remaining := dropDetected(faults, detected)
		if len(remaining) > 0 {
			hit, err := pfs.Simulate(e.c, batch, remaining)
			if err != nil {
				return nil, nil, err
			}
			for f := range hit {
				detected[f] = struct{}{}
			}
		}

		coverage := 0.0
		if total > 0 {
			coverage = float64(len(detected)) * 100.0 / float64(total)
		}
		reports = append(reports, BatchReport{PatternsSoFar: len(allPatterns), Coverage: coverage})
		e.log.Info().Int("patternsSoFar", len(allPatterns)).Float64("coverage", coverage).Msg("rtg: batch done")
	}
	return allPatterns, reports, nil
}

// Rtg is RandomTestGeneration wired to file-shaped I/O: it writes the
// generated patterns and a "patternsSoFar coverage" trail line per
// batch.
func (e *Engine) Rtg(totalPatterns, batchSize int, patternsOut, coverageOut io.Writer) error {
	rows, reports, err := e.RandomTestGeneration(totalPatterns, batchSize)
	if err != nil {
		return err
	}
	if err := netlist.WritePatterns(patternsOut, e.c, rows); err != nil {
		return err
	}
	bw := newLineWriter(coverageOut)
	for _, r := range reports {
		bw.line("%d %.2f", r.PatternsSoFar, r.Coverage)
	}
	return bw.err
}
