package netlist

import (
	"fmt"
	"io"
	"time"
)

// CoverageReport is the content of a coverage report file (spec §6).
type CoverageReport struct {
	Algorithm     string
	CircuitName   string
	FaultCoverage float64 // percentage, 0..100
	Elapsed       time.Duration
}

// WriteCoverageReport emits rep as the four fixed text lines spec §6
// names: "Algorithm:", "Circuit:", "Fault Coverage:", "Time:".
func WriteCoverageReport(w io.Writer, rep CoverageReport) error {
	lines := []string{
		fmt.Sprintf("Algorithm: %s\n", rep.Algorithm),
		fmt.Sprintf("Circuit: %s\n", rep.CircuitName),
		fmt.Sprintf("Fault Coverage: %.2f%%\n", rep.FaultCoverage),
		fmt.Sprintf("Time: %.3f seconds\n", rep.Elapsed.Seconds()),
	}
	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return nil
}
