package netlist

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ReadFaultList parses a fault file of "<id>@<0|1>" lines (spec §6),
// one fault per line, blank lines ignored.
func ReadFaultList(r io.Reader) ([]FaultSpec, error) {
	sc := bufio.NewScanner(r)
	var faults []FaultSpec
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		idStr, stuckStr, ok := strings.Cut(line, "@")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedFault, line)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedFault, line)
		}
		stuck, err := strconv.Atoi(strings.TrimSpace(stuckStr))
		if err != nil || (stuck != 0 && stuck != 1) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedFault, line)
		}
		faults = append(faults, FaultSpec{ID: id, Stuck: stuck})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return faults, nil
}

// WriteFaultList writes faults one per line as "<id>@<0|1>", sorted
// lexicographically by (id, stuck) for reproducible output (spec §6,
// SUPPLEMENTED FEATURES item 4). The input slice is not mutated.
func WriteFaultList(w io.Writer, faults []FaultSpec) error {
	sorted := append([]FaultSpec(nil), faults...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].ID != sorted[j].ID {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].Stuck < sorted[j].Stuck
	})

	bw := bufio.NewWriter(w)
	for _, f := range sorted {
		if _, err := fmt.Fprintf(bw, "%d@%d\n", f.ID, f.Stuck); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
