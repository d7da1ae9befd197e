package netlist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/SrikanthGadde/ee658/circuit"
)

// ReadPatterns parses a comma-separated pattern file (spec §6): the
// header row lists PI ids in PI-declaration order, each following row
// is one bit per PI. The header must name exactly c's PIs in exactly
// c's declaration order — a transposed or reordered header is an
// ErrPatternPIMismatch, not silently reinterpreted.
func ReadPatterns(r io.Reader, c *circuit.Circuit) ([]PatternRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty pattern file", ErrMalformedPattern)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := checkHeader(header, c); err != nil {
		return nil, err
	}

	var rows []PatternRow
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		if len(fields) == 0 || (len(fields) == 1 && fields[0] == "") {
			continue
		}
		if len(fields) != len(c.PIs) {
			return nil, fmt.Errorf("%w: got %d columns, want %d", ErrMalformedPattern, len(fields), len(c.PIs))
		}
		row := make(PatternRow, len(fields))
		for i, f := range fields {
			bit, err := strconv.Atoi(f)
			if err != nil || (bit != 0 && bit != 1) {
				return nil, fmt.Errorf("%w: %q is not 0 or 1", ErrMalformedPattern, f)
			}
			row[i] = bit
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func checkHeader(header []string, c *circuit.Circuit) error {
	if len(header) != len(c.PIs) {
		return fmt.Errorf("%w: header has %d columns, circuit has %d PIs", ErrPatternPIMismatch, len(header), len(c.PIs))
	}
	for i, h := range header {
		id, err := strconv.Atoi(h)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedPattern, h)
		}
		if id != c.Nodes[c.PIs[i]].ID {
			return fmt.Errorf("%w: column %d is PI %d, want %d", ErrPatternPIMismatch, i, id, c.Nodes[c.PIs[i]].ID)
		}
	}
	return nil
}

// WritePatterns emits rows in the same header+CSV shape ReadPatterns
// accepts, so output pattern files round-trip (spec §6 output
// test-pattern file).
func WritePatterns(w io.Writer, c *circuit.Circuit, rows []PatternRow) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(c.PIs))
	for i, piIdx := range c.PIs {
		header[i] = strconv.Itoa(c.Nodes[piIdx].ID)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, bit := range row {
			fields[i] = strconv.Itoa(bit)
		}
		if err := cw.Write(fields); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
