package netlist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SrikanthGadde/ee658/circuit"
)

// Netlist record roles, column 1 of the self format (spec §6).
const (
	roleGate = 0
	rolePI   = 1
	roleFB   = 2
	rolePO   = 3
)

// record is one parsed self-format line, before it is turned into
// circuit nodes and wires.
type record struct {
	role, id, kind int
	fanins         []int
}

// ReadCircuit parses the ISCAS "self" format from r and builds a
// *circuit.Circuit. Nodes are added in two passes, mirroring the
// original reader's id-table-then-wire approach: every record is
// parsed and added to the arena first (so every external id has a
// dense index), then fanins are wired in a second pass — a record's
// fanin ids may reference nodes declared later in the file.
//
// The returned circuit is not levelized; callers invoke
// circuit.Circuit.Levelize themselves (READ and LEV are separate
// commands per spec §6).
func ReadCircuit(r io.Reader) (*circuit.Circuit, error) {
	records, err := parseRecords(r)
	if err != nil {
		return nil, err
	}

	c := circuit.NewCircuit()
	for _, rec := range records {
		kind, err := kindFromFile(rec.kind)
		if err != nil {
			return nil, err
		}
		if _, err := c.AddNode(rec.id, kind, rec.role == rolePO); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
	}
	for _, rec := range records {
		for _, faninID := range rec.fanins {
			if err := c.Wire(faninID, rec.id); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
			}
		}
	}
	return c, nil
}

func parseRecords(r io.Reader) ([]record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 4096), 1<<20)

	var records []record
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		ints := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
			}
			ints[i] = v
		}
		rec, err := parseRecord(ints)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, line)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return records, nil
}

// parseRecord decodes one line's integer columns per spec §6: every
// record starts with role and id; FB hardcodes fanout=fanin=1 and
// reads only a kind column before its single fanin id, while
// PI/PO/GATE all read a uniform kind/fanout/fanin triple before their
// fanin id list (PI's fanin count is always 0 in practice).
func parseRecord(ints []int) (record, error) {
	if len(ints) < 2 {
		return record{}, ErrMalformedRecord
	}
	role, id := ints[0], ints[1]
	switch role {
	case roleFB:
		if len(ints) != 4 {
			return record{}, ErrMalformedRecord
		}
		return record{role: role, id: id, kind: ints[2], fanins: append([]int(nil), ints[3])}, nil
	case rolePI, rolePO, roleGate:
		if len(ints) < 5 {
			return record{}, ErrMalformedRecord
		}
		kind, fin := ints[2], ints[4]
		if len(ints) != 5+fin {
			return record{}, ErrMalformedRecord
		}
		return record{role: role, id: id, kind: kind, fanins: append([]int(nil), ints[5:]...)}, nil
	default:
		return record{}, ErrUnknownRole
	}
}

func kindFromFile(kind int) (circuit.Kind, error) {
	switch kind {
	case 0:
		return circuit.KindPI, nil
	case 1:
		return circuit.KindBranch, nil
	case 2:
		return circuit.KindXOR, nil
	case 3:
		return circuit.KindOR, nil
	case 4:
		return circuit.KindNOR, nil
	case 5:
		return circuit.KindNOT, nil
	case 6:
		return circuit.KindNAND, nil
	case 7:
		return circuit.KindAND, nil
	default:
		return 0, fmt.Errorf("%w: kind %d", circuit.ErrUnknownKind, kind)
	}
}

// WriteCircuit re-serializes c in the self format, one record per
// node in index order. It round-trips through ReadCircuit: reading
// back the output reproduces the same node set, kinds, and adjacency
// (spec §8 testable property), though not necessarily the original's
// exact id ordering within the file if c's nodes were reordered
// in-memory (AddNode's declaration order is preserved here, since
// Circuit never reorders Nodes after construction).
func WriteCircuit(w io.Writer, c *circuit.Circuit) error {
	bw := bufio.NewWriter(w)
	for _, n := range c.Nodes {
		role := roleGate
		switch {
		case n.IsOutput:
			role = rolePO
		case n.Kind == circuit.KindPI:
			role = rolePI
		case n.Kind == circuit.KindBranch:
			role = roleFB
		}

		var err error
		if role == roleFB {
			_, err = fmt.Fprintf(bw, "%d %d %d %d\n", role, n.ID, fileKind(n.Kind), faninID(c, n.Fanin[0]))
		} else {
			_, err = fmt.Fprintf(bw, "%d %d %d %d %d", role, n.ID, fileKind(n.Kind), len(n.Fanout), len(n.Fanin))
			if err == nil {
				for _, fi := range n.Fanin {
					if _, err = fmt.Fprintf(bw, " %d", faninID(c, fi)); err != nil {
						break
					}
				}
			}
			if err == nil {
				_, err = fmt.Fprint(bw, "\n")
			}
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

func faninID(c *circuit.Circuit, idx int) int { return c.Nodes[idx].ID }

func fileKind(k circuit.Kind) int { return int(k) }
