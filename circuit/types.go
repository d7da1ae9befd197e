// Package circuit defines the levelized gate-graph model shared by every
// simulator and test generator in this module: Node, Circuit, and the
// sentinel errors raised while building or levelizing a netlist.
//
// A Circuit is an arena of Node records addressed by dense integer index
// (0..N-1); Node.Fanin and Node.Fanout hold indices into that same arena,
// never pointers, so the whole graph can be copied, cleared, and reused
// without ownership ambiguity.
package circuit

import "errors"

// Sentinel errors for circuit construction and levelization.
var (
	// ErrDuplicateID indicates AddNode was called twice with the same
	// external netlist id.
	ErrDuplicateID = errors.New("circuit: duplicate node id")

	// ErrUnknownID indicates a fanin/fanout reference names an id that
	// was never added via AddNode.
	ErrUnknownID = errors.New("circuit: unknown node id")

	// ErrUnknownKind indicates a node was built with an unrecognized
	// gate kind. Fatal during netlist parsing per spec §4.9.
	ErrUnknownKind = errors.New("circuit: unknown gate kind")

	// ErrMalformedCircuit indicates the leveler made no progress on a
	// full scan: the fanin graph is not a DAG, or references a node
	// that was never levelized. Combinational circuits are not
	// expected to cycle; this is an InternalInvariantError per spec §7.
	ErrMalformedCircuit = errors.New("circuit: malformed circuit (unlevelable)")
)

// Kind identifies a node's gate function. The zero value is KindPI.
type Kind int

// Gate kinds, mirroring the ISCAS "self" format's kind column (§6).
const (
	KindPI Kind = iota
	KindBranch
	KindXOR
	KindOR
	KindNOR
	KindNOT
	KindNAND
	KindAND
)

// String renders a Kind using the self-format's gate names.
func (k Kind) String() string {
	switch k {
	case KindPI:
		return "PI"
	case KindBranch:
		return "BRANCH"
	case KindXOR:
		return "XOR"
	case KindOR:
		return "OR"
	case KindNOR:
		return "NOR"
	case KindNOT:
		return "NOT"
	case KindNAND:
		return "NAND"
	case KindAND:
		return "AND"
	default:
		return "UNKNOWN"
	}
}

// ControllingValue returns this gate's controlling input value (0 for
// AND/NAND, 1 for OR/NOR): any input at that value fixes the gate's
// output regardless of the other inputs. Only meaningful for the four
// controlling-gate kinds; callers must check Kind first.
func (k Kind) ControllingValue() int {
	switch k {
	case KindAND, KindNAND:
		return 0
	case KindOR, KindNOR:
		return 1
	default:
		return -1
	}
}

// Inverting reports whether this gate's output polarity is inverted
// relative to its controlling/non-controlling value (NAND, NOR, NOT).
func (k Kind) Inverting() bool {
	switch k {
	case KindNAND, KindNOR, KindNOT:
		return true
	default:
		return false
	}
}

// Node is one record per netlist line: a primary input, a fanout
// branch, a gate, or a primary output (POs are gates/branches flagged
// IsOutput; the ISCAS format layers "role" PO on top of a gate Kind).
type Node struct {
	// ID is the external integer identifier from the netlist.
	ID int

	// Index is the internal dense index, 0..N-1, used for all
	// cross-references in Fanin/Fanout and in every simulator's
	// per-node state slice.
	Index int

	// Kind is this node's gate function.
	Kind Kind

	// IsOutput marks a node declared as a primary output (role==3 in
	// the self format). A PO node still has a Kind (its gate
	// function); IsOutput only affects which nodes are polled for D/D̄
	// and reported in LOGICSIM output.
	IsOutput bool

	// Fanin holds this node's input node indices, in declared order.
	// Empty for PI.
	Fanin []int

	// Fanout holds the indices of nodes that take this node's output
	// as an input, in declared order. Empty for PO leaves.
	Fanout []int

	// Level is 1 + max(level of fanins); PIs are level 0. Set by
	// Circuit.Levelize; -1 until then.
	Level int
}
