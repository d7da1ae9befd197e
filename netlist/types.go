// Package netlist reads and writes the external text formats of spec
// §6: the ISCAS "self" gate-level netlist, CSV pattern files, "<id>@
// <stuck>" fault lists, and the plain-text coverage report. It is the
// only package that knows about external node ids; everything it
// hands back addresses nodes by the circuit's dense internal index.
package netlist

import "errors"

// Sentinel errors. All of these are FormatError/IoError per spec §7;
// engine.ClassifyError maps them to the taxonomy's Category.
var (
	// ErrIO wraps an underlying read/write failure on the supplied
	// io.Reader/io.Writer (the file-open step itself is the caller's
	// concern, per spec §7 IoError).
	ErrIO = errors.New("netlist: i/o error")

	// ErrMalformedRecord indicates a netlist line did not parse as
	// whitespace-separated integers in one of the shapes §6 defines.
	ErrMalformedRecord = errors.New("netlist: malformed record")

	// ErrUnknownRole indicates a netlist record's role column was not
	// one of {0,1,2,3}.
	ErrUnknownRole = errors.New("netlist: unknown record role")

	// ErrMalformedPattern indicates a pattern file row did not parse,
	// or a row's width did not match the header.
	ErrMalformedPattern = errors.New("netlist: malformed pattern file")

	// ErrPatternPIMismatch indicates a pattern file's header row names
	// a different set (or order) of PI ids than the loaded circuit.
	ErrPatternPIMismatch = errors.New("netlist: pattern header does not match circuit PI order")

	// ErrMalformedFault indicates a fault file line was not of the
	// form "<id>@<0|1>".
	ErrMalformedFault = errors.New("netlist: malformed fault line")
)

// FaultSpec is a single stuck-at fault named by external netlist id,
// the form faults are read from and written to disk in (contrast
// dalg.Fault/podem.Fault/pfs.Fault/dfsim.Fault, which all use the
// dense circuit index).
type FaultSpec struct {
	ID    int
	Stuck int
}

// PatternRow is one test vector, one bit per PI in the circuit's PI
// declaration order (circuit.Circuit.PIs). It is deliberately a plain
// []int, identical in underlying type to pfs.Pattern/dfsim.Pattern,
// so callers convert with a simple type conversion rather than this
// package importing every simulator just for a type alias.
type PatternRow []int
