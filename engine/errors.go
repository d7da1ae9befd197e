package engine

import (
	"errors"
	"fmt"

	"github.com/SrikanthGadde/ee658/circuit"
	"github.com/SrikanthGadde/ee658/dalg"
	"github.com/SrikanthGadde/ee658/dfsim"
	"github.com/SrikanthGadde/ee658/netlist"
	"github.com/SrikanthGadde/ee658/pfs"
	"github.com/SrikanthGadde/ee658/podem"
	"github.com/SrikanthGadde/ee658/simulate"
)

// Category is the error taxonomy of spec §7.
type Category int

const (
	// CategoryUnknown is the zero value: a cause ClassifyError could
	// not place into the taxonomy.
	CategoryUnknown Category = iota
	// CategoryIoError: file open/read/write failure.
	CategoryIoError
	// CategoryFormatError: malformed netlist/pattern/fault data.
	CategoryFormatError
	// CategoryOrderError: command requires a loaded circuit and none
	// is present.
	CategoryOrderError
	// CategoryTimeoutError: PODEM/D-alg exceeded its time budget.
	CategoryTimeoutError
	// CategoryUntestableFault: PODEM/D-alg exhausted its search space.
	CategoryUntestableFault
	// CategoryInternalInvariantError: a detected invariant violation
	// (e.g. an unlevelable graph). Fatal.
	CategoryInternalInvariantError
)

func (c Category) String() string {
	switch c {
	case CategoryIoError:
		return "IoError"
	case CategoryFormatError:
		return "FormatError"
	case CategoryOrderError:
		return "OrderError"
	case CategoryTimeoutError:
		return "TimeoutError"
	case CategoryUntestableFault:
		return "UntestableFault"
	case CategoryInternalInvariantError:
		return "InternalInvariantError"
	default:
		return "Unknown"
	}
}

// ClassifiedError pairs a taxonomy Category with its underlying
// cause, mirroring flow.EdgeError's typed-error-with-fields shape.
// FaultID/Stuck are populated when the error is specific to one fault
// (Timeout/UntestableFault); zero otherwise.
type ClassifiedError struct {
	Category Category
	Cause    error
	FaultID  int
	Stuck    int
}

func (e *ClassifiedError) Error() string {
	if e.Category == CategoryTimeoutError || e.Category == CategoryUntestableFault {
		return fmt.Sprintf("engine: %s: fault %d@%d: %v", e.Category, e.FaultID, e.Stuck, e.Cause)
	}
	return fmt.Sprintf("engine: %s: %v", e.Category, e.Cause)
}

func (e *ClassifiedError) Unwrap() error { return e.Cause }

// Sentinel errors owned by engine itself.
var (
	// ErrNoCircuitLoaded is an OrderError: a command that requires a
	// loaded circuit was invoked before a successful Read.
	ErrNoCircuitLoaded = errors.New("engine: no circuit loaded")

	// ErrConfigIO wraps a failure reading a YAML config file.
	ErrConfigIO = errors.New("engine: config file i/o error")

	// ErrConfigFormat wraps a failure parsing YAML config content.
	ErrConfigFormat = errors.New("engine: malformed config file")

	// ErrUnknownAlgorithm is returned by AtpgDet for an algorithm name
	// other than "PODEM" or "DALG".
	ErrUnknownAlgorithm = errors.New("engine: unknown ATPG algorithm")
)

// ClassifyError places cause into the spec §7 taxonomy. It checks
// engine's own ErrNoCircuitLoaded first, then
// circuit.ErrMalformedCircuit (InternalInvariantError), then the
// format, I/O, timeout, untestable and not-levelized sentinels the
// library packages and this package define.
func ClassifyError(cause error) *ClassifiedError {
	switch {
	case cause == nil:
		return nil
	case errors.Is(cause, ErrNoCircuitLoaded):
		return &ClassifiedError{Category: CategoryOrderError, Cause: cause}
	case errors.Is(cause, circuit.ErrMalformedCircuit):
		return &ClassifiedError{Category: CategoryInternalInvariantError, Cause: cause}
	case errors.Is(cause, circuit.ErrUnknownKind),
		errors.Is(cause, circuit.ErrDuplicateID),
		errors.Is(cause, circuit.ErrUnknownID),
		errors.Is(cause, netlist.ErrMalformedRecord),
		errors.Is(cause, netlist.ErrUnknownRole),
		errors.Is(cause, netlist.ErrMalformedPattern),
		errors.Is(cause, netlist.ErrPatternPIMismatch),
		errors.Is(cause, netlist.ErrMalformedFault),
		errors.Is(cause, ErrConfigFormat):
		return &ClassifiedError{Category: CategoryFormatError, Cause: cause}
	case errors.Is(cause, netlist.ErrIO), errors.Is(cause, ErrConfigIO):
		return &ClassifiedError{Category: CategoryIoError, Cause: cause}
	case errors.Is(cause, podem.ErrTimeout), errors.Is(cause, dalg.ErrTimeout):
		return &ClassifiedError{Category: CategoryTimeoutError, Cause: cause}
	case errors.Is(cause, podem.ErrUntestable), errors.Is(cause, dalg.ErrUntestable):
		return &ClassifiedError{Category: CategoryUntestableFault, Cause: cause}
	case errors.Is(cause, simulate.ErrNotLevelized), errors.Is(cause, pfs.ErrNotLevelized), errors.Is(cause, dfsim.ErrNotLevelized),
		errors.Is(cause, podem.ErrNotLevelized), errors.Is(cause, dalg.ErrNotLevelized):
		return &ClassifiedError{Category: CategoryOrderError, Cause: cause}
	default:
		return &ClassifiedError{Category: CategoryUnknown, Cause: cause}
	}
}

// classifyFault is ClassifyError specialized for a known fault, used
// by Podem/Dalg/AtpgDet/Atpg to tag TimeoutError/
// UntestableFault outcomes with the fault that produced them.
func classifyFault(cause error, faultID, stuck int) *ClassifiedError {
	ce := ClassifyError(cause)
	if ce != nil {
		ce.FaultID, ce.Stuck = faultID, stuck
	}
	return ce
}
