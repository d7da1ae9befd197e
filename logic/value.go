// Package logic implements the three- and five-valued algebras shared by
// the event-driven simulator, PODEM, and the D-algorithm (spec §3, §4.5,
// §4.6). The five-valued domain {0,1,X,D,D̄} is a superset of the
// three-valued domain {0,1,X}: the event-driven simulator never produces
// D or D̄ because it never assigns them to a node, so a single exhaustive
// gate table serves both components (spec §9 Design Note).
package logic

import "github.com/SrikanthGadde/ee658/circuit"

// Value is one of the five algebra symbols.
type Value int

const (
	Zero Value = iota
	One
	X
	D
	DBar
)

// String renders a Value using the algebra's conventional symbols.
func (v Value) String() string {
	switch v {
	case Zero:
		return "0"
	case One:
		return "1"
	case X:
		return "X"
	case D:
		return "D"
	case DBar:
		return "D'"
	default:
		return "?"
	}
}

// FromBit converts a 0/1 input bit to Zero/One.
func FromBit(bit int) Value {
	if bit != 0 {
		return One
	}
	return Zero
}

// notTable is the exhaustive NOT lookup: 0↔1, D↔D̄, X→X.
var notTable = [...]Value{Zero: One, One: Zero, X: X, D: DBar, DBar: D}

// Not returns the complement of v under the five-valued algebra.
func Not(v Value) Value { return notTable[v] }

// IsDisagreement reports whether v signals a fault-free/faulty
// discrepancy (D or D̄) — the condition checked at D-frontier
// membership and at every PO during PODEM/D-alg success tests.
func IsDisagreement(v Value) bool { return v == D || v == DBar }

// Eval computes a gate's five-valued output given its Kind and its
// fanin values, implementing spec §4.5's exhaustive rule:
//
//   - AND/NAND/OR/NOR: if any input equals the controlling value,
//     output = c^inv; else if inputs hold both D and D̄
//     simultaneously, output = c^inv as well (the D·D̄ masking rule:
//     the good and faulty projections both see the controlling value);
//     else if any input is X, output = X; else if any input is D
//     (resp. D̄), output is
//     D^inv (resp. D̄^inv); else output = ~(c^inv).
//   - XOR: X dominates; otherwise count good/faulty parity of ones
//     (D counts as 1 good/0 faulty, D̄ the reverse) and emit 0/1/D/D̄.
//   - NOT: complement of the single input.
//   - BRANCH: copy of the single input.
//   - PI: undefined; callers never evaluate a PI's fanin (it has none).
func Eval(kind circuit.Kind, inputs []Value) Value {
	switch kind {
	case circuit.KindBranch:
		return inputs[0]
	case circuit.KindNOT:
		return Not(inputs[0])
	case circuit.KindXOR:
		return evalXOR(inputs, false)
	case circuit.KindAND, circuit.KindNAND, circuit.KindOR, circuit.KindNOR:
		return evalControlling(kind, inputs)
	default:
		return X
	}
}

func evalControlling(kind circuit.Kind, inputs []Value) Value {
	c := Value(kind.ControllingValue())
	inv := kind.Inverting()

	anyC, anyX, anyD, anyDBar := false, false, false, false
	for _, in := range inputs {
		switch in {
		case c:
			anyC = true
		case X:
			anyX = true
		case D:
			anyD = true
		case DBar:
			anyDBar = true
		}
	}

	invert := func(v Value) Value {
		if inv {
			return Not(v)
		}
		return v
	}

	switch {
	case anyC || (anyD && anyDBar):
		return invert(c)
	case anyX:
		return X
	case anyD:
		return invert(D)
	case anyDBar:
		return invert(DBar)
	default:
		return invert(Not(c))
	}
}

func evalXOR(inputs []Value, inv bool) Value {
	for _, in := range inputs {
		if in == X {
			return X
		}
	}

	onesGood, onesFaulty := 0, 0
	for _, in := range inputs {
		switch in {
		case One:
			onesGood++
			onesFaulty++
		case D:
			onesGood++
		case DBar:
			onesFaulty++
		}
	}

	var result Value
	switch {
	case onesGood%2 == 0 && onesFaulty%2 == 0:
		result = Zero
	case onesGood%2 == 1 && onesFaulty%2 == 1:
		result = One
	case onesGood%2 == 1 && onesFaulty%2 == 0:
		result = D
	default:
		result = DBar
	}

	if inv {
		return Not(result)
	}
	return result
}

// SetValueCheckFault encodes the injected stuck-at fault at the fault
// site while writing a freshly-computed gate value (spec §4.5
// setValueCheckFault): s-a-0 turns a computed 1 into D, s-a-1 turns a
// computed 0 into D̄; once the site already holds D/D̄, re-assigning the
// matching clean value collapses it back to 0/1. stuck is 0 or 1.
func SetValueCheckFault(stuck int, computed Value) Value {
	switch {
	case stuck == 0 && computed == One:
		return D
	case stuck == 0 && computed == DBar:
		return Zero
	case stuck == 1 && computed == Zero:
		return DBar
	case stuck == 1 && computed == D:
		return One
	default:
		return computed
	}
}
