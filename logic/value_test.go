package logic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SrikanthGadde/ee658/circuit"
	"github.com/SrikanthGadde/ee658/logic"
)

func TestNot(t *testing.T) {
	cases := map[logic.Value]logic.Value{
		logic.Zero: logic.One,
		logic.One:  logic.Zero,
		logic.X:    logic.X,
		logic.D:    logic.DBar,
		logic.DBar: logic.D,
	}
	for in, want := range cases {
		assert.Equal(t, want, logic.Not(in), "Not(%v)", in)
	}
}

func TestEval_ThreeValued_AND(t *testing.T) {
	assert.Equal(t, logic.Zero, logic.Eval(circuit.KindAND, []logic.Value{logic.Zero, logic.One}))
	assert.Equal(t, logic.X, logic.Eval(circuit.KindAND, []logic.Value{logic.X, logic.One}))
	assert.Equal(t, logic.One, logic.Eval(circuit.KindAND, []logic.Value{logic.One, logic.One}))
}

func TestEval_ThreeValued_NAND_OR_NOR(t *testing.T) {
	assert.Equal(t, logic.Zero, logic.Eval(circuit.KindNAND, []logic.Value{logic.One, logic.One}))
	assert.Equal(t, logic.One, logic.Eval(circuit.KindOR, []logic.Value{logic.Zero, logic.One}))
	assert.Equal(t, logic.Zero, logic.Eval(circuit.KindNOR, []logic.Value{logic.Zero, logic.One}))
}

func TestEval_XOR_Parity(t *testing.T) {
	assert.Equal(t, logic.Zero, logic.Eval(circuit.KindXOR, []logic.Value{logic.One, logic.One}))
	assert.Equal(t, logic.One, logic.Eval(circuit.KindXOR, []logic.Value{logic.One, logic.Zero}))
	assert.Equal(t, logic.X, logic.Eval(circuit.KindXOR, []logic.Value{logic.X, logic.Zero}))
}

func TestEval_FiveValued_ControllingMasksD(t *testing.T) {
	// AND: any 0 input forces output 0 even with D/D̄ present.
	got := logic.Eval(circuit.KindAND, []logic.Value{logic.Zero, logic.D})
	assert.Equal(t, logic.Zero, got)

	// AND with D and no controlling input: output tracks D.
	got = logic.Eval(circuit.KindAND, []logic.Value{logic.D, logic.One})
	assert.Equal(t, logic.D, got)

	// AND with D and D̄ together and no controlling value: masks to
	// the gate's controlling-value output (0 for AND).
	got = logic.Eval(circuit.KindAND, []logic.Value{logic.D, logic.DBar})
	assert.Equal(t, logic.Zero, got)
}

func TestEval_XOR_GoodFaultyParity(t *testing.T) {
	// good=1 (D counts as 1), faulty=0 (D counts as 0 on faulty side) -> D
	got := logic.Eval(circuit.KindXOR, []logic.Value{logic.D, logic.Zero})
	assert.Equal(t, logic.D, got)

	// good=0, faulty=1 -> D̄
	got = logic.Eval(circuit.KindXOR, []logic.Value{logic.DBar, logic.Zero})
	assert.Equal(t, logic.DBar, got)
}

func TestSetValueCheckFault(t *testing.T) {
	assert.Equal(t, logic.D, logic.SetValueCheckFault(0, logic.One))
	assert.Equal(t, logic.Zero, logic.SetValueCheckFault(0, logic.DBar))
	assert.Equal(t, logic.DBar, logic.SetValueCheckFault(1, logic.Zero))
	assert.Equal(t, logic.One, logic.SetValueCheckFault(1, logic.D))
	assert.Equal(t, logic.X, logic.SetValueCheckFault(0, logic.X))
}
