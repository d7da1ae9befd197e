package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SrikanthGadde/ee658/circuit"
	"github.com/SrikanthGadde/ee658/logic"
	"github.com/SrikanthGadde/ee658/simulate"
)

// buildC17 mirrors circuit_test.go's benchmark wiring; duplicated here
// (rather than exported) to keep simulate_test self-contained per
// package-level test conventions.
func buildC17(t *testing.T) (*circuit.Circuit, map[int]int) {
	t.Helper()
	c := circuit.NewCircuit()
	ids := []int{1, 2, 3, 6, 7}
	for _, id := range ids {
		_, err := c.AddNode(id, circuit.KindPI, false)
		require.NoError(t, err)
	}
	gates := []struct {
		id       int
		isOutput bool
		fanin    []int
	}{
		{10, false, []int{1, 3}},
		{11, false, []int{3, 6}},
		{16, false, []int{2, 11}},
		{19, false, []int{11, 7}},
		{22, true, []int{10, 16}},
		{23, true, []int{16, 19}},
	}
	for _, g := range gates {
		_, err := c.AddNode(g.id, circuit.KindNAND, g.isOutput)
		require.NoError(t, err)
	}
	for _, g := range gates {
		for _, fi := range g.fanin {
			require.NoError(t, c.Wire(fi, g.id))
		}
	}
	require.NoError(t, c.Levelize())

	idx := make(map[int]int, len(ids)+len(gates))
	for _, id := range append(append([]int(nil), ids...), 10, 11, 16, 19, 22, 23) {
		i, err := c.IndexOf(id)
		require.NoError(t, err)
		idx[id] = i
	}
	return c, idx
}

func pisFor(idx map[int]int, assignment map[int]int) map[int]logic.Value {
	out := make(map[int]logic.Value, len(assignment))
	for id, bit := range assignment {
		out[idx[id]] = logic.FromBit(bit)
	}
	return out
}

func TestSimulate_C17_AllOnes(t *testing.T) {
	c, idx := buildC17(t)
	res, err := simulate.SimulateFresh(c, pisFor(idx, map[int]int{1: 1, 2: 1, 3: 1, 6: 1, 7: 1}))
	require.NoError(t, err)
	require.Equal(t, logic.One, res.PO[idx[22]])
	require.Equal(t, logic.One, res.PO[idx[23]])
}

func TestSimulate_C17_AllZeros(t *testing.T) {
	c, idx := buildC17(t)
	res, err := simulate.SimulateFresh(c, pisFor(idx, map[int]int{1: 0, 2: 0, 3: 0, 6: 0, 7: 0}))
	require.NoError(t, err)
	require.Equal(t, logic.One, res.PO[idx[22]])
	require.Equal(t, logic.One, res.PO[idx[23]])
}

func TestSimulate_C17_Alternating(t *testing.T) {
	c, idx := buildC17(t)
	res, err := simulate.SimulateFresh(c, pisFor(idx, map[int]int{1: 1, 2: 0, 3: 1, 6: 0, 7: 1}))
	require.NoError(t, err)
	require.Equal(t, logic.One, res.PO[idx[22]])
	require.Equal(t, logic.Zero, res.PO[idx[23]])
}

func TestSimulate_FixedPoint_Idempotent(t *testing.T) {
	c, idx := buildC17(t)
	pis := pisFor(idx, map[int]int{1: 1, 2: 1, 3: 0, 6: 1, 7: 0})
	first, err := simulate.SimulateFresh(c, pis)
	require.NoError(t, err)

	second, err := simulate.Simulate(c, pis, first.Values)
	require.NoError(t, err)
	require.Equal(t, first.Values, second.Values, "re-running with identical PIs must change no node value")
}

func TestSimulate_PatternLengthMismatch(t *testing.T) {
	c, idx := buildC17(t)
	pis := pisFor(idx, map[int]int{1: 1})
	_, err := simulate.SimulateFresh(c, pis)
	require.ErrorIs(t, err, simulate.ErrPatternLength)
}

func TestSimulate_NotLevelized(t *testing.T) {
	c := circuit.NewCircuit()
	_, err := c.AddNode(1, circuit.KindPI, false)
	require.NoError(t, err)
	_, err = simulate.SimulateFresh(c, map[int]logic.Value{0: logic.One})
	require.ErrorIs(t, err, simulate.ErrNotLevelized)
}
