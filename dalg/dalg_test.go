package dalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SrikanthGadde/ee658/circuit"
	"github.com/SrikanthGadde/ee658/dalg"
	"github.com/SrikanthGadde/ee658/logic"
	"github.com/SrikanthGadde/ee658/pfs"
)

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

// TestGenerate_RoundTripsThroughPFS mirrors podem's spec §8 invariant:
// a pattern the D-algorithm produces for (f, s) must be confirmed
// detected by PFS running that same single-fault list.
func TestGenerate_RoundTripsThroughPFS(t *testing.T) {
	c, idx := buildC17(t)

	cases := []dalg.Fault{
		{NodeIndex: idx[10], Stuck: 0},
		{NodeIndex: idx[10], Stuck: 1},
		{NodeIndex: idx[11], Stuck: 0},
		{NodeIndex: idx[22], Stuck: 1},
		{NodeIndex: idx[7], Stuck: 0},
	}

	for _, f := range cases {
		res, err := dalg.Generate(c, f)
		require.NoError(t, err, "fault %+v", f)

		pat := make(pfs.Pattern, len(c.PIs))
		for i, piIdx := range c.PIs {
			v, ok := res.PIs[piIdx]
			if !ok {
				v = logic.Zero
			}
			if v == logic.One {
				pat[i] = 1
			}
		}

		detected, err := pfs.Simulate(c, []pfs.Pattern{pat}, []pfs.Fault{{NodeIndex: f.NodeIndex, Stuck: f.Stuck}})
		require.NoError(t, err)
		_, ok := detected[pfs.Fault{NodeIndex: f.NodeIndex, Stuck: f.Stuck}]
		require.True(t, ok, "pattern %v from dalg for fault %+v was not confirmed by pfs", pat, f)
	}
}

// TestGenerate_Untestable reuses the same redundant-branch circuit as
// the podem package: in AND(branch(pi), branch(pi)), one branch
// stuck-at-1 never changes the AND output — with the stem at 0 the
// other branch still holds the controlling 0, and with the stem at 1
// the stuck value equals the fault-free one.
func TestGenerate_Untestable(t *testing.T) {
	c := circuit.NewCircuit()
	_, err := c.AddNode(1, circuit.KindPI, false)
	require.NoError(t, err)
	_, err = c.AddNode(2, circuit.KindBranch, false)
	require.NoError(t, err)
	_, err = c.AddNode(3, circuit.KindBranch, false)
	require.NoError(t, err)
	_, err = c.AddNode(4, circuit.KindAND, true)
	require.NoError(t, err)
	require.NoError(t, c.Wire(1, 2))
	require.NoError(t, c.Wire(1, 3))
	require.NoError(t, c.Wire(2, 4))
	require.NoError(t, c.Wire(3, 4))
	require.NoError(t, c.Levelize())

	branchIdx, err := c.IndexOf(2)
	require.NoError(t, err)

	_, err = dalg.Generate(c, dalg.Fault{NodeIndex: branchIdx, Stuck: 1})
	require.ErrorIs(t, err, dalg.ErrUntestable)
}

func TestGenerate_UnknownFaultSite(t *testing.T) {
	c, _ := buildC17(t)
	_, err := dalg.Generate(c, dalg.Fault{NodeIndex: 999, Stuck: 0})
	require.ErrorIs(t, err, dalg.ErrUnknownFaultSite)
}

func TestGenerate_NotLevelized(t *testing.T) {
	c := circuit.NewCircuit()
	_, err := c.AddNode(1, circuit.KindPI, false)
	require.NoError(t, err)
	_, err = dalg.Generate(c, dalg.Fault{NodeIndex: 0, Stuck: 0})
	require.ErrorIs(t, err, dalg.ErrNotLevelized)
}
