package pfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SrikanthGadde/ee658/circuit"
	"github.com/SrikanthGadde/ee658/logic"
	"github.com/SrikanthGadde/ee658/pfs"
)

func buildC17(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.NewCircuit()
	for _, id := range []int{1, 2, 3, 6, 7} {
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
	return c
}

// serialDetect is an independent oracle: simulate the golden circuit,
// then simulate again forcing f.NodeIndex's value to f.Stuck and
// propagating forward in level order, and report whether any PO
// differs. This exercises the same correctness property PFS claims,
// via a wholly separate code path.
func serialDetect(c *circuit.Circuit, pat pfs.Pattern, f pfs.Fault) bool {
	golden := make([]logic.Value, c.NumNodes())
	faulty := make([]logic.Value, c.NumNodes())

	for i, piIdx := range c.PIs {
		v := logic.FromBit(pat[i])
		golden[piIdx] = v
		faulty[piIdx] = v
	}
	for _, idx := range c.Order {
		node := c.Nodes[idx]
		if node.Kind != circuit.KindPI {
			ins := make([]logic.Value, len(node.Fanin))
			for i, fi := range node.Fanin {
				ins[i] = golden[fi]
			}
			golden[idx] = logic.Eval(node.Kind, ins)

			finsF := make([]logic.Value, len(node.Fanin))
			for i, fi := range node.Fanin {
				finsF[i] = faulty[fi]
			}
			faulty[idx] = logic.Eval(node.Kind, finsF)
		}
		if idx == f.NodeIndex {
			faulty[idx] = logic.FromBit(f.Stuck)
		}
	}

	for _, poIdx := range c.POs {
		if golden[poIdx] != faulty[poIdx] {
			return true
		}
	}
	return false
}

func allNodeIDs() []int { return []int{1, 2, 3, 6, 7, 10, 11, 16, 19, 22, 23} }

func TestPFS_MatchesSerialOracle(t *testing.T) {
	c := buildC17(t)

	var faults []pfs.Fault
	for _, id := range allNodeIDs() {
		idx, err := c.IndexOf(id)
		require.NoError(t, err)
		faults = append(faults, pfs.Fault{NodeIndex: idx, Stuck: 0}, pfs.Fault{NodeIndex: idx, Stuck: 1})
	}

	var patterns []pfs.Pattern
	for bits := 0; bits < 32; bits++ {
		pat := make(pfs.Pattern, 5)
		for i := 0; i < 5; i++ {
			pat[i] = (bits >> uint(i)) & 1
		}
		patterns = append(patterns, pat)
	}

	detected, err := pfs.Simulate(c, patterns, faults)
	require.NoError(t, err)

	for _, f := range faults {
		wantDetected := false
		for _, pat := range patterns {
			if serialDetect(c, pat, f) {
				wantDetected = true
				break
			}
		}
		_, gotDetected := detected[f]
		require.Equal(t, wantDetected, gotDetected, "fault %+v", f)
	}
}

func TestPFS_MultiChunk(t *testing.T) {
	c := buildC17(t)

	var faults []pfs.Fault
	ids := allNodeIDs()
	for len(faults) < 70 {
		id := ids[len(faults)%len(ids)]
		idx, err := c.IndexOf(id)
		require.NoError(t, err)
		faults = append(faults, pfs.Fault{NodeIndex: idx, Stuck: len(faults) % 2})
	}
	require.Greater(t, len(faults), pfs.ChunkFaults, "test must exercise more than one chunk")

	patterns := []pfs.Pattern{{1, 1, 1, 1, 1}, {0, 0, 0, 0, 0}, {1, 0, 1, 0, 1}, {0, 1, 0, 1, 0}}

	detected, err := pfs.Simulate(c, patterns, faults)
	require.NoError(t, err)

	for _, f := range faults {
		wantDetected := false
		for _, pat := range patterns {
			if serialDetect(c, pat, f) {
				wantDetected = true
				break
			}
		}
		_, gotDetected := detected[f]
		require.Equal(t, wantDetected, gotDetected, "fault %+v", f)
	}
}

func TestPFS_PatternLengthMismatch(t *testing.T) {
	c := buildC17(t)
	_, err := pfs.Simulate(c, []pfs.Pattern{{1, 1}}, nil)
	require.ErrorIs(t, err, pfs.ErrPatternLength)
}
