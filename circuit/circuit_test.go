package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SrikanthGadde/ee658/circuit"
)

// buildC17 wires up the classic ISCAS c17 benchmark:
// PIs {1,2,3,6,7}, internal NAND gates {10,11,16,19}, output NAND
// gates {22,23}; no fanout-branch nodes (stems feed gates directly).
// Structure (ids match the ISCAS c17 netlist):
//
//	10 = NAND(1,3)
//	11 = NAND(3,6)
//	16 = NAND(2,11)
//	19 = NAND(11,7)
//	22 = NAND(10,16)
//	23 = NAND(16,19)
func buildC17(t *testing.T) *circuit.Circuit {
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
	return c
}

func TestLevelize_C17(t *testing.T) {
	c := buildC17(t)
	require.NoError(t, c.Levelize())

	idxOf := func(id int) int {
		idx, err := c.IndexOf(id)
		require.NoError(t, err)
		return idx
	}

	for _, id := range []int{1, 2, 3, 6, 7} {
		assert.Equal(t, 0, c.Node(idxOf(id)).Level, "PI %d should be level 0", id)
	}
	assert.Equal(t, 1, c.Node(idxOf(10)).Level)
	assert.Equal(t, 1, c.Node(idxOf(11)).Level)
	assert.Equal(t, 2, c.Node(idxOf(16)).Level)
	assert.Equal(t, 2, c.Node(idxOf(19)).Level)
	assert.Equal(t, 3, c.Node(idxOf(22)).Level)
	assert.Equal(t, 3, c.Node(idxOf(23)).Level)

	// Order must be non-decreasing in level.
	last := -1
	for _, idx := range c.Order {
		lvl := c.Node(idx).Level
		assert.GreaterOrEqual(t, lvl, last)
		last = lvl
	}
}

func TestLevelize_MalformedCircuit(t *testing.T) {
	c := circuit.NewCircuit()
	_, err := c.AddNode(1, circuit.KindPI, false)
	require.NoError(t, err)
	_, err = c.AddNode(2, circuit.KindAND, false)
	require.NoError(t, err)
	_, err = c.AddNode(3, circuit.KindAND, true)
	require.NoError(t, err)
	// Introduce a cycle: 2's fanin includes 3, 3's fanin includes 2.
	require.NoError(t, c.Wire(1, 2))
	require.NoError(t, c.Wire(3, 2))
	require.NoError(t, c.Wire(2, 3))

	err = c.Levelize()
	assert.ErrorIs(t, err, circuit.ErrMalformedCircuit)
}

func TestAddNode_DuplicateID(t *testing.T) {
	c := circuit.NewCircuit()
	_, err := c.AddNode(5, circuit.KindPI, false)
	require.NoError(t, err)
	_, err = c.AddNode(5, circuit.KindPI, false)
	assert.ErrorIs(t, err, circuit.ErrDuplicateID)
}

func TestWire_UnknownID(t *testing.T) {
	c := circuit.NewCircuit()
	_, err := c.AddNode(1, circuit.KindPI, false)
	require.NoError(t, err)
	err = c.Wire(1, 999)
	assert.ErrorIs(t, err, circuit.ErrUnknownID)
}

func TestClear_Idempotent(t *testing.T) {
	c := circuit.NewCircuit()
	c.Clear()
	assert.Equal(t, 0, c.NumNodes())

	_, err := c.AddNode(1, circuit.KindPI, false)
	require.NoError(t, err)
	c.Clear()
	assert.Equal(t, 0, c.NumNodes())
	c.Clear() // second call on an already-empty circuit is a no-op
	assert.Equal(t, 0, c.NumNodes())
}

func TestClone_Independence(t *testing.T) {
	c := buildC17(t)
	require.NoError(t, c.Levelize())
	clone := c.Clone()

	idx, err := clone.IndexOf(10)
	require.NoError(t, err)
	clone.Nodes[idx].Fanin = append(clone.Nodes[idx].Fanin, 0)

	origIdx, err := c.IndexOf(10)
	require.NoError(t, err)
	assert.Len(t, c.Node(origIdx).Fanin, 2, "mutating the clone must not alias the original")
}
