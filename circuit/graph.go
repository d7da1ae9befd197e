package circuit

import "fmt"

// Circuit is the arena-of-nodes gate graph. It is built once by the
// netlist reader, levelized once, and reused across every command; a
// fresh Circuit is produced by Clear or a new NewCircuit call on
// reload (spec §3 Lifecycle).
type Circuit struct {
	// Nodes is the node arena; Nodes[i].Index == i always holds.
	Nodes []Node

	// idIndex maps external netlist id -> dense index, since ids are
	// not necessarily dense or contiguous (spec §6).
	idIndex map[int]int

	// PIs holds node indices of primary inputs, in declaration order —
	// this order is the canonical PI order for pattern files (spec §6).
	PIs []int

	// POs holds node indices of primary outputs, in declaration order.
	POs []int

	// Order is the canonical evaluation order (node indices sorted by
	// Level ascending, stable on declaration order within a level).
	// Populated by Levelize; nil beforehand.
	Order []int

	levelized bool
}

// NewCircuit returns an empty Circuit ready for AddNode calls.
func NewCircuit() *Circuit {
	return &Circuit{idIndex: make(map[int]int)}
}

// NumNodes returns the number of nodes in the arena.
func (c *Circuit) NumNodes() int { return len(c.Nodes) }

// IndexOf returns the dense index for external netlist id, and
// ErrUnknownID if it was never added.
func (c *Circuit) IndexOf(id int) (int, error) {
	idx, ok := c.idIndex[id]
	if !ok {
		return -1, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	return idx, nil
}

// AddNode appends a new node with external id, kind, and isOutput flag
// to the arena and returns its dense index. Fanin/Fanout are wired
// afterward via Wire, since the self format may reference a fanin id
// before it has been read (GATE/PO records list fanin ids inline, but
// BRCH records only reference one fanin already seen in this format —
// Wire still validates both directions regardless of reader order).
func (c *Circuit) AddNode(id int, kind Kind, isOutput bool) (int, error) {
	if _, exists := c.idIndex[id]; exists {
		return -1, fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	idx := len(c.Nodes)
	c.Nodes = append(c.Nodes, Node{
		ID:    id,
		Index: idx,
		Kind:  kind,
		Level: -1,
	})
	c.Nodes[idx].IsOutput = isOutput
	c.idIndex[id] = idx
	if kind == KindPI {
		c.PIs = append(c.PIs, idx)
	}
	if isOutput {
		c.POs = append(c.POs, idx)
	}
	c.levelized = false
	return idx, nil
}

// Wire records that fromID feeds into toID: fromID is appended to
// toID's Fanin, and toID is appended to fromID's Fanout, keeping the
// adjacency symmetric per spec §3's invariant.
func (c *Circuit) Wire(fromID, toID int) error {
	fromIdx, err := c.IndexOf(fromID)
	if err != nil {
		return err
	}
	toIdx, err := c.IndexOf(toID)
	if err != nil {
		return err
	}
	c.Nodes[toIdx].Fanin = append(c.Nodes[toIdx].Fanin, fromIdx)
	c.Nodes[fromIdx].Fanout = append(c.Nodes[fromIdx].Fanout, toIdx)
	c.levelized = false
	return nil
}

// Node returns the node at dense index idx by value copy; callers
// needing to mutate topology use Circuit's own methods.
func (c *Circuit) Node(idx int) Node { return c.Nodes[idx] }

// Clone returns a deep copy of c, including per-node Fanin/Fanout
// slices, so mutating the clone never aliases the original's arena.
func (c *Circuit) Clone() *Circuit {
	clone := &Circuit{
		idIndex:   make(map[int]int, len(c.idIndex)),
		Nodes:     make([]Node, len(c.Nodes)),
		PIs:       append([]int(nil), c.PIs...),
		POs:       append([]int(nil), c.POs...),
		levelized: c.levelized,
	}
	for id, idx := range c.idIndex {
		clone.idIndex[id] = idx
	}
	for i, n := range c.Nodes {
		clone.Nodes[i] = n
		clone.Nodes[i].Fanin = append([]int(nil), n.Fanin...)
		clone.Nodes[i].Fanout = append([]int(nil), n.Fanout...)
	}
	if c.Order != nil {
		clone.Order = append([]int(nil), c.Order...)
	}
	return clone
}

// Clear resets c to an empty circuit. Calling Clear on an already-
// empty Circuit is a no-op (spec §9 Design Note).
func (c *Circuit) Clear() {
	if len(c.Nodes) == 0 && len(c.idIndex) == 0 {
		return
	}
	c.Nodes = nil
	c.idIndex = make(map[int]int)
	c.PIs = nil
	c.POs = nil
	c.Order = nil
	c.levelized = false
}

// Levelized reports whether Levelize has succeeded since the last
// structural mutation (AddNode/Wire/Clear).
func (c *Circuit) Levelized() bool { return c.levelized }
