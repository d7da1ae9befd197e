package circuit

import "sort"

// Levelize assigns Level to every node via the iterative fixed point of
// spec §4.1: PI levels start at 0, every other node starts at -1;
// repeatedly scan nodes at level -1 and set level = max(fanin levels)+1
// whenever every fanin is already levelled; stop when all nodes are
// levelled. If a full scan makes no progress, the graph is not a DAG
// (or references a dangling fanin) and Levelize fails with
// ErrMalformedCircuit — an InternalInvariantError per spec §7, since
// combinational circuits are never expected to cycle.
//
// On success, Order holds node indices sorted by Level ascending
// (stable on declaration order within a level) — the canonical
// evaluation order published to every other component.
func (c *Circuit) Levelize() error {
	n := len(c.Nodes)
	remaining := n
	for i := 0; i < n; i++ {
		if c.Nodes[i].Kind == KindPI {
			c.Nodes[i].Level = 0
			remaining--
		} else {
			c.Nodes[i].Level = -1
		}
	}

	for remaining > 0 {
		progressed := false
		for i := 0; i < n; i++ {
			if c.Nodes[i].Level != -1 {
				continue
			}
			allReady := true
			maxFaninLevel := -1
			for _, fi := range c.Nodes[i].Fanin {
				if c.Nodes[fi].Level == -1 {
					allReady = false
					break
				}
				if c.Nodes[fi].Level > maxFaninLevel {
					maxFaninLevel = c.Nodes[fi].Level
				}
			}
			if !allReady {
				continue
			}
			c.Nodes[i].Level = maxFaninLevel + 1
			remaining--
			progressed = true
		}
		if !progressed {
			c.levelized = false
			return ErrMalformedCircuit
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return c.Nodes[order[a]].Level < c.Nodes[order[b]].Level
	})
	c.Order = order
	c.levelized = true
	return nil
}

// MaxLevel returns the highest level assigned by Levelize, or -1 if the
// circuit has not been levelized or is empty.
func (c *Circuit) MaxLevel() int {
	if !c.levelized {
		return -1
	}
	max := -1
	for _, n := range c.Nodes {
		if n.Level > max {
			max = n.Level
		}
	}
	return max
}
