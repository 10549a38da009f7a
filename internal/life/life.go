// Package life implements Conway's Game of Life (B3/S23) on an edge-bounded
// core.Grid. Cells beyond the border count as dead.
package life

import "lifeboard/internal/core"

var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Step advances the grid by one generation and commits it.
func Step(g *core.Grid) {
	Advance(g)
	g.Commit()
}

// Advance computes every cell's NextAlive from the current live cells
// without committing. Neighbor counts are zero again on return.
func Advance(g *core.Grid) {
	countNeighbors(g, nil)
	applyRule(g)
}

// countNeighbors scatters each live cell into the counts of its in-range
// neighbors. order, when non-nil, is the permutation of linear indices to
// visit; the result does not depend on it.
func countNeighbors(g *core.Grid, order []int) {
	cells := g.Cells()
	visit := func(idx int) {
		c := &cells[idx]
		if !c.Alive {
			return
		}
		for _, off := range offsets {
			r, col := c.Row+off[0], c.Col+off[1]
			if !g.InBounds(r, col) {
				continue
			}
			cells[g.Index(r, col)].Neighbors++
		}
	}
	if order == nil {
		for i := range cells {
			visit(i)
		}
		return
	}
	for _, idx := range order {
		visit(idx)
	}
}

func applyRule(g *core.Grid) {
	cells := g.Cells()
	for i := range cells {
		c := &cells[i]
		switch {
		case !c.Alive && c.Neighbors == 3:
			c.NextAlive = true
		case c.Alive && (c.Neighbors < 2 || c.Neighbors > 3):
			c.NextAlive = false
		}
		c.Neighbors = 0
	}
}
