package core

import "fmt"

// ConfigurationError reports an invalid startup dimension or setting.
type ConfigurationError struct {
	Field string
	Value int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%d", e.Field, e.Value)
}

// Cell is a single board square. Neighbors is scratch space for the
// transition pass and is zero between generations.
type Cell struct {
	Row, Col  int
	Alive     bool
	NextAlive bool
	Neighbors int
}

// Grid stores a fixed rows*cols board of cells in row-major order.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates a board with every cell dead.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 {
		return nil, &ConfigurationError{Field: "rows", Value: rows}
	}
	if cols <= 0 {
		return nil, &ConfigurationError{Field: "cols", Value: cols}
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for i := range g.cells {
		g.cells[i].Row = i / cols
		g.cells[i].Col = i % cols
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the board dimensions with W as columns and H as rows.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) addresses a cell on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Alive reports whether the cell is alive. Out-of-range lookups read as dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[g.Index(row, col)].Alive
}

// Set forces a cell's state, keeping NextAlive in sync. Out-of-range is a no-op.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		return
	}
	c := &g.cells[g.Index(row, col)]
	c.Alive = alive
	c.NextAlive = alive
}

// Toggle flips a cell as an edit. The edit is stable: NextAlive follows Alive
// so it survives until the rules say otherwise. Out-of-range is a no-op.
func (g *Grid) Toggle(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	c := &g.cells[g.Index(row, col)]
	c.Alive = !c.Alive
	c.NextAlive = c.Alive
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Alive = false
		g.cells[i].NextAlive = false
	}
}

// Commit promotes every cell's NextAlive to Alive.
func (g *Grid) Commit() {
	for i := range g.cells {
		g.cells[i].Alive = g.cells[i].NextAlive
	}
}

// Clone returns an independent copy with scratch counts zeroed.
func (g *Grid) Clone() *Grid {
	cp := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	for i := range cp.cells {
		cp.cells[i].Neighbors = 0
	}
	return cp
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Alive {
			n++
		}
	}
	return n
}

// Equal reports whether both boards have the same shape and live cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i].Alive != other.cells[i].Alive {
			return false
		}
	}
	return true
}

// Randomize seeds each cell alive with the given probability.
func (g *Grid) Randomize(rng *RNG, density float64) {
	for i := range g.cells {
		alive := rng.Chance(density)
		g.cells[i].Alive = alive
		g.cells[i].NextAlive = alive
		g.cells[i].Neighbors = 0
	}
}
