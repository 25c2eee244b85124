// Package gridgraph provides the N×N occupancy grid searched by the
// pathfinding engine. It supports:
//
//   - Four cell states: Free, Blocked, Start and End
//   - Four-directional adjacency in a fixed Up, Down, Left, Right order
//   - Editing operations that keep exactly one Start and one End cell
//   - Identification of connected regions of traversable cells
//
// Cells with state Blocked are walls; every other state is traversable.
package gridgraph

import "fmt"

// New builds a size×size grid of Free cells with the start and end markers
// placed at the given coordinates.
// Returns ErrEmptyGrid if size < 1, ErrOutOfBounds if a marker lies outside
// the grid, and ErrTerminalCount if start == end.
// Complexity: O(N²) time and memory.
func New(size int, start, end Coordinate) (*Grid, error) {
	if size < 1 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{size: size, cells: makeCells(size)}
	if !g.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(end.X, end.Y) {
		return nil, fmt.Errorf("%w: end %v", ErrOutOfBounds, end)
	}
	if start == end {
		return nil, fmt.Errorf("%w: start and end share cell %v", ErrTerminalCount, start)
	}
	g.start, g.end = start, end
	g.cells[start.Y][start.X] = Start
	g.cells[end.Y][end.X] = End

	return g, nil
}

// Default builds the editor's initial layout: an n×n empty grid with the
// start at (1,1) and the end at (n-2, n-2). n must be at least 4 so the two
// markers land on distinct cells.
func Default(n int) (*Grid, error) {
	if n < 4 {
		return nil, fmt.Errorf("%w: default layout needs n >= 4, got %d", ErrEmptyGrid, n)
	}
	return New(n, C(1, 1), C(n-2, n-2))
}

// From2D constructs a Grid from a non-empty, square 2D slice of integer codes
// (0 Free, 1 Blocked, 2 Start, 3 End), indexed values[y][x].
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNonSquare, ErrUnknownCell
// or ErrTerminalCount on malformed input.
// Complexity: O(N²) time and memory.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if w != h {
		return nil, fmt.Errorf("%w: got %d×%d", ErrNonSquare, w, h)
	}

	rows := make([][]CellState, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]CellState, w)
		for x, v := range values[y] {
			if v < int(Free) || v > int(End) {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownCell, v, x, y)
			}
			rows[y][x] = CellState(v)
		}
	}

	return fromStates(rows)
}

// fromStates validates the terminal invariant and adopts rows without copying.
func fromStates(rows [][]CellState) (*Grid, error) {
	g := &Grid{size: len(rows), cells: rows}
	var starts, ends int
	for y, row := range rows {
		for x, s := range row {
			switch s {
			case Start:
				starts++
				g.start = C(x, y)
			case End:
				ends++
				g.end = C(x, y)
			}
		}
	}
	if starts != 1 || ends != 1 {
		return nil, fmt.Errorf("%w: found %d start and %d end cells", ErrTerminalCount, starts, ends)
	}

	return g, nil
}

func makeCells(size int) [][]CellState {
	cells := make([][]CellState, size)
	for y := range cells {
		cells[y] = make([]CellState, size)
	}
	return cells
}

// Size returns N, the side length of the grid.
func (g *Grid) Size() int { return g.size }

// Start returns the start coordinate.
func (g *Grid) Start() Coordinate { return g.start }

// End returns the end coordinate.
func (g *Grid) End() Coordinate { return g.end }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// IsTraversable reports whether (x,y) is in bounds and not Blocked.
// Complexity: O(1).
func (g *Grid) IsTraversable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] != Blocked
}

// Cell returns the state at c, or ErrOutOfBounds.
func (g *Grid) Cell(c Coordinate) (CellState, error) {
	if !g.InBounds(c.X, c.Y) {
		return Free, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return g.cells[c.Y][c.X], nil
}

// CheckEndpoint verifies that c can serve as a search endpoint:
// it must be in bounds and not Blocked.
func (g *Grid) CheckEndpoint(c Coordinate) error {
	if !g.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if g.cells[c.Y][c.X] == Blocked {
		return fmt.Errorf("%w: %v", ErrBlocked, c)
	}
	return nil
}

// Walls returns every Blocked coordinate in row-major order.
func (g *Grid) Walls() []Coordinate {
	var walls []Coordinate
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y][x] == Blocked {
				walls = append(walls, C(x, y))
			}
		}
	}
	return walls
}

// Clone returns a deep copy of g. Searches run on clones so the caller may
// keep editing the original.
// Complexity: O(N²).
func (g *Grid) Clone() *Grid {
	cells := make([][]CellState, g.size)
	for y := range g.cells {
		cells[y] = make([]CellState, g.size)
		copy(cells[y], g.cells[y])
	}
	return &Grid{size: g.size, cells: cells, start: g.start, end: g.end}
}

// Ints exports the grid as integer codes, the inverse of From2D.
func (g *Grid) Ints() [][]int {
	out := make([][]int, g.size)
	for y, row := range g.cells {
		out[y] = make([]int, g.size)
		for x, s := range row {
			out[y][x] = int(s)
		}
	}
	return out
}

// index maps (x,y) to a row‑major index: y*N + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.size + x
}

// Coordinate converts a row‑major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return C(idx%g.size, idx/g.size)
}
