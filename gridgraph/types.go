// Package gridgraph defines core types, cell states and coordinates
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// CellState is the occupancy of a single grid cell.
// The integer values match the codes accepted by From2D.
type CellState int

const (
	// Free is a walkable cell.
	Free CellState = iota
	// Blocked is a wall; it is never traversable.
	Blocked
	// Start marks the unique start cell.
	Start
	// End marks the unique end (goal) cell.
	End
)

// String returns a lowercase name for the state.
func (s CellState) String() string {
	switch s {
	case Free:
		return "free"
	case Blocked:
		return "blocked"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Rune returns the character used by the text codec for s.
func (s CellState) Rune() rune {
	switch s {
	case Blocked:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return '.'
	}
}

// stateFromRune is the inverse of CellState.Rune.
func stateFromRune(r rune) (CellState, error) {
	switch r {
	case '.':
		return Free, nil
	case '#':
		return Blocked, nil
	case 'S', 's':
		return Start, nil
	case 'E', 'e':
		return End, nil
	default:
		return Free, fmt.Errorf("%w: %q", ErrUnknownCell, r)
	}
}

// Coordinate is an (X, Y) cell position; X is the column, Y is the row.
// Equality is by value so Coordinates can be used as map keys.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate { return Coordinate{X: x, Y: y} }

// Add returns c shifted by the offset d.
func (c Coordinate) Add(d [2]int) Coordinate {
	return Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
}

// String formats c as "x,y", the vertex ID format used across the repo.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Manhattan returns |dx| + |dy| between a and b.
// It is admissible and consistent for 4-directional uniform-cost movement.
// Complexity: O(1).
func Manhattan(a, b Coordinate) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Adjacent reports whether a and b differ by exactly one cardinal step.
func Adjacent(a, b Coordinate) bool {
	return Manhattan(a, b) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// cardinalOffsets lists neighbour offsets in the fixed exploration order:
// Up, Down, Left, Right. Diagonal movement is not supported.
var cardinalOffsets = [4][2]int{
	{0, -1}, // Up
	{0, 1},  // Down
	{-1, 0}, // Left
	{1, 0},  // Right
}

// CardinalOffsets returns the four neighbour offsets in exploration order
// (Up, Down, Left, Right). The returned array is a copy.
func CardinalOffsets() [4][2]int {
	return cardinalOffsets
}

// Grid is an N×N occupancy map with exactly one Start and one End cell.
// cells[y][x] holds the state of (x, y). A Grid handed to a search is
// deep-copied first, so a run never observes later edits.
type Grid struct {
	size  int
	cells [][]CellState
	start Coordinate
	end   Coordinate
}
