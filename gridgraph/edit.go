package gridgraph

import "fmt"

// SetWall marks c as Blocked. Walls never overwrite the start or end
// marker; such edits return ErrCellOccupied and leave the grid unchanged.
func (g *Grid) SetWall(c Coordinate) error {
	s, err := g.Cell(c)
	if err != nil {
		return err
	}
	if s == Start || s == End {
		return fmt.Errorf("%w: %v is %s", ErrCellOccupied, c, s)
	}
	g.cells[c.Y][c.X] = Blocked
	return nil
}

// ClearCell turns a wall at c back into a Free cell.
// Clearing a Free cell is a no-op; the markers cannot be cleared.
func (g *Grid) ClearCell(c Coordinate) error {
	s, err := g.Cell(c)
	if err != nil {
		return err
	}
	if s == Start || s == End {
		return fmt.Errorf("%w: %v is %s", ErrCellOccupied, c, s)
	}
	g.cells[c.Y][c.X] = Free
	return nil
}

// MoveStart relocates the start marker to c. The target must be in bounds,
// not a wall, and not the end cell.
func (g *Grid) MoveStart(c Coordinate) error {
	return g.moveMarker(c, Start, &g.start)
}

// MoveEnd relocates the end marker to c. The target must be in bounds,
// not a wall, and not the start cell.
func (g *Grid) MoveEnd(c Coordinate) error {
	return g.moveMarker(c, End, &g.end)
}

func (g *Grid) moveMarker(c Coordinate, marker CellState, pos *Coordinate) error {
	s, err := g.Cell(c)
	if err != nil {
		return err
	}
	switch {
	case s == Blocked:
		return fmt.Errorf("%w: %v", ErrBlocked, c)
	case s != Free && s != marker:
		return fmt.Errorf("%w: %v is %s", ErrCellOccupied, c, s)
	}
	g.cells[pos.Y][pos.X] = Free
	g.cells[c.Y][c.X] = marker
	*pos = c
	return nil
}

// ClearWalls resets every wall to Free while keeping the start and end markers.
func (g *Grid) ClearWalls() {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] == Blocked {
				g.cells[y][x] = Free
			}
		}
	}
}
