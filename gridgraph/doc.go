// Package gridgraph models the N×N occupancy grid that the pathfinding
// engine searches.
//
// What:
//
//   - Grid holds N×N CellStates (Free, Blocked, Start, End) with exactly one
//     Start and one End cell at all times.
//   - Coordinates are 0-indexed (X column, Y row) and bounded by [0, N).
//   - IsTraversable(x, y) is true iff (x, y) is in bounds and not Blocked.
//   - CardinalOffsets lists the four neighbour offsets in the fixed
//     exploration order Up, Down, Left, Right; neighbours are computed by the
//     search driver, never stored on the grid.
//   - Editing operations (SetWall, ClearCell, MoveStart, MoveEnd, ClearWalls)
//     follow the painting rules: walls never overwrite the markers and the
//     markers never land on walls or on each other.
//   - Components / Connected flood-fill traversable cells.
//
// Why:
//
//   - Searches take a Clone, so a run never observes concurrent edits.
//   - Connected is a strategy-independent oracle for solvability tests.
//
// Complexity:
//
//   - IsTraversable, InBounds, Cell:  O(1).
//   - Clone, From2D, Parse:           O(N²) time and memory.
//   - Components, Connected:          O(N²·4), Memory: O(N²).
//
// Text format:
//
//	S..#
//	.#..
//	.#..
//	...E
//
// '.' Free, '#' Blocked, 'S' Start, 'E' End. From2D accepts the integer codes
// 0, 1, 2 and 3 for the same states.
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonSquare:      width differs from height.
//   - ErrOutOfBounds:    coordinate outside the grid.
//   - ErrBlocked:        coordinate refers to a wall.
//   - ErrCellOccupied:   edit would overwrite a marker.
//   - ErrTerminalCount:  not exactly one Start and one End.
//   - ErrUnknownCell:    unknown integer code or character.
package gridgraph
