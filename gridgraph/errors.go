package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNonSquare indicates a rectangular grid whose width differs from its height.
	ErrNonSquare = errors.New("gridgraph: grid must be square (N×N)")
	// ErrOutOfBounds indicates a coordinate outside [0, N) on either axis.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBlocked indicates a coordinate that refers to a Blocked cell.
	ErrBlocked = errors.New("gridgraph: cell is blocked")
	// ErrCellOccupied indicates an edit that would overwrite the start or end marker.
	ErrCellOccupied = errors.New("gridgraph: cell is occupied by a start or end marker")
	// ErrTerminalCount indicates a grid without exactly one Start and one End cell.
	ErrTerminalCount = errors.New("gridgraph: grid must contain exactly one start and one end cell")
	// ErrUnknownCell indicates an integer code or character that maps to no CellState.
	ErrUnknownCell = errors.New("gridgraph: unknown cell value")
)
