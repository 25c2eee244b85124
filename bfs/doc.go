// Package bfs runs breadth-first search over a gridgraph.Grid.
//
// What
//
//   - BFS finds a fewest-moves route between the grid's start and end cells
//     by processing cells in non-decreasing distance from the start.
//   - NewStepper exposes the same run one processed cell at a time.
//   - Distances computes the move count from one cell to every reachable cell.
//
// Why
//
//   - Under uniform move cost BFS is optimal, so its path length is the
//     reference the other strategies are measured against.
//
// Determinism
//
//	Neighbours are enqueued in the fixed Up, Down, Left, Right order and a
//	cell is marked visited when first enqueued, so both the route and the
//	processed count are reproducible.
//
// Complexity (N = grid side)
//
//   - Time:   O(N²)   (each cell enqueued at most once, four neighbours each)
//   - Memory: O(N²)
//
// Usage
//
//	res, err := bfs.BFS(ctx, g, search.WithDelay(0))
//	switch {
//	case errors.Is(err, search.ErrNoPath):
//	    // res.Found == false, res.ProcessedCount is still set
//	case err != nil:
//	    // invalid input or cancellation
//	}
//
// Errors
//
//   - search.ErrNilGrid, search.ErrInvalidInput, search.ErrOptionViolation
//   - search.ErrNoPath when the end cell is unreachable
//   - ctx.Err() or a wrapped OnVisit error on cancellation
package bfs
