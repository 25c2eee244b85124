// Package astar runs best-first (A*) search over a gridgraph.Grid.
//
// Overview:
//
//   - Every discovered cell carries G (moves from the start), H (Manhattan
//     distance to the end) and F = G + H.
//   - The next cell is the frontier entry with the lowest F; ties go to the
//     entry inserted first.
//   - A frontier cell reached again with a strictly lower G is re-parented
//     in place. Processed cells are never reopened.
//   - The end cell is recognised when it is selected, so the returned route
//     has the fewest possible moves.
//
// When to use:
//
//   - Shortest routes with fewer processed cells than BFS on open grids.
//   - As the default strategy: an unrecognised selector maps to A*.
//
// Performance and complexity:
//
//   - Time:  O(N⁴) worst case on an N×N grid. The frontier is a linear scan,
//     so each selection costs O(frontier).
//   - Space: O(N²) for the arena and the frontier.
//
// Error handling (sentinel errors from package search):
//
//   - ErrNilGrid, ErrInvalidInput, ErrOptionViolation before the first step.
//   - ErrNoPath when the end cell is unreachable; the Result is still returned.
//   - ctx.Err() or the wrapped OnVisit error on cancellation.
package astar
