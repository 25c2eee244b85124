// Package search is the step-driven pathfinding engine over a gridgraph.Grid.
//
// What:
//
//	One driver loop serves every exploration order. A frontier.Strategy
//	decides which cell comes next; the driver owns the processed set, the
//	goal test, neighbour expansion and termination:
//
//	  - Stepper.Step performs exactly one iteration and returns a Snapshot.
//	  - Stepper.Snapshots ranges over the remaining steps (iter.Seq2).
//	  - Run drives a Stepper to completion with a pacing delay between steps.
//	  - Find is Run between the grid's own start and end markers.
//
// Lifecycle:
//
//	Running → Succeeded  the end cell was selected from the frontier
//	Running → Failed     the frontier emptied first (Run returns ErrNoPath)
//	Running → Cancelled  ctx ended, OnVisit failed, or Stop was called
//
// Goal test:
//
//	The end cell is recognised when it is selected, not when discovered.
//	For best-first this keeps the returned path optimal.
//
// Snapshots:
//
//	A non-terminal snapshot is taken after the current cell joins the
//	processed set and before its neighbours are expanded. Coordinates are
//	copies; callers may keep them. Discovered holds the cells pushed since
//	the previous snapshot, so consumers that turn the full sets off can
//	still follow the frontier.
//
// Complexity (n = grid cells):
//
//   - BFS, DFS: O(n) time, O(n) memory.
//   - A*: O(n²) time worst case (linear-scan frontier), O(n) memory.
//
// Errors:
//
//   - ErrNilGrid:         nil grid.
//   - ErrInvalidInput:    start or end out of bounds or blocked; unknown kind.
//   - ErrOptionViolation: negative delay.
//   - ErrNoPath:          end unreachable (Run/Find only; Result.Found=false).
//   - ctx.Err() or the wrapped OnVisit error on cancellation.
//
// Observability:
//
//	Every run is counted in the gridpath_search_* Prometheus collectors
//	from package metrics and logged at Debug level on the Options.Logger.
package search
