// Package dfs runs depth-first search over a gridgraph.Grid.
//
// Key features:
//   - DFS(ctx, g, opts...): search from the start marker to the end marker
//     with a LIFO frontier
//   - NewStepper: the same run, pulled one processed cell at a time
//   - Cancellation via context.Context and OnVisit errors
//
// A cell is marked visited when first pushed, so it is pushed at most once
// and the route is fixed by the first discovery. The route is valid but
// usually longer than the shortest one.
//
// Complexity:
//
//   - Time:   O(N²) on an N×N grid.
//   - Memory: O(N²) for the arena and the stack.
//
// Errors:
//
//   - search.ErrNilGrid         if g is nil.
//   - search.ErrInvalidInput    if an endpoint is out of bounds or blocked.
//   - search.ErrNoPath          if the end cell is unreachable.
//   - context.Canceled          if ctx is done.
//   - hook errors               propagated from OnVisit.
package dfs

import (
	"context"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// DFS searches g from its start marker to its end marker, always
// processing the most recently discovered cell next.
func DFS(ctx context.Context, g *gridgraph.Grid, opts ...search.Option) (*search.Result, error) {
	return search.Find(ctx, g, frontier.DepthFirst, opts...)
}

// NewStepper prepares a depth-first run between the grid markers.
func NewStepper(g *gridgraph.Grid, opts ...search.Option) (*search.Stepper, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	return search.NewStepper(g, g.Start(), g.End(), frontier.DepthFirst, opts...)
}
