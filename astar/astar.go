package astar

import (
	"context"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// AStar searches g from its start marker to its end marker, ordering the
// frontier by F = G + Manhattan(cell, end).
func AStar(ctx context.Context, g *gridgraph.Grid, opts ...search.Option) (*search.Result, error) {
	return search.Find(ctx, g, frontier.BestFirst, opts...)
}

// NewStepper prepares a best-first run between the grid markers.
func NewStepper(g *gridgraph.Grid, opts ...search.Option) (*search.Stepper, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	return search.NewStepper(g, g.Start(), g.End(), frontier.BestFirst, opts...)
}

// LowerBound returns the heuristic estimate from start to end on g.
// No route can be shorter; on a wall-free grid the route is exactly this long.
func LowerBound(g *gridgraph.Grid) int {
	return gridgraph.Manhattan(g.Start(), g.End())
}
