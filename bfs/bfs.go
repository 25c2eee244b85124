package bfs

import (
	"context"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// BFS searches g from its start marker to its end marker with a FIFO frontier.
// The returned path has the fewest moves of any route.
func BFS(ctx context.Context, g *gridgraph.Grid, opts ...search.Option) (*search.Result, error) {
	return search.Find(ctx, g, frontier.BreadthFirst, opts...)
}

// NewStepper prepares a breadth-first run between the grid markers
// without starting it.
func NewStepper(g *gridgraph.Grid, opts ...search.Option) (*search.Stepper, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	return search.NewStepper(g, g.Start(), g.End(), frontier.BreadthFirst, opts...)
}
