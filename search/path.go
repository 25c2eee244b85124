package search

import (
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Reconstruct follows parent handles from h back to the root and returns
// the positions in start-to-h order, root excluded. A root handle yields
// an empty, non-nil slice.
func Reconstruct(a *frontier.Arena, h frontier.Handle) []gridgraph.Coordinate {
	path := []gridgraph.Coordinate{}
	for n := a.Node(h); n.Parent != frontier.NoParent; n = a.Node(n.Parent) {
		path = append(path, n.Pos)
	}
	// reverse to get start → h
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
