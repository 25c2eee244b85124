package frontier

import "github.com/katalvlaran/gridpath/gridgraph"

// BestFirstFrontier orders the frontier by ascending F = G + H with the
// Manhattan distance to the goal as H.
//
// Selection is a linear scan over insertion order that returns the first
// element with minimal F, so ties resolve toward the earliest inserted node.
// A node found again with a strictly lower G is updated in place and
// keeps its position in the scan order.
//
// Complexity: Pop is O(frontier); Push, OnDiscover and OnImprove are O(1).
type BestFirstFrontier struct {
	arena *Arena
	goal  gridgraph.Coordinate
	open  []Handle
}

// NewBestFirst returns an empty priority frontier over arena aiming at goal.
func NewBestFirst(arena *Arena, goal gridgraph.Coordinate) *BestFirstFrontier {
	return &BestFirstFrontier{arena: arena, goal: goal}
}

// Kind implements Strategy.
func (b *BestFirstFrontier) Kind() Kind { return BestFirst }

// Push appends h to the scan order.
func (b *BestFirstFrontier) Push(h Handle) { b.open = append(b.open, h) }

// Pop removes and returns the first handle with the lowest F.
func (b *BestFirstFrontier) Pop() Handle {
	lowest := 0
	lowestF := b.arena.nodes[b.open[0]].F
	for i := 1; i < len(b.open); i++ {
		if f := b.arena.nodes[b.open[i]].F; f < lowestF {
			lowest, lowestF = i, f
		}
	}
	h := b.open[lowest]
	b.open = append(b.open[:lowest], b.open[lowest+1:]...)
	return h
}

// Empty implements Strategy.
func (b *BestFirstFrontier) Empty() bool { return len(b.open) == 0 }

// Len implements Strategy.
func (b *BestFirstFrontier) Len() int { return len(b.open) }

// Handles returns the open handles in scan order.
func (b *BestFirstFrontier) Handles() []Handle {
	out := make([]Handle, len(b.open))
	copy(out, b.open)
	return out
}

// OnDiscover sets H to the Manhattan distance to the goal and F = G + H.
func (b *BestFirstFrontier) OnDiscover(h Handle) {
	b.arena.setHeuristic(h, gridgraph.Manhattan(b.arena.nodes[h].Pos, b.goal))
}

// OnImprove re-parents h under parent when that lowers its G.
func (b *BestFirstFrontier) OnImprove(h, parent Handle) bool {
	return b.arena.relax(h, b.arena.nodes[parent].G+1, parent)
}
