package frontier

import "github.com/katalvlaran/gridpath/gridgraph"

// Handle is a stable index into an Arena.
type Handle int

// NoParent is the Parent of the root (start) node.
const NoParent Handle = -1

// Node is the per-cell bookkeeping of one search run.
//
//   - G: accumulated cost from the start (one per move).
//   - H: heuristic estimate of the remaining cost (0 for uninformed strategies).
//   - F: G + H, the best-first priority key.
//   - Parent: handle of the node that discovered (or last improved) this one.
type Node struct {
	Pos       gridgraph.Coordinate
	G, H, F   int
	Parent    Handle
	processed bool
}

// Arena owns every Node of a run. Parents are stored as handles, so the
// search tree holds no pointers and can be copied or compared freely.
// An Arena is not safe for concurrent use; each run builds its own.
type Arena struct {
	nodes []Node
	index map[gridgraph.Coordinate]Handle
}

// NewArena returns an empty arena sized for capacity nodes.
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena{
		nodes: make([]Node, 0, capacity),
		index: make(map[gridgraph.Coordinate]Handle, capacity),
	}
}

// Add creates the node for pos with cost g and the given parent, and
// returns its handle. H is zero and F equals G until a strategy's
// OnDiscover fills in the heuristic.
// A position is added at most once per run; adding it again returns the
// existing handle unchanged.
func (a *Arena) Add(pos gridgraph.Coordinate, g int, parent Handle) Handle {
	if h, ok := a.index[pos]; ok {
		return h
	}
	h := Handle(len(a.nodes))
	a.nodes = append(a.nodes, Node{Pos: pos, G: g, F: g, Parent: parent})
	a.index[pos] = h
	return h
}

// Lookup returns the handle of the node created for pos, if any.
func (a *Arena) Lookup(pos gridgraph.Coordinate) (Handle, bool) {
	h, ok := a.index[pos]
	return h, ok
}

// Node returns a copy of the node behind h.
func (a *Arena) Node(h Handle) Node { return a.nodes[h] }

// Pos is shorthand for a.Node(h).Pos.
func (a *Arena) Pos(h Handle) gridgraph.Coordinate { return a.nodes[h].Pos }

// Len reports how many nodes were created so far.
func (a *Arena) Len() int { return len(a.nodes) }

// MarkProcessed freezes the node behind h. Processed nodes are never
// updated or reopened.
func (a *Arena) MarkProcessed(h Handle) { a.nodes[h].processed = true }

// Processed reports whether h was moved to the processed set.
func (a *Arena) Processed(h Handle) bool { return a.nodes[h].processed }

// setHeuristic records the estimate for a freshly discovered node.
func (a *Arena) setHeuristic(h Handle, est int) {
	n := &a.nodes[h]
	n.H = est
	n.F = n.G + est
}

// relax rewrites G, F and Parent of a frontier node when g is strictly
// lower than its current cost. Processed nodes are left untouched.
func (a *Arena) relax(h Handle, g int, parent Handle) bool {
	n := &a.nodes[h]
	if n.processed || g >= n.G {
		return false
	}
	n.G = g
	n.F = g + n.H
	n.Parent = parent
	return true
}
