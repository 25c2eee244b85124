// Package frontier defines the search node arena and the interchangeable
// exploration orders used by the search driver.
package frontier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrUnknownKind is returned by New for a Kind outside the defined set.
var ErrUnknownKind = errors.New("frontier: unknown strategy kind")

// Kind selects a frontier strategy.
type Kind int

const (
	// BestFirst orders the frontier by ascending F (A* with Manhattan H).
	// It is the zero value and therefore the default.
	BestFirst Kind = iota
	// BreadthFirst is a FIFO queue.
	BreadthFirst
	// DepthFirst is a LIFO stack.
	DepthFirst
)

// Kinds lists every strategy in display order.
func Kinds() []Kind { return []Kind{BestFirst, BreadthFirst, DepthFirst} }

// ParseKind maps the selector strings "bfs", "dfs" and "astar" (case-
// insensitive, surrounding space ignored) to a Kind. Any other value,
// including the empty string, selects BestFirst.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BreadthFirst
	case "dfs":
		return DepthFirst
	default:
		return BestFirst
	}
}

// String returns the selector accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case BestFirst:
		return "astar"
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DisplayName returns the human label used in result tables.
func (k Kind) DisplayName() string {
	switch k {
	case BestFirst:
		return "A*"
	case BreadthFirst:
		return "BFS"
	case DepthFirst:
		return "DFS"
	default:
		return k.String()
	}
}

// Strategy is an exploration order over the nodes of one Arena.
//
// The driver owns control flow; a Strategy only decides which node comes
// next and whether a rediscovered node may be improved:
//
//   - Push adds a discovered handle to the frontier.
//   - Pop selects and removes the next handle. Callers check Empty first.
//   - OnDiscover fills in per-strategy fields of a new node (heuristic).
//   - OnImprove offers a cheaper parent for a node still in the frontier and
//     reports whether the node changed. Uninformed strategies never change.
//   - Handles lists the frontier in the strategy's own order.
type Strategy interface {
	Kind() Kind
	Push(h Handle)
	Pop() Handle
	Empty() bool
	Len() int
	Handles() []Handle
	OnDiscover(h Handle)
	OnImprove(h, parent Handle) bool
}

// New returns a fresh Strategy of kind k aiming at goal. Only best-first
// reads the arena, for its cost fields.
func New(k Kind, arena *Arena, goal gridgraph.Coordinate) (Strategy, error) {
	switch k {
	case BreadthFirst:
		return NewQueue(), nil
	case DepthFirst:
		return NewStack(), nil
	case BestFirst:
		return NewBestFirst(arena, goal), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}
