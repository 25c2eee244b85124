package gridgraph

import (
	"container/list"
)

// MinBreach finds the fewest walls that must be cleared so that a
// 4-directional route joins the grid's start and end cells.
// Returns the route as coordinates from start to end (inclusive) together
// with the number of walls on it. A cost of 0 means the grid is already
// solvable.
//
// Behavior:
//  1. 0–1 BFS from the start cell:
//     • Moving into a traversable cell → cost 0
//     • Moving into a wall             → cost 1
//  2. Stop when the end cell is reached.
//  3. Reconstruct the route via the predecessor table.
//
// The end is always reachable this way, so the method never fails.
//
// Complexity: O(N²) time with the deque, Memory: O(N²) for distance and prev.
func (g *Grid) MinBreach() (route []Coordinate, walls int) {
	n := g.size * g.size
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	src, dst := g.index(g.start.X, g.start.Y), g.index(g.end.X, g.end.Y)
	dq := list.New()
	dist[src] = 0
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		uc := g.Coordinate(u)
		for _, d := range cardinalOffsets {
			vc := uc.Add(d)
			if !g.InBounds(vc.X, vc.Y) {
				continue
			}
			v := g.index(vc.X, vc.Y)
			step := 0
			if g.cells[vc.Y][vc.X] == Blocked {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := dst; at >= 0; at = prev[at] {
		route = append(route, g.Coordinate(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, dist[dst]
}
