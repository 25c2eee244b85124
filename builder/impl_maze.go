package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const methodMaze = "Maze"

// Maze returns a Constructor that carves a perfect maze.
//
// Cells with both coordinates odd are rooms; the cells between them are
// walls until the backtracker knocks them through. On an even side the end
// cell sits on a wall line, so one extra cell links it to the last room.
func Maze() Constructor {
	return func(g *gridgraph.Grid, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodMaze, ErrNeedRandSource)
		}
		n := g.Size()
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if err := wall(g, gridgraph.C(x, y)); err != nil {
					return fmt.Errorf("%s: %w", methodMaze, err)
				}
			}
		}

		// highest odd index inside the border
		last := n - 2
		if last%2 == 0 {
			last--
		}
		visited := make([][]bool, n)
		for i := range visited {
			visited[i] = make([]bool, n)
		}

		root := gridgraph.C(1, 1)
		visited[root.Y][root.X] = true
		stack := []gridgraph.Coordinate{root}
		candidates := make([]gridgraph.Coordinate, 0, 4)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			candidates = candidates[:0]
			for _, d := range gridgraph.CardinalOffsets() {
				c := gridgraph.C(cur.X+2*d[0], cur.Y+2*d[1])
				if c.X < 1 || c.Y < 1 || c.X > last || c.Y > last || visited[c.Y][c.X] {
					continue
				}
				candidates = append(candidates, c)
			}
			if len(candidates) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			next := candidates[cfg.rng.Intn(len(candidates))]
			between := gridgraph.C((cur.X+next.X)/2, (cur.Y+next.Y)/2)
			for _, c := range []gridgraph.Coordinate{between, next} {
				if err := open(g, c); err != nil {
					return fmt.Errorf("%s: %w", methodMaze, err)
				}
			}
			visited[next.Y][next.X] = true
			stack = append(stack, next)
		}

		if last != n-2 {
			if err := open(g, gridgraph.C(last, n-2)); err != nil {
				return fmt.Errorf("%s: %w", methodMaze, err)
			}
		}
		return nil
	}
}
