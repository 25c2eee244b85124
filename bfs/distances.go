package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Unreached marks cells absent from the distance field.
const Unreached = -1

// queueItem pairs a cell with its distance from the source.
type queueItem struct {
	pos   gridgraph.Coordinate
	depth int
}

// walker encapsulates mutable state of one distance-field sweep.
type walker struct {
	grid  *gridgraph.Grid
	ctx   context.Context
	queue []queueItem
	head  int
	dist  [][]int
}

// Distances returns dist[y][x], the number of moves from "from" to (x, y),
// or Unreached for walls and cells cut off from "from".
// Returns search.ErrNilGrid, search.ErrInvalidInput for a bad source, or
// ctx.Err() when cancelled.
func Distances(ctx context.Context, g *gridgraph.Grid, from gridgraph.Coordinate) ([][]int, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	if err := g.CheckEndpoint(from); err != nil {
		return nil, fmt.Errorf("%w: source %v: %w", search.ErrInvalidInput, from, err)
	}

	n := g.Size()
	w := &walker{
		grid:  g,
		ctx:   ctx,
		queue: make([]queueItem, 0, n),
		dist:  make([][]int, n),
	}
	for y := range w.dist {
		w.dist[y] = make([]int, n)
		for x := range w.dist[y] {
			w.dist[y][x] = Unreached
		}
	}

	w.enqueue(from, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.dist, nil
}

// enqueue records pos at depth d and adds it to the queue.
func (w *walker) enqueue(pos gridgraph.Coordinate, d int) {
	w.dist[pos.Y][pos.X] = d
	w.queue = append(w.queue, queueItem{pos: pos, depth: d})
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		for _, d := range gridgraph.CardinalOffsets() {
			nb := item.pos.Add(d)
			if !w.grid.IsTraversable(nb.X, nb.Y) || w.dist[nb.Y][nb.X] != Unreached {
				continue
			}
			w.enqueue(nb, item.depth+1)
		}
	}
	return nil
}
