package frontier

// Queue is the breadth-first frontier: first discovered, first processed.
// A cell is considered visited as soon as it is enqueued and is never
// reconsidered, which yields shortest paths in edge count.
type Queue struct {
	items []Handle
	head  int
}

// NewQueue returns an empty FIFO frontier.
func NewQueue() *Queue { return &Queue{} }

// Kind implements Strategy.
func (q *Queue) Kind() Kind { return BreadthFirst }

// Push enqueues h at the back.
func (q *Queue) Push(h Handle) { q.items = append(q.items, h) }

// Pop dequeues the front handle.
func (q *Queue) Pop() Handle {
	h := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return h
}

// Empty implements Strategy.
func (q *Queue) Empty() bool { return q.head >= len(q.items) }

// Len implements Strategy.
func (q *Queue) Len() int { return len(q.items) - q.head }

// Handles returns the queued handles, front first.
func (q *Queue) Handles() []Handle {
	out := make([]Handle, q.Len())
	copy(out, q.items[q.head:])
	return out
}

// OnDiscover implements Strategy; breadth-first uses no heuristic.
func (q *Queue) OnDiscover(Handle) {}

// OnImprove implements Strategy; enqueued cells are never reconsidered.
func (q *Queue) OnImprove(_, _ Handle) bool { return false }
