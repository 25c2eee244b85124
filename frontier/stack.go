package frontier

// Stack is the depth-first frontier: last discovered, first processed.
// Cells are marked visited on discovery, so each cell is pushed at most once.
// It finds some path when one exists, not necessarily the shortest.
type Stack struct {
	items []Handle
}

// NewStack returns an empty LIFO frontier.
func NewStack() *Stack { return &Stack{} }

// Kind implements Strategy.
func (s *Stack) Kind() Kind { return DepthFirst }

// Push places h on top.
func (s *Stack) Push(h Handle) { s.items = append(s.items, h) }

// Pop removes the top handle.
func (s *Stack) Pop() Handle {
	n := len(s.items) - 1
	h := s.items[n]
	s.items = s.items[:n]
	return h
}

// Empty implements Strategy.
func (s *Stack) Empty() bool { return len(s.items) == 0 }

// Len implements Strategy.
func (s *Stack) Len() int { return len(s.items) }

// Handles returns the stacked handles, bottom first.
func (s *Stack) Handles() []Handle {
	out := make([]Handle, len(s.items))
	copy(out, s.items)
	return out
}

// OnDiscover implements Strategy; depth-first uses no heuristic.
func (s *Stack) OnDiscover(Handle) {}

// OnImprove implements Strategy; discovered cells are never reconsidered.
func (s *Stack) OnImprove(_, _ Handle) bool { return false }
