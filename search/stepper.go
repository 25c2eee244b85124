package search

import (
	"context"
	"fmt"
	"iter"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/metrics"
)

// Stepper advances one search run a single processed cell at a time.
// It is not safe for concurrent use and cannot be restarted once terminal.
type Stepper struct {
	grid     *gridgraph.Grid
	start    gridgraph.Coordinate
	goal     gridgraph.Coordinate
	kind     frontier.Kind
	opts     Options
	arena    *frontier.Arena
	strategy frontier.Strategy

	processed  []frontier.Handle
	discovered []gridgraph.Coordinate
	steps      int
	began      time.Time
	state      State
	last       Snapshot
	err        error
}

// NewStepper validates the input and seeds the frontier with start.
// The grid is copied, so later edits to g do not affect the run.
// Returns ErrNilGrid, ErrOptionViolation, or ErrInvalidInput wrapping the
// gridgraph cause for an out-of-bounds or blocked endpoint.
func NewStepper(g *gridgraph.Grid, start, end gridgraph.Coordinate, kind frontier.Kind, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// 1. Options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Endpoints
	if err := g.CheckEndpoint(start); err != nil {
		return nil, fmt.Errorf("%w: start %v: %w", ErrInvalidInput, start, err)
	}
	if err := g.CheckEndpoint(end); err != nil {
		return nil, fmt.Errorf("%w: end %v: %w", ErrInvalidInput, end, err)
	}

	// 3. Strategy over a fresh arena
	n := g.Size()
	arena := frontier.NewArena(n * n)
	strategy, err := frontier.New(kind, arena, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 4. Seed
	root := arena.Add(start, 0, frontier.NoParent)
	strategy.OnDiscover(root)
	strategy.Push(root)

	return &Stepper{
		grid:       g.Clone(),
		start:      start,
		goal:       end,
		kind:       kind,
		opts:       o,
		arena:      arena,
		strategy:   strategy,
		processed:  make([]frontier.Handle, 0, n*n),
		discovered: []gridgraph.Coordinate{start},
		state:      Running,
	}, nil
}

// Kind returns the strategy this stepper runs.
func (s *Stepper) Kind() frontier.Kind { return s.kind }

// State returns the current lifecycle state.
func (s *Stepper) State() State { return s.state }

// Grid returns the stepper's private copy of the grid.
func (s *Stepper) Grid() *gridgraph.Grid { return s.grid }

// Err returns the cause of a Cancelled run, nil otherwise.
func (s *Stepper) Err() error { return s.err }

// Step performs one iteration:
//
//  0. stop with Cancelled if ctx is done;
//  1. stop with Failed if the frontier is empty;
//  2. select the next cell;
//  3. stop with Succeeded if it is the end cell;
//  4. move it to the processed set;
//  5. build the snapshot and call OnVisit;
//  6. expand its traversable cardinal neighbours.
//
// Once terminal, Step keeps returning the terminal snapshot and the error
// that caused cancellation, if any.
func (s *Stepper) Step(ctx context.Context) (Snapshot, error) {
	if s.state.Terminal() {
		return s.last, s.err
	}
	if s.steps == 0 {
		s.began = time.Now()
		s.opts.Logger.Debug("search started",
			zap.String("algorithm", s.kind.String()),
			zap.Stringer("start", s.start),
			zap.Stringer("end", s.goal),
			zap.Int("grid_size", s.grid.Size()),
		)
	}

	// 0. Cancellation
	if err := ctx.Err(); err != nil {
		return s.cancel(err)
	}
	// 1. Exhausted frontier
	s.steps++
	metrics.SearchStepsTotal.WithLabelValues(s.kind.String()).Inc()
	if s.strategy.Empty() {
		return s.finish(Failed, s.last.Current), nil
	}

	// 2. Select
	h := s.strategy.Pop()
	cur := s.arena.Pos(h)

	// 3. Goal test on selection
	if cur == s.goal {
		return s.finish(Succeeded, cur, h), nil
	}

	// 4. Processed set
	s.arena.MarkProcessed(h)
	s.processed = append(s.processed, h)

	// 5. Observe
	snap := s.snapshot(Running, cur)
	if s.opts.OnVisit != nil {
		if err := s.opts.OnVisit(snap); err != nil {
			return s.cancel(fmt.Errorf("search: OnVisit error at %v: %w", cur, err))
		}
	}

	// 6. Expand
	s.expand(h)
	s.last = snap

	return snap, nil
}

// Snapshots returns an iterator over the remaining steps. Iteration ends
// after the terminal snapshot or the first error. Breaking out early stops
// the stepper with Cancelled. Ranging over a terminal stepper yields its
// terminal snapshot once.
func (s *Stepper) Snapshots(ctx context.Context) iter.Seq2[Snapshot, error] {
	return func(yield func(Snapshot, error) bool) {
		for {
			snap, err := s.Step(ctx)
			if !yield(snap, err) {
				s.Stop()
				return
			}
			if err != nil || snap.Done() {
				return
			}
		}
	}
}

// Stop cancels a running stepper. It is a no-op once terminal.
func (s *Stepper) Stop() {
	if !s.state.Terminal() {
		s.cancel(context.Canceled)
	}
}

// expand discovers or improves every traversable neighbour of h in
// Up, Down, Left, Right order. Processed neighbours are skipped.
func (s *Stepper) expand(h frontier.Handle) {
	cur := s.arena.Node(h)
	for _, d := range gridgraph.CardinalOffsets() {
		pos := cur.Pos.Add(d)
		if !s.grid.IsTraversable(pos.X, pos.Y) {
			continue
		}
		if nh, seen := s.arena.Lookup(pos); seen {
			if !s.arena.Processed(nh) {
				s.strategy.OnImprove(nh, h)
			}
			continue
		}
		nh := s.arena.Add(pos, cur.G+1, h)
		s.strategy.OnDiscover(nh)
		s.strategy.Push(nh)
		s.discovered = append(s.discovered, pos)
	}
}

// snapshot captures the current sets; coordinates are copied. The cells
// discovered since the previous snapshot are handed over and reset.
func (s *Stepper) snapshot(state State, cur gridgraph.Coordinate) Snapshot {
	snap := Snapshot{
		Step:           s.steps,
		State:          state,
		Current:        cur,
		Discovered:     s.discovered,
		ProcessedCount: len(s.processed),
		FrontierCount:  s.strategy.Len(),
	}
	s.discovered = nil
	if s.opts.Sets {
		snap.Processed = s.coords(s.processed)
		snap.Frontier = s.coords(s.strategy.Handles())
	}
	return snap
}

func (s *Stepper) coords(hs []frontier.Handle) []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, len(hs))
	for i, h := range hs {
		out[i] = s.arena.Pos(h)
	}
	return out
}

// finish moves the stepper to Succeeded or Failed. goal is the end
// handle and is only read on success.
func (s *Stepper) finish(state State, cur gridgraph.Coordinate, goal ...frontier.Handle) Snapshot {
	res := &Result{
		Algorithm:      s.kind.DisplayName(),
		Kind:           s.kind,
		Start:          s.start,
		End:            s.goal,
		Found:          state == Succeeded,
		Path:           []gridgraph.Coordinate{},
		ProcessedCount: len(s.processed),
		Steps:          s.steps,
		Elapsed:        time.Since(s.began),
	}
	outcome := metrics.OutcomeNoPath
	if res.Found {
		res.Path = Reconstruct(s.arena, goal[0])
		outcome = metrics.OutcomeFound
	}
	metrics.ObserveRun(s.kind.String(), outcome, res.ProcessedCount, res.Length(), res.Elapsed)
	s.opts.Logger.Debug("search finished",
		zap.String("algorithm", s.kind.String()),
		zap.Stringer("state", state),
		zap.Int("processed", res.ProcessedCount),
		zap.Int("path_len", res.Length()),
		zap.Int("steps", res.Steps),
		zap.Duration("elapsed", res.Elapsed),
	)

	s.state = state
	s.last = s.snapshot(state, cur)
	s.last.Result = res
	return s.last
}

// cancel moves the stepper to Cancelled with cause err.
func (s *Stepper) cancel(err error) (Snapshot, error) {
	s.state = Cancelled
	s.err = err
	elapsed := time.Duration(0)
	if !s.began.IsZero() {
		elapsed = time.Since(s.began)
	}
	metrics.ObserveRun(s.kind.String(), metrics.OutcomeCancelled, len(s.processed), 0, elapsed)
	s.opts.Logger.Debug("search cancelled",
		zap.String("algorithm", s.kind.String()),
		zap.Int("processed", len(s.processed)),
		zap.Error(err),
	)
	s.last = s.snapshot(Cancelled, s.last.Current)
	return s.last, err
}
