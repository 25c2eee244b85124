// Package search provides tunable options, error definitions and result
// types for the grid search driver.
package search

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrNoPath is returned by Run when the frontier empties before the end
	// cell is selected. The accompanying Result has Found == false.
	ErrNoPath = errors.New("search: no path between start and end")

	// ErrInvalidInput is returned when start or end is out of bounds or blocked,
	// or when the strategy kind is unknown.
	ErrInvalidInput = errors.New("search: invalid input")

	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// DefaultDelay is the pacing pause Run inserts between steps.
const DefaultDelay = 20 * time.Millisecond

// State is the lifecycle position of a Stepper.
type State int

const (
	// Running means more steps may follow.
	Running State = iota
	// Succeeded means the end cell was selected from the frontier.
	Succeeded
	// Failed means the frontier emptied without reaching the end cell.
	Failed
	// Cancelled means the context ended, the visit hook failed or the
	// consumer stopped pulling snapshots.
	Cancelled
)

// String returns a lower-case label for s.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText encodes s as its String form.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Terminal reports whether no further steps will happen.
func (s State) Terminal() bool { return s != Running }

// Option configures the driver via functional arguments.
// If an Option is invalid (e.g. negative delay), it will be recorded
// internally and surfaced as ErrOptionViolation when the driver is built.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// OnVisit is called once per processed cell, after the cell joins the
	// processed set and before its neighbours are expanded. If it returns
	// an error, the run is cancelled and the error propagated.
	OnVisit func(Snapshot) error

	// Delay is the pause Run inserts after each non-terminal step.
	// Steppers driven by hand ignore it.
	Delay time.Duration

	// Sets controls whether snapshots carry the processed and frontier
	// coordinate lists. Counts and Discovered are always filled.
	Sets bool

	// Logger receives Debug entries at start and termination.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no visit hook
//   - DefaultDelay pacing
//   - coordinate sets in snapshots
//   - a no-op logger
func DefaultOptions() Options {
	return Options{
		OnVisit: nil,
		Delay:   DefaultDelay,
		Sets:    true,
		Logger:  zap.NewNop(),
		err:     nil,
	}
}

// WithOnVisit registers a per-step callback; returning an error from it
// stops the search.
func WithOnVisit(fn func(Snapshot) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithDelay sets the pacing pause used by Run.
//
//	d > 0: sleep d between steps (cut short by cancellation)
//	d == 0: no pacing
//	d < 0: invalid option → ErrOptionViolation
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Delay cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithSnapshotSets toggles the coordinate lists in snapshots.
func WithSnapshotSets(on bool) Option {
	return func(o *Options) { o.Sets = on }
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Snapshot is the observable state of one step.
//
// Non-terminal snapshots are taken after Current joins the processed set
// and before its neighbours are expanded. Terminal snapshots describe the
// final state and carry the Result (nil when Cancelled).
//
// Discovered lists the cells pushed onto the frontier since the previous
// snapshot (the start cell for the first one) and is filled even when Sets
// is off. Every frontier equals the previous one plus Discovered minus
// Current, so a consumer can follow a run from deltas alone.
type Snapshot struct {
	Step           int                    `json:"step"`
	State          State                  `json:"state"`
	Current        gridgraph.Coordinate   `json:"current"`
	Discovered     []gridgraph.Coordinate `json:"discovered,omitempty"`
	Processed      []gridgraph.Coordinate `json:"processed,omitempty"`
	Frontier       []gridgraph.Coordinate `json:"frontier,omitempty"`
	ProcessedCount int                    `json:"processed_count"`
	FrontierCount  int                    `json:"frontier_count"`
	Result         *Result                `json:"result,omitempty"`
}

// Done reports whether s is the terminal snapshot of its run.
func (s Snapshot) Done() bool { return s.State.Terminal() }

// Result is the outcome of a finished run.
//
//   - Path lists the cells from the first move to End inclusive; Start is
//     excluded, so len(Path) is the number of moves. Empty when Start == End
//     or when no path exists.
//   - ProcessedCount is the processed-set size before the terminating step.
//   - Steps counts driver steps including the terminating one.
//   - Elapsed spans the first step to termination, pacing included.
type Result struct {
	Algorithm      string                 `json:"algorithm"`
	Kind           frontier.Kind          `json:"-"`
	Start          gridgraph.Coordinate   `json:"start"`
	End            gridgraph.Coordinate   `json:"end"`
	Found          bool                   `json:"found"`
	Path           []gridgraph.Coordinate `json:"path"`
	ProcessedCount int                    `json:"processed_count"`
	Steps          int                    `json:"steps"`
	Elapsed        time.Duration          `json:"elapsed_ns"`
}

// Length is the number of moves on the path.
func (r *Result) Length() int { return len(r.Path) }

// Route returns Start followed by Path, or nil when no path was found.
func (r *Result) Route() []gridgraph.Coordinate {
	if !r.Found {
		return nil
	}
	out := make([]gridgraph.Coordinate, 0, len(r.Path)+1)
	out = append(out, r.Start)
	return append(out, r.Path...)
}
