package search

import (
	"context"
	"time"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Run drives a Stepper to completion, pausing Options.Delay between steps.
//
// Returns the Result and nil on success, the Result (Found == false) and
// ErrNoPath when the end is unreachable, or nil and the cancellation cause
// (ctx.Err() or the OnVisit error) when the run was cut short.
// Invalid input fails before the first step as in NewStepper.
func Run(ctx context.Context, g *gridgraph.Grid, start, end gridgraph.Coordinate, kind frontier.Kind, opts ...Option) (*Result, error) {
	st, err := NewStepper(g, start, end, kind, opts...)
	if err != nil {
		return nil, err
	}
	if st.opts.OnVisit == nil {
		// nobody reads the sets
		st.opts.Sets = false
	}

	return drive(ctx, st)
}

// Find runs kind between the grid's own start and end markers.
func Find(ctx context.Context, g *gridgraph.Grid, kind frontier.Kind, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return Run(ctx, g, g.Start(), g.End(), kind, opts...)
}

// drive loops Step and sleep until the stepper is terminal.
func drive(ctx context.Context, st *Stepper) (*Result, error) {
	for {
		snap, err := st.Step(ctx)
		if err != nil {
			return nil, err
		}
		if snap.Done() {
			if !snap.Result.Found {
				return snap.Result, ErrNoPath
			}
			return snap.Result, nil
		}
		if err := pause(ctx, st.opts.Delay); err != nil {
			st.cancel(err)
			return nil, err
		}
	}
}

// pause sleeps for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
