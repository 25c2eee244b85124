// Command gridpath searches a grid from the terminal and prints a frame of
// the result together with the statistics table.
//
// Usage:
//
//	gridpath [-grid file] [-size n] [-layout empty|scatter|maze] [-seed s]
//	         [-density p] [-solvable] [-algo bfs|dfs|astar|all] [-animate]
//	         [-delay d] [-check]
//
// Without -grid a layout is generated: an n×n grid with the start at (1,1)
// and the end at (n-2,n-2), empty unless -layout says otherwise. Defaults
// come from GRIDPATH_* variables.
//
// Exit status: 0 when every run found a path, 2 when some run found none,
// 1 on invalid input or configuration.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/logging"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

const (
	exitOK     = 0
	exitError  = 1
	exitNoPath = 2

	clearScreen = "\033[H\033[2J"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// options are the parsed command-line settings.
type options struct {
	gridFile string
	size     int
	layout   string
	seed     int64
	density  float64
	solvable bool
	algo     string
	animate  bool
	delay    time.Duration
	check    bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "gridpath:", err)
		return exitError
	}
	lc := cfg.Logging()
	lc.Output = stderr
	logger, err := logging.NewLogger(lc)
	if err != nil {
		fmt.Fprintln(stderr, "gridpath:", err)
		return exitError
	}
	defer func() { _ = logger.Sync() }()

	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.StringVar(&o.gridFile, "grid", "", "grid file ('.' free, '#' wall, 'S' start, 'E' end)")
	fs.IntVar(&o.size, "size", cfg.GridSize, "side of the generated grid when -grid is not set")
	fs.StringVar(&o.layout, "layout", builder.LayoutEmpty, "generated layout: "+strings.Join(builder.Layouts(), ", "))
	fs.Int64Var(&o.seed, "seed", 1, "seed for scatter and maze layouts")
	fs.Float64Var(&o.density, "density", 0.3, "wall probability for the scatter layout")
	fs.BoolVar(&o.solvable, "solvable", false, "clear the fewest walls needed for a route")
	fs.StringVar(&o.algo, "algo", cfg.Algorithm, "bfs, dfs, astar or all")
	fs.BoolVar(&o.animate, "animate", false, "redraw the grid after every step")
	fs.DurationVar(&o.delay, "delay", cfg.StepDelay, "pause between animation frames")
	fs.BoolVar(&o.check, "check", false, "report reachability only, do not search")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	g, err := loadGrid(o)
	if err != nil {
		logger.Error("cannot load grid", zap.Error(err))
		return exitError
	}
	if o.check {
		return check(stdout, g)
	}

	kinds := []frontier.Kind{frontier.ParseKind(o.algo)}
	if strings.EqualFold(strings.TrimSpace(o.algo), "all") {
		kinds = frontier.Kinds()
	}

	var results []*search.Result
	if o.animate {
		results, err = animateAll(ctx, stdout, g, kinds, o.delay, logger)
	} else {
		results, err = compare(ctx, g, kinds, logger)
	}
	if err != nil {
		logger.Error("search failed", zap.Error(err))
		return exitError
	}

	return report(stdout, g, results, !o.animate)
}

// loadGrid reads the -grid file or generates a layout.
func loadGrid(o options) (*gridgraph.Grid, error) {
	if o.gridFile == "" {
		cons, err := builder.ByName(o.layout, o.density)
		if err != nil {
			return nil, err
		}
		opts := []builder.BuilderOption{builder.WithSeed(o.seed)}
		if o.solvable {
			opts = append(opts, builder.WithSolvable())
		}
		return builder.Build(o.size, cons, opts...)
	}
	f, err := os.Open(o.gridFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gridgraph.Parse(f)
}

// check prints the reachability summary. A grid with no route also gets
// the fewest walls that would have to be cleared.
func check(out io.Writer, g *gridgraph.Grid) int {
	comps := g.Components()
	fmt.Fprintf(out, "regions: %d\n", len(comps))
	if g.Solvable() {
		fmt.Fprintln(out, "solvable: yes")
		return exitOK
	}
	fmt.Fprintln(out, "solvable: no")
	if _, walls := g.MinBreach(); walls > 0 {
		fmt.Fprintf(out, "walls to clear: %d\n", walls)
	}
	return exitNoPath
}

// compare runs every kind concurrently without pacing. Results keep the
// order of kinds.
func compare(ctx context.Context, g *gridgraph.Grid, kinds []frontier.Kind, logger *zap.Logger) ([]*search.Result, error) {
	results := make([]*search.Result, len(kinds))
	eg, ctx := errgroup.WithContext(ctx)
	for i, k := range kinds {
		eg.Go(func() error {
			res, err := search.Find(ctx, g, k, search.WithDelay(0), search.WithLogger(logger))
			if err != nil && !errors.Is(err, search.ErrNoPath) {
				return fmt.Errorf("%s: %w", k.DisplayName(), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// animateAll runs the kinds one after another, redrawing after each step.
func animateAll(ctx context.Context, out io.Writer, g *gridgraph.Grid, kinds []frontier.Kind, delay time.Duration, logger *zap.Logger) ([]*search.Result, error) {
	results := make([]*search.Result, 0, len(kinds))
	for _, k := range kinds {
		res, err := animate(ctx, out, g, k, delay, logger)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func animate(ctx context.Context, out io.Writer, g *gridgraph.Grid, kind frontier.Kind, delay time.Duration, logger *zap.Logger) (*search.Result, error) {
	st, err := search.NewStepper(g, g.Start(), g.End(), kind, search.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	for snap, err := range st.Snapshots(ctx) {
		if err != nil {
			return nil, err
		}
		var path []gridgraph.Coordinate
		if snap.Done() && snap.Result.Found {
			path = snap.Result.Path
		}
		fmt.Fprint(out, clearScreen)
		fmt.Fprintf(out, "%s  step %d  processed %d  frontier %d\n",
			kind.DisplayName(), snap.Step, snap.ProcessedCount, snap.FrontierCount)
		fmt.Fprint(out, render.Frame(g, &snap, path))
		if snap.Done() {
			return snap.Result, nil
		}
		if err := wait(ctx, delay); err != nil {
			return nil, err
		}
	}
	return nil, st.Err()
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
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

// report prints the route of every successful run (when frames is set)
// and the statistics table.
func report(out io.Writer, g *gridgraph.Grid, results []*search.Result, frames bool) int {
	var table render.StatsTable
	code := exitOK
	for _, res := range results {
		table.Add(res)
		if !res.Found {
			fmt.Fprintf(out, "%s: no path found\n", res.Algorithm)
			code = exitNoPath
			continue
		}
		if frames {
			fmt.Fprintf(out, "%s: %d moves\n", res.Algorithm, res.Length())
			fmt.Fprint(out, render.Frame(g, nil, res.Path))
		}
	}
	if code == exitNoPath {
		if _, walls := g.MinBreach(); walls > 0 {
			fmt.Fprintf(out, "hint: clearing %d wall(s) would open a route\n", walls)
		}
	}
	fmt.Fprintln(out)
	_, _ = table.WriteTo(out)
	return code
}
