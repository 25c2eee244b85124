// Package render draws grids, search progress and statistics as plain text.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Overlay runes drawn on top of the grid, highest precedence first after
// the start and end markers.
const (
	RunePath      = '*'
	RuneCurrent   = '@'
	RuneFrontier  = '+'
	RuneProcessed = 'o'
)

// Frame returns g as text, one row per line, with the snapshot's processed
// cells, frontier and current cell overlaid, then the path. snap and path
// may be nil. Start and end markers are never overdrawn.
func Frame(g *gridgraph.Grid, snap *search.Snapshot, path []gridgraph.Coordinate) string {
	n := g.Size()
	canvas := make([][]rune, n)
	for y, line := range g.Lines() {
		canvas[y] = []rune(line)
	}
	paint := func(cs []gridgraph.Coordinate, r rune) {
		for _, c := range cs {
			if !g.InBounds(c.X, c.Y) {
				continue
			}
			if s := canvas[c.Y][c.X]; s == gridgraph.Start.Rune() || s == gridgraph.End.Rune() {
				continue
			}
			canvas[c.Y][c.X] = r
		}
	}
	if snap != nil {
		paint(snap.Processed, RuneProcessed)
		paint(snap.Frontier, RuneFrontier)
		if !snap.Done() && snap.Step > 0 {
			paint([]gridgraph.Coordinate{snap.Current}, RuneCurrent)
		}
	}
	paint(path, RunePath)

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Row is one line of the statistics table.
type Row struct {
	Algorithm  string
	Elapsed    time.Duration
	Visited    int
	PathLength int
	Found      bool
}

// RowOf summarises a finished run.
func RowOf(r *search.Result) Row {
	return Row{
		Algorithm:  r.Algorithm,
		Elapsed:    r.Elapsed,
		Visited:    r.ProcessedCount,
		PathLength: r.Length(),
		Found:      r.Found,
	}
}

// StatsTable accumulates one row per run, in insertion order.
type StatsTable struct {
	rows []Row
}

// Add appends the row for r.
func (t *StatsTable) Add(r *search.Result) { t.rows = append(t.rows, RowOf(r)) }

// Rows returns a copy of the accumulated rows.
func (t *StatsTable) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len reports the number of rows.
func (t *StatsTable) Len() int { return len(t.rows) }

// WriteTo writes the table with aligned columns: algorithm, time in whole
// milliseconds, visited cells and path length ("-" when no path was found).
func (t *StatsTable) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tTIME (ms)\tVISITED\tPATH LENGTH")
	for _, r := range t.rows {
		length := "-"
		if r.Found {
			length = fmt.Sprint(r.PathLength)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Algorithm, r.Elapsed.Round(time.Millisecond).Milliseconds(), r.Visited, length)
	}
	err := tw.Flush()
	return cw.n, err
}

// String renders the table.
func (t *StatsTable) String() string {
	var b strings.Builder
	_, _ = t.WriteTo(&b)
	return b.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
