package search_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// fast disables pacing so tests run at full speed.
var fast = search.WithDelay(0)

// mustGrid parses rows of '.', '#', 'S', 'E' or fails the test.
func mustGrid(t testing.TB, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.ParseLines(rows)
	require.NoError(t, err)
	return g
}

// requireValidRoute checks that res connects Start to End through
// traversable, pairwise adjacent cells.
func requireValidRoute(t *testing.T, g *gridgraph.Grid, res *search.Result) {
	t.Helper()
	route := res.Route()
	require.NotEmpty(t, route)
	require.Equal(t, res.Start, route[0])
	require.Equal(t, res.End, route[len(route)-1])
	for i, c := range route {
		require.True(t, g.IsTraversable(c.X, c.Y), "cell %v blocked", c)
		if i > 0 {
			require.True(t, gridgraph.Adjacent(route[i-1], c), "%v -> %v not adjacent", route[i-1], c)
		}
	}
}

func TestNewStepper_Errors(t *testing.T) {
	g := mustGrid(t,
		"S..",
		".#.",
		"..E",
	)
	cases := []struct {
		name  string
		g     *gridgraph.Grid
		start gridgraph.Coordinate
		end   gridgraph.Coordinate
		kind  frontier.Kind
		opts  []search.Option
		want  error
	}{
		{"nil grid", nil, g.Start(), g.End(), frontier.BestFirst, nil, search.ErrNilGrid},
		{"negative delay", g, g.Start(), g.End(), frontier.BestFirst, []search.Option{search.WithDelay(-time.Second)}, search.ErrOptionViolation},
		{"start out of bounds", g, gridgraph.C(-1, 0), g.End(), frontier.BreadthFirst, nil, gridgraph.ErrOutOfBounds},
		{"end out of bounds", g, g.Start(), gridgraph.C(3, 3), frontier.DepthFirst, nil, gridgraph.ErrOutOfBounds},
		{"start blocked", g, gridgraph.C(1, 1), g.End(), frontier.BestFirst, nil, gridgraph.ErrBlocked},
		{"unknown kind", g, g.Start(), g.End(), frontier.Kind(9), nil, frontier.ErrUnknownKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := search.NewStepper(tc.g, tc.start, tc.end, tc.kind, tc.opts...)
			assert.Nil(t, st)
			assert.ErrorIs(t, err, tc.want)
			if errors.Is(tc.want, gridgraph.ErrOutOfBounds) || errors.Is(tc.want, gridgraph.ErrBlocked) {
				assert.ErrorIs(t, err, search.ErrInvalidInput)
			}
		})
	}

	_, err := search.Find(context.Background(), nil, frontier.BestFirst)
	assert.ErrorIs(t, err, search.ErrNilGrid)
}

func TestRun_EmptyGrid(t *testing.T) {
	g, err := gridgraph.New(5, gridgraph.C(0, 0), gridgraph.C(4, 4))
	require.NoError(t, err)

	want := map[frontier.Kind]int{frontier.BreadthFirst: 8, frontier.BestFirst: 8}
	for _, k := range frontier.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			res, err := search.Find(context.Background(), g, k, fast)
			require.NoError(t, err)
			require.True(t, res.Found)
			requireValidRoute(t, g, res)
			assert.Equal(t, k, res.Kind)
			assert.Equal(t, k.DisplayName(), res.Algorithm)
			if n, ok := want[k]; ok {
				assert.Equal(t, n, res.Length())
			} else {
				assert.GreaterOrEqual(t, res.Length(), 8)
			}
			assert.LessOrEqual(t, res.ProcessedCount, 25)
			assert.NotContains(t, res.Path, res.Start, "start cell is excluded from Path")
		})
	}
}

func TestRun_SingleOpening(t *testing.T) {
	g := mustGrid(t,
		"S..",
		"#.#",
		"..E",
	)
	for _, k := range frontier.Kinds() {
		res, err := search.Find(context.Background(), g, k, fast)
		require.NoError(t, err, k)
		requireValidRoute(t, g, res)
		assert.Contains(t, res.Path, gridgraph.C(1, 1), k)
	}
}

func TestRun_StartEqualsEnd(t *testing.T) {
	g, err := gridgraph.Default(5)
	require.NoError(t, err)
	c := gridgraph.C(2, 3)
	for _, k := range frontier.Kinds() {
		res, err := search.Run(context.Background(), g, c, c, k, fast)
		require.NoError(t, err, k)
		assert.True(t, res.Found)
		assert.Empty(t, res.Path)
		assert.NotNil(t, res.Path)
		assert.Zero(t, res.ProcessedCount)
		assert.Equal(t, 1, res.Steps)
		assert.Equal(t, []gridgraph.Coordinate{c}, res.Route())
	}
}

func TestRun_EnclosedEnd(t *testing.T) {
	g := mustGrid(t,
		"S..",
		"..#",
		".#E",
	)
	for _, k := range frontier.Kinds() {
		res, err := search.Find(context.Background(), g, k, fast)
		require.ErrorIs(t, err, search.ErrNoPath, k)
		require.NotNil(t, res)
		assert.False(t, res.Found)
		assert.Empty(t, res.Path)
		assert.Nil(t, res.Route())
		assert.Equal(t, 6, res.ProcessedCount, "every reachable cell is processed")
	}
}

func TestRun_Deterministic(t *testing.T) {
	g := mustGrid(t,
		"S....#",
		".##..#",
		"...#..",
		"#.#...",
		"..#.#.",
		"....#E",
	)
	for _, k := range frontier.Kinds() {
		a, err := search.Find(context.Background(), g, k, fast)
		require.NoError(t, err)
		b, err := search.Find(context.Background(), g, k, fast)
		require.NoError(t, err)
		assert.Equal(t, a.Path, b.Path, k)
		assert.Equal(t, a.ProcessedCount, b.ProcessedCount, k)
		assert.Equal(t, a.Steps, b.Steps, k)
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	g, err := gridgraph.Default(6)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := search.Find(ctx, g, frontier.BestFirst, fast)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_CancelledDuringDelay(t *testing.T) {
	g, err := gridgraph.Default(6)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	begin := time.Now()
	_, err = search.Find(ctx, g, frontier.BreadthFirst, search.WithDelay(time.Hour))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(begin), time.Minute)
}

func TestRun_OnVisitErrorAborts(t *testing.T) {
	g, err := gridgraph.Default(6)
	require.NoError(t, err)

	stop := errors.New("stop")
	calls := 0
	_, err = search.Find(context.Background(), g, frontier.DepthFirst, fast,
		search.WithOnVisit(func(search.Snapshot) error {
			calls++
			if calls == 3 {
				return stop
			}
			return nil
		}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, calls)
}

func TestRun_OnVisitSeesSets(t *testing.T) {
	g, err := gridgraph.New(4, gridgraph.C(0, 0), gridgraph.C(3, 3))
	require.NoError(t, err)

	var snaps []search.Snapshot
	res, err := search.Find(context.Background(), g, frontier.BreadthFirst, fast,
		search.WithOnVisit(func(s search.Snapshot) error {
			snaps = append(snaps, s)
			return nil
		}))
	require.NoError(t, err)
	require.Len(t, snaps, res.ProcessedCount)

	// first snapshot: start processed, neighbours not expanded yet
	first := snaps[0]
	assert.Equal(t, gridgraph.C(0, 0), first.Current)
	assert.Equal(t, []gridgraph.Coordinate{gridgraph.C(0, 0)}, first.Processed)
	assert.Empty(t, first.Frontier)
	assert.Equal(t, search.Running, first.State)

	for i, s := range snaps {
		assert.Equal(t, i+1, s.Step)
		assert.Equal(t, i+1, s.ProcessedCount)
		assert.Len(t, s.Processed, s.ProcessedCount)
		assert.Len(t, s.Frontier, s.FrontierCount)
		assert.Contains(t, s.Processed, s.Current)
		assert.NotContains(t, s.Frontier, s.Current)
	}
}

func TestStepper_Snapshots(t *testing.T) {
	g := mustGrid(t,
		"S...",
		".##.",
		"....",
		"...E",
	)
	st, err := search.NewStepper(g, g.Start(), g.End(), frontier.BestFirst)
	require.NoError(t, err)
	assert.Equal(t, search.Running, st.State())
	assert.Equal(t, frontier.BestFirst, st.Kind())

	var (
		last  search.Snapshot
		count int
		prev  int
	)
	for snap, err := range st.Snapshots(context.Background()) {
		require.NoError(t, err)
		require.GreaterOrEqual(t, snap.ProcessedCount, prev)
		prev = snap.ProcessedCount
		last = snap
		count++
	}
	require.True(t, last.Done())
	assert.Equal(t, search.Succeeded, last.State)
	require.NotNil(t, last.Result)
	assert.Equal(t, 6, last.Result.Length())
	assert.Equal(t, count, last.Result.Steps)
	assert.Equal(t, g.End(), last.Current)

	// terminal state is sticky
	again, err := st.Step(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, last, again)

	n := 0
	for snap := range st.Snapshots(context.Background()) {
		assert.True(t, snap.Done())
		n++
	}
	assert.Equal(t, 1, n)
}

// Each frontier is the previous one plus Discovered minus Current, and
// Discovered is filled even when the coordinate sets are off.
func TestStepper_DiscoveredDeltas(t *testing.T) {
	g := mustGrid(t,
		"S...#.",
		".##.#.",
		"...#..",
		".#...#",
		".#.#..",
		"...#.E",
	)
	for _, k := range frontier.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			full, err := search.NewStepper(g, g.Start(), g.End(), k)
			require.NoError(t, err)
			lean, err := search.NewStepper(g, g.Start(), g.End(), k, search.WithSnapshotSets(false))
			require.NoError(t, err)

			ctx := context.Background()
			frontierSet := map[gridgraph.Coordinate]bool{}
			for snap, err := range full.Snapshots(ctx) {
				require.NoError(t, err)
				other, err := lean.Step(ctx)
				require.NoError(t, err)
				assert.Equal(t, snap.Discovered, other.Discovered, "step %d", snap.Step)
				assert.Nil(t, other.Frontier)
				if snap.Done() {
					break
				}

				for _, c := range snap.Discovered {
					assert.False(t, frontierSet[c], "%v discovered twice", c)
					frontierSet[c] = true
				}
				delete(frontierSet, snap.Current)

				want := map[gridgraph.Coordinate]bool{}
				for _, c := range snap.Frontier {
					want[c] = true
				}
				require.Equal(t, want, frontierSet, "step %d", snap.Step)
			}
			assert.Equal(t, search.Succeeded, full.State())
		})
	}
}

func TestStepper_BreakCancels(t *testing.T) {
	g, err := gridgraph.Default(8)
	require.NoError(t, err)
	st, err := search.NewStepper(g, g.Start(), g.End(), frontier.BreadthFirst)
	require.NoError(t, err)

	pulled := 0
	for range st.Snapshots(context.Background()) {
		pulled++
		if pulled == 2 {
			break
		}
	}
	assert.Equal(t, search.Cancelled, st.State())
	assert.ErrorIs(t, st.Err(), context.Canceled)

	snap, err := st.Step(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, snap.Done())
	assert.Nil(t, snap.Result)
	assert.Equal(t, 2, snap.ProcessedCount)
}

func TestStepper_FailedSnapshot(t *testing.T) {
	g := mustGrid(t,
		"S#.",
		"##.",
		"..E",
	)
	st, err := search.NewStepper(g, g.Start(), g.End(), frontier.DepthFirst, search.WithSnapshotSets(false))
	require.NoError(t, err)

	snap, err := st.Step(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap.Processed, "sets disabled")
	assert.Equal(t, 1, snap.ProcessedCount)

	snap, err = st.Step(context.Background())
	require.NoError(t, err)
	assert.Equal(t, search.Failed, snap.State)
	require.NotNil(t, snap.Result)
	assert.False(t, snap.Result.Found)
	assert.Equal(t, 1, snap.Result.ProcessedCount)
	assert.Equal(t, 2, snap.Result.Steps)
}

func TestStepper_GridIsCopied(t *testing.T) {
	g, err := gridgraph.New(3, gridgraph.C(0, 0), gridgraph.C(2, 0))
	require.NoError(t, err)
	st, err := search.NewStepper(g, g.Start(), g.End(), frontier.BreadthFirst)
	require.NoError(t, err)

	// walling the original after construction must not affect the run
	require.NoError(t, g.SetWall(gridgraph.C(1, 0)))
	require.NoError(t, g.SetWall(gridgraph.C(1, 1)))
	require.NoError(t, g.SetWall(gridgraph.C(1, 2)))

	var last search.Snapshot
	for snap, err := range st.Snapshots(context.Background()) {
		require.NoError(t, err)
		last = snap
	}
	assert.Equal(t, search.Succeeded, last.State)
	assert.Equal(t, 2, last.Result.Length())
	assert.True(t, st.Grid().IsTraversable(1, 0))
}

func TestReconstruct(t *testing.T) {
	a := frontier.NewArena(0)
	root := a.Add(gridgraph.C(0, 0), 0, frontier.NoParent)
	h1 := a.Add(gridgraph.C(1, 0), 1, root)
	h2 := a.Add(gridgraph.C(1, 1), 2, h1)

	assert.Equal(t, []gridgraph.Coordinate{gridgraph.C(1, 0), gridgraph.C(1, 1)}, search.Reconstruct(a, h2))
	assert.Equal(t, []gridgraph.Coordinate{}, search.Reconstruct(a, root))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", search.Running.String())
	assert.Equal(t, "succeeded", search.Succeeded.String())
	assert.Equal(t, "failed", search.Failed.String())
	assert.Equal(t, "cancelled", search.Cancelled.String())
	assert.False(t, search.Running.Terminal())
	assert.True(t, search.Failed.Terminal())
}
