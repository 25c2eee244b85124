package gridgraph_test

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestParse(t *testing.T) {
	src := `; a 4x4 maze
S..#
.#..

.#..
...E
`
	g, err := gridgraph.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, gridgraph.C(0, 0), g.Start())
	assert.Equal(t, gridgraph.C(3, 3), g.End())
	assert.Equal(t, []gridgraph.Coordinate{
		gridgraph.C(3, 0), gridgraph.C(1, 1), gridgraph.C(1, 2),
	}, g.Walls())

	assert.Equal(t, "S..#\n.#..\n.#..\n...E\n", g.String())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"Ragged", "S.\n.E.\n", gridgraph.ErrNonRectangular},
		{"NonSquare", "S.E\n...\n", gridgraph.ErrNonSquare},
		{"BadRune", "S?\n.E\n", gridgraph.ErrUnknownCell},
		{"MissingEnd", "S.\n..\n", gridgraph.ErrTerminalCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Parse(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// A malformed shape is rejected before any per-cell storage is built,
// so one huge row costs nothing beyond the input itself.
func TestParseLines_ShapeCheckedBeforeAllocating(t *testing.T) {
	huge := "S" + strings.Repeat(".", 1<<22) + "E"

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	_, err := gridgraph.ParseLines([]string{huge})
	runtime.ReadMemStats(&after)

	assert.ErrorIs(t, err, gridgraph.ErrNonSquare)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))

	_, err = gridgraph.ParseLines([]string{"S.", huge})
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestInts_InverseOfFrom2D(t *testing.T) {
	in := [][]int{
		{2, 0, 1},
		{0, 1, 0},
		{1, 0, 3},
	}
	g, err := gridgraph.From2D(in)
	require.NoError(t, err)
	assert.Equal(t, in, g.Ints())
}

func TestJSON(t *testing.T) {
	g, err := gridgraph.ParseLines([]string{"S.", "#E"})
	require.NoError(t, err)

	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `["S.","#E"]`, string(data))

	var back gridgraph.Grid
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, g.Lines(), back.Lines())
	assert.Equal(t, g.End(), back.End())

	assert.ErrorIs(t, json.Unmarshal([]byte(`["S."]`), &back), gridgraph.ErrNonSquare)
}
