package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestFrom2D_Errors verifies that From2D rejects empty, ragged, non-square
// and marker-less inputs.
func TestFrom2D_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{2, 3}, {0}}, gridgraph.ErrNonRectangular},
		{"NonSquare", [][]int{{2, 0, 3}, {0, 0, 0}}, gridgraph.ErrNonSquare},
		{"UnknownCode", [][]int{{2, 7}, {0, 3}}, gridgraph.ErrUnknownCell},
		{"NoEnd", [][]int{{2, 0}, {0, 0}}, gridgraph.ErrTerminalCount},
		{"TwoStarts", [][]int{{2, 2}, {0, 3}}, gridgraph.ErrTerminalCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.From2D(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("From2D(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestFrom2D_DeepCopy ensures later edits to the input slice do not leak in.
func TestFrom2D_DeepCopy(t *testing.T) {
	in := [][]int{
		{2, 0},
		{0, 3},
	}
	g, err := gridgraph.From2D(in)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	in[0][1] = 1
	if !g.IsTraversable(1, 0) {
		t.Error("grid observed a mutation of its input slice")
	}
	if got := g.Start(); got != gridgraph.C(0, 0) {
		t.Errorf("Start() = %v; want (0,0)", got)
	}
	if got := g.End(); got != gridgraph.C(1, 1) {
		t.Errorf("End() = %v; want (1,1)", got)
	}
}

// TestNew_Errors covers size and marker validation in New.
func TestNew_Errors(t *testing.T) {
	if _, err := gridgraph.New(0, gridgraph.C(0, 0), gridgraph.C(0, 0)); !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("size 0: got %v; want ErrEmptyGrid", err)
	}
	if _, err := gridgraph.New(3, gridgraph.C(-1, 0), gridgraph.C(2, 2)); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("start out of bounds: got %v; want ErrOutOfBounds", err)
	}
	if _, err := gridgraph.New(3, gridgraph.C(0, 0), gridgraph.C(3, 2)); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("end out of bounds: got %v; want ErrOutOfBounds", err)
	}
	if _, err := gridgraph.New(3, gridgraph.C(1, 1), gridgraph.C(1, 1)); !errors.Is(err, gridgraph.ErrTerminalCount) {
		t.Errorf("shared cell: got %v; want ErrTerminalCount", err)
	}
	if _, err := gridgraph.New(1, gridgraph.C(0, 0), gridgraph.C(0, 0)); !errors.Is(err, gridgraph.ErrTerminalCount) {
		t.Errorf("1x1 shared cell: got %v; want ErrTerminalCount", err)
	}
}

// TestDefault checks the editor's initial layout.
func TestDefault(t *testing.T) {
	g, err := gridgraph.Default(30)
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	if g.Size() != 30 {
		t.Errorf("Size() = %d; want 30", g.Size())
	}
	if g.Start() != gridgraph.C(1, 1) || g.End() != gridgraph.C(28, 28) {
		t.Errorf("markers = %v,%v; want (1,1),(28,28)", g.Start(), g.End())
	}
	if len(g.Walls()) != 0 {
		t.Errorf("Walls() = %v; want none", g.Walls())
	}
	if _, err := gridgraph.Default(2); !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("Default(2): got %v; want ErrEmptyGrid", err)
	}
}

//----------------------------------------------------------------------------//
// Query Tests
//----------------------------------------------------------------------------//

// TestInBoundsAndTraversable checks both predicates on a 3×3 grid.
func TestInBoundsAndTraversable(t *testing.T) {
	g, err := gridgraph.From2D([][]int{
		{2, 1, 0},
		{0, 1, 0},
		{0, 0, 3},
	})
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 2}, {1, 2}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
		if !g.IsTraversable(xy[0], xy[1]) {
			t.Errorf("IsTraversable(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 3}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
		if g.IsTraversable(xy[0], xy[1]) {
			t.Errorf("IsTraversable(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
	for _, xy := range [][2]int{{1, 0}, {1, 1}} {
		if g.IsTraversable(xy[0], xy[1]) {
			t.Errorf("IsTraversable(%d,%d)=true on a wall", xy[0], xy[1])
		}
	}
}

// TestCheckEndpoint distinguishes out-of-bounds from blocked endpoints.
func TestCheckEndpoint(t *testing.T) {
	g, _ := gridgraph.From2D([][]int{
		{2, 1},
		{0, 3},
	})
	if err := g.CheckEndpoint(gridgraph.C(0, 1)); err != nil {
		t.Errorf("free cell: unexpected error %v", err)
	}
	if err := g.CheckEndpoint(gridgraph.C(1, 0)); !errors.Is(err, gridgraph.ErrBlocked) {
		t.Errorf("wall: got %v; want ErrBlocked", err)
	}
	if err := g.CheckEndpoint(gridgraph.C(5, 0)); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("outside: got %v; want ErrOutOfBounds", err)
	}
}

// TestCardinalOffsets pins the Up, Down, Left, Right exploration order.
func TestCardinalOffsets(t *testing.T) {
	want := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	if got := gridgraph.CardinalOffsets(); got != want {
		t.Errorf("CardinalOffsets() = %v; want %v", got, want)
	}
}

// TestManhattan covers symmetric and zero distances.
func TestManhattan(t *testing.T) {
	a, b := gridgraph.C(0, 0), gridgraph.C(4, 3)
	if d := gridgraph.Manhattan(a, b); d != 7 {
		t.Errorf("Manhattan = %d; want 7", d)
	}
	if gridgraph.Manhattan(a, b) != gridgraph.Manhattan(b, a) {
		t.Error("Manhattan is not symmetric")
	}
	if gridgraph.Manhattan(b, b) != 0 {
		t.Error("Manhattan(b,b) != 0")
	}
	if !gridgraph.Adjacent(gridgraph.C(2, 2), gridgraph.C(2, 3)) || gridgraph.Adjacent(a, gridgraph.C(1, 1)) {
		t.Error("Adjacent disagrees with 4-neighbourhood")
	}
}

// TestClone ensures clones are independent of the original.
func TestClone(t *testing.T) {
	g, _ := gridgraph.Default(5)
	c := g.Clone()
	if err := g.SetWall(gridgraph.C(2, 2)); err != nil {
		t.Fatalf("SetWall: %v", err)
	}
	if !c.IsTraversable(2, 2) {
		t.Error("clone observed an edit of the original")
	}
	if c.Start() != g.Start() || c.End() != g.End() {
		t.Error("clone lost marker positions")
	}
}
