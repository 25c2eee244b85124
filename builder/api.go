package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Layout names accepted by ByName.
const (
	LayoutEmpty   = "empty"
	LayoutScatter = "scatter"
	LayoutMaze    = "maze"
)

// Constructor places walls on g using the resolved builderConfig.
// Constructors validate their parameters and return sentinel errors;
// they never move the start or end marker.
type Constructor func(g *gridgraph.Grid, cfg builderConfig) error

// Build creates the default n×n layout and applies cons. Errors are
// wrapped with "Build: %w"; branch on them with errors.Is.
func Build(n int, cons Constructor, opts ...BuilderOption) (*gridgraph.Grid, error) {
	g, err := gridgraph.Default(n)
	if err != nil {
		return nil, fmt.Errorf("Build: n=%d: %w: %w", n, ErrTooSmall, err)
	}
	cfg := newBuilderConfig(opts...)
	if err := cons(g, cfg); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if cfg.solvable && !g.Solvable() {
		route, _ := g.MinBreach()
		for _, c := range route {
			if err := open(g, c); err != nil {
				return nil, fmt.Errorf("Build: breach %v: %w", c, err)
			}
		}
	}
	return g, nil
}

// ByName resolves a layout name (case-insensitive). density is used by
// the scatter layout only.
func ByName(name string, density float64) (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LayoutEmpty, "":
		return Empty(), nil
	case LayoutScatter:
		return Scatter(density), nil
	case LayoutMaze:
		return Maze(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

// Layouts lists the names ByName accepts.
func Layouts() []string { return []string{LayoutEmpty, LayoutScatter, LayoutMaze} }

// wall blocks c unless it holds a marker.
func wall(g *gridgraph.Grid, c gridgraph.Coordinate) error {
	if err := g.SetWall(c); err != nil && !errors.Is(err, gridgraph.ErrCellOccupied) {
		return err
	}
	return nil
}

// open frees c unless it holds a marker.
func open(g *gridgraph.Grid, c gridgraph.Coordinate) error {
	if err := g.ClearCell(c); err != nil && !errors.Is(err, gridgraph.ErrCellOccupied) {
		return err
	}
	return nil
}
