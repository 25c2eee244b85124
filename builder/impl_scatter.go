package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const methodScatter = "Scatter"

// Empty returns a Constructor that leaves the floor wall-free.
func Empty() Constructor {
	return func(g *gridgraph.Grid, _ builderConfig) error {
		g.ClearWalls()
		return nil
	}
}

// Scatter returns a Constructor that walls each non-marker cell with
// probability density, drawing once per cell in row-major order.
func Scatter(density float64) Constructor {
	return func(g *gridgraph.Grid, cfg builderConfig) error {
		if density < 0 || density > 1 {
			return fmt.Errorf("%s: density=%g: %w", methodScatter, density, ErrInvalidDensity)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodScatter, ErrNeedRandSource)
		}
		n := g.Size()
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if cfg.rng.Float64() >= density {
					continue
				}
				if err := wall(g, gridgraph.C(x, y)); err != nil {
					return fmt.Errorf("%s: %w", methodScatter, err)
				}
			}
		}
		return nil
	}
}
