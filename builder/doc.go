// Package builder generates grid layouts for searching: empty floors,
// scattered walls and perfect mazes.
//
// What:
//
//	Build(n, cons, opts...) creates the default n×n grid (start at (1,1),
//	end at (n-2,n-2)), resolves the options into a builderConfig and applies
//	the constructor. Constructors only add or clear walls; the start and
//	end markers are never touched.
//
// Constructors:
//
//   - Empty():          no walls.
//   - Scatter(density): each cell walled with probability density.
//   - Maze():           recursive backtracker over odd coordinates; every
//     carved cell is reachable from every other by exactly one route.
//
// Determinism:
//
//	Same n, constructor and seed ⇒ identical grid. Stochastic constructors
//	require WithSeed or WithRand and return ErrNeedRandSource otherwise.
//
// Solvability:
//
//	WithSolvable() clears the fewest walls (Grid.MinBreach) after the
//	constructor runs, so the start always reaches the end.
//
// Complexity: O(n²) time and memory for every constructor.
package builder
