package gridgraph

// Components finds all contiguous regions of traversable cells
// (every state except Blocked) under 4-directional adjacency.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in discovery order.
//
// To convert an index back to a Coordinate, use Grid.Coordinate.
//
// Time:   O(N²·4).
// Memory: O(N²) for visited flags and output.
func (g *Grid) Components() [][]int {
	total := g.size * g.size
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y][x] == Blocked {
				continue // wall
			}
			i0 := g.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				uc := g.Coordinate(u)
				for _, d := range cardinalOffsets {
					v := uc.Add(d)
					if !g.IsTraversable(v.X, v.Y) {
						continue
					}
					vi := g.index(v.X, v.Y)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// Connected reports whether a route of traversable cells joins a and b.
// Either endpoint being out of bounds or Blocked yields false.
// It is an O(N²) flood fill and serves as a solvability oracle that is
// independent of the search strategies.
func (g *Grid) Connected(a, b Coordinate) bool {
	if !g.IsTraversable(a.X, a.Y) || !g.IsTraversable(b.X, b.Y) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, g.size*g.size)
	seen[g.index(a.X, a.Y)] = true
	queue := []Coordinate{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, d := range cardinalOffsets {
			v := queue[qi].Add(d)
			if !g.IsTraversable(v.X, v.Y) {
				continue
			}
			if v == b {
				return true
			}
			vi := g.index(v.X, v.Y)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}

// Solvable reports whether the grid's own start and end are connected.
func (g *Grid) Solvable() bool {
	return g.Connected(g.start, g.end)
}
