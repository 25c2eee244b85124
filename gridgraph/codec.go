package gridgraph

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Parse reads a grid in the text format produced by Grid.String:
// one row per line, '.' Free, '#' Blocked, 'S' Start, 'E' End.
// Blank lines and lines starting with ';' are ignored.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n\t ")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}

	return ParseLines(lines)
}

// ParseLines decodes rows already split into lines.
func ParseLines(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	// shape first, so a malformed input allocates nothing
	w := utf8.RuneCountInString(lines[0])
	for _, line := range lines[1:] {
		if utf8.RuneCountInString(line) != w {
			return nil, ErrNonRectangular
		}
	}
	if w != len(lines) {
		return nil, fmt.Errorf("%w: got %d×%d", ErrNonSquare, w, len(lines))
	}

	rows := make([][]CellState, len(lines))
	for y, line := range lines {
		rows[y] = make([]CellState, 0, w)
		for x, r := range []rune(line) {
			s, err := stateFromRune(r)
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			rows[y] = append(rows[y], s)
		}
	}

	return fromStates(rows)
}

// Lines renders the grid one string per row.
func (g *Grid) Lines() []string {
	lines := make([]string, g.size)
	var sb strings.Builder
	for y, row := range g.cells {
		sb.Reset()
		for _, s := range row {
			sb.WriteRune(s.Rune())
		}
		lines[y] = sb.String()
	}
	return lines
}

// String renders the grid in the text format accepted by Parse.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n") + "\n"
}

// MarshalJSON encodes the grid as its row strings.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Lines())
}

// UnmarshalJSON decodes row strings written by MarshalJSON.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("gridgraph: decode grid: %w", err)
	}
	parsed, err := ParseLines(lines)
	if err != nil {
		return err
	}
	*g = *parsed
	return nil
}
