package grid

import (
	"io"
	"iter"
	"strings"

	"fortio.org/safecast"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/aoc/coordinate"
)

// New returns an empty grid with an empty bounding box.
func New[T any, U coordinate.Unit, C coordinate.Coordinate[U, C]]() *Grid[T, U, C] {
	return &Grid[T, U, C]{tiles: make(map[C]*T)}
}

// FromRows builds a RowCol-indexed grid from a rectangular block of rows,
// row-major with the first value at (0, 0). Returns ErrNonRectangular if
// any row length differs from the first, or an overflow error if an index
// does not fit in U.
// Complexity: O(W×H).
func FromRows[T any, U coordinate.Unit, O coordinate.Orientation](rows [][]T) (*Grid[T, U, coordinate.RowCol[U, O]], error) {
	g := New[T, U, coordinate.RowCol[U, O]]()
	if len(rows) == 0 {
		return g, nil
	}
	w := len(rows[0])
	for r, row := range rows {
		if len(row) != w {
			return nil, errors.Wrapf(ErrNonRectangular, "row %d has %d values, want %d", r, len(row), w)
		}
		ru, err := safecast.Conv[U](r)
		if err != nil {
			return nil, errors.Wrapf(err, "grid: row index %d", r)
		}
		for c, v := range row {
			cu, err := safecast.Conv[U](c)
			if err != nil {
				return nil, errors.Wrapf(err, "grid: column index %d", c)
			}
			g.Insert(coordinate.RowCol[U, O]{Row: ru, Col: cu}, v)
		}
	}
	return g, nil
}

// Len returns the number of materialized tiles.
func (g *Grid[T, U, C]) Len() int { return len(g.tiles) }

// Bounds returns the bounding box of every coordinate ever written.
func (g *Grid[T, U, C]) Bounds() coordinate.RectangularRange[U, C] { return g.bounds }

// InBounds reports whether c lies inside the bounding box.
func (g *Grid[T, U, C]) InBounds(c C) bool { return g.bounds.Contains(c) }

// Insert stores v at c, extends the bounding box to include c and returns
// the previous value, if any.
func (g *Grid[T, U, C]) Insert(c C, v T) (prev T, had bool) {
	g.bounds.Extend(c)
	if p, ok := g.tiles[c]; ok {
		prev, *p = *p, v
		return prev, true
	}
	if g.tiles == nil {
		g.tiles = make(map[C]*T)
	}
	g.tiles[c] = &v
	return prev, false
}

// Get returns the tile at c; ok is false if nothing was ever stored there.
func (g *Grid[T, U, C]) Get(c C) (T, bool) {
	if p, ok := g.tiles[c]; ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// Pointer returns a writable reference to the tile at c, or nil if absent.
// It never changes the grid.
func (g *Grid[T, U, C]) Pointer(c C) *T {
	return g.tiles[c]
}

// Ensure returns a writable reference to the tile at c, storing the zero
// value first if c is absent. The bounding box always grows to include c.
func (g *Grid[T, U, C]) Ensure(c C) *T {
	g.bounds.Extend(c)
	if p, ok := g.tiles[c]; ok {
		return p
	}
	if g.tiles == nil {
		g.tiles = make(map[C]*T)
	}
	p := new(T)
	g.tiles[c] = p
	return p
}

// EnumerateTiles yields every coordinate of the bounding box, in
// RectangularRange.All order, with its tile or nil when absent.
// Missing tiles are not materialized.
func (g *Grid[T, U, C]) EnumerateTiles() iter.Seq2[C, *T] {
	return func(yield func(C, *T) bool) {
		for c := range g.bounds.All() {
			if !yield(c, g.tiles[c]) {
				return
			}
		}
	}
}

// EnumerateTilesMut stores a zero tile at every coordinate of the bounding
// box that lacks one, then yields every coordinate with its tile.
// The fill-in happens when iteration starts and covers the whole box.
func (g *Grid[T, U, C]) EnumerateTilesMut() iter.Seq2[C, *T] {
	return func(yield func(C, *T) bool) {
		for c := range g.bounds.All() {
			g.Ensure(c)
		}
		for c := range g.bounds.All() {
			if !yield(c, g.tiles[c]) {
				return
			}
		}
	}
}

// Tiles yields the materialized tile values in unspecified order.
func (g *Grid[T, U, C]) Tiles() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, p := range g.tiles {
			if !yield(*p) {
				return
			}
		}
	}
}

// TilesMut yields writable references to the materialized tiles in
// unspecified order.
func (g *Grid[T, U, C]) TilesMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, p := range g.tiles {
			if !yield(p) {
				return
			}
		}
	}
}

// Neighbors yields the coordinates adjacent to c under conn that lie inside
// the bounding box: orthogonal neighbors clockwise from Up, then (Conn8)
// diagonals clockwise from up-right.
func (g *Grid[T, U, C]) Neighbors(c C, conn Connectivity) iter.Seq[C] {
	return func(yield func(C) bool) {
		for _, step := range conn.steps() {
			n := c.Project(step[0], 1).Project(step[1], 1)
			if !g.bounds.Contains(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Render writes the bounding box to w, one line per row from top to bottom
// and one cell string per column from left to right. cell receives nil for
// absent tiles.
func (g *Grid[T, U, C]) Render(w io.Writer, cell func(c C, t *T) string) error {
	var (
		zero C
		sb   strings.Builder
	)
	for v := range g.bounds.Rows() {
		sb.Reset()
		for h := range g.bounds.Columns() {
			c := zero.FromHorzVert(h, v)
			sb.WriteString(cell(c, g.tiles[c]))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return errors.Wrap(err, "grid: render")
		}
	}
	return nil
}
