package grid

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/aoc/coordinate"
)

// Sentinel errors for grid construction.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses the four cardinal directions.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// steps lists the neighbor moves for a connectivity as pairs of directions;
// the second element is None for orthogonal moves.
func (c Connectivity) steps() [][2]coordinate.Direction {
	orthogonal := [][2]coordinate.Direction{
		{coordinate.Up, coordinate.None},
		{coordinate.Right, coordinate.None},
		{coordinate.Down, coordinate.None},
		{coordinate.Left, coordinate.None},
	}
	if c != Conn8 {
		return orthogonal
	}
	return append(orthogonal,
		[2]coordinate.Direction{coordinate.Up, coordinate.Right},
		[2]coordinate.Direction{coordinate.Down, coordinate.Right},
		[2]coordinate.Direction{coordinate.Down, coordinate.Left},
		[2]coordinate.Direction{coordinate.Up, coordinate.Left},
	)
}

// Grid maps coordinates of type C to tiles of type T and remembers the
// bounding box of every coordinate written. The zero value is an empty grid.
//
// Tiles are stored behind pointers so that Pointer and Ensure hand out
// stable, writable references.
type Grid[T any, U coordinate.Unit, C coordinate.Coordinate[U, C]] struct {
	tiles  map[C]*T
	bounds coordinate.RectangularRange[U, C]
}
