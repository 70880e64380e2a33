// Package position provides Position, a screen-style row/col point with an
// optional facing, moved either absolutely or relative to that facing.
//
// It predates package coordinate and is fixed to int rows growing downward.
// Relative movement and rotation require a facing; calling them on an
// unoriented Position is a programming error and panics with
// ErrNoOrientation.
package position

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/aoc/coordinate"
)

// ErrNoOrientation is the panic value of MoveRelative and Rotate on a
// Position without a facing.
var ErrNoOrientation = errors.New("position: position has no orientation")

// Movement is a step relative to the current facing.
type Movement int

const (
	Forward Movement = iota
	StepLeft
	StepRight
	Back
)

// Rotation is a quarter turn.
type Rotation int

const (
	TurnLeft Rotation = iota
	TurnRight
)

// Position is a row/col point with an optional facing. coordinate.None
// means "no facing".
type Position struct {
	row, col    int
	orientation coordinate.Direction
}

// New returns an unoriented position.
func New(row, col int) Position {
	return Position{row: row, col: col}
}

// NewOriented returns a position facing orientation.
func NewOriented(row, col int, orientation coordinate.Direction) Position {
	return Position{row: row, col: col, orientation: orientation}
}

func (p Position) Row() int { return p.row }
func (p Position) Col() int { return p.col }

// Orientation returns the facing; ok is false when there is none.
func (p Position) Orientation() (d coordinate.Direction, ok bool) {
	return p.orientation, p.orientation != coordinate.None
}

// MoveAbsolute moves distance steps in screen direction d (Up decreases the
// row). The facing is kept.
func (p Position) MoveAbsolute(d coordinate.Direction, distance int) Position {
	c := p.Cell().Project(d, distance)
	return Position{row: c.Row, col: c.Col, orientation: p.orientation}
}

// MoveRelative moves distance steps relative to the facing without turning.
func (p Position) MoveRelative(m Movement, distance int) Position {
	facing := p.mustOrientation()
	switch m {
	case StepLeft:
		facing = facing.CounterClockwise()
	case StepRight:
		facing = facing.Clockwise()
	case Back:
		facing = facing.Opposite()
	}
	return p.MoveAbsolute(facing, distance)
}

// Rotate turns the facing a quarter turn in place.
func (p Position) Rotate(r Rotation) Position {
	facing := p.mustOrientation()
	if r == TurnLeft {
		facing = facing.CounterClockwise()
	} else {
		facing = facing.Clockwise()
	}
	return Position{row: p.row, col: p.col, orientation: facing}
}

// Cell converts p to a screen coordinate, dropping the facing.
func (p Position) Cell() coordinate.Cell {
	return coordinate.Cell{Row: p.row, Col: p.col}
}

func (p Position) String() string {
	if p.orientation == coordinate.None {
		return fmt.Sprintf("(%d,%d)", p.row, p.col)
	}
	return fmt.Sprintf("(%d,%d)%c", p.row, p.col, p.orientation.Rune())
}

func (p Position) mustOrientation() coordinate.Direction {
	if p.orientation == coordinate.None {
		panic(ErrNoOrientation)
	}
	return p.orientation
}
