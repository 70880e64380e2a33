package coordinate

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Unit is the scalar type of a coordinate axis.
type Unit interface {
	constraints.Signed
}

// HorizontalAxis tells which way stored horizontal values grow.
type HorizontalAxis int

const (
	PositiveRight HorizontalAxis = iota
	PositiveLeft
)

// VerticalAxis tells which way stored vertical values grow.
type VerticalAxis int

const (
	PositiveUp VerticalAxis = iota
	PositiveDown
)

// Orientation is implemented by the zero-size marker types below and is
// passed as a type argument, never as a value.
type Orientation interface {
	HorizontalAxis() HorizontalAxis
	VerticalAxis() VerticalAxis
}

type (
	// RightUp is the Cartesian convention.
	RightUp struct{}
	// RightDown is the screen convention.
	RightDown struct{}
	// LeftUp mirrors RightUp horizontally.
	LeftUp struct{}
	// LeftDown mirrors RightDown horizontally.
	LeftDown struct{}
)

func (RightUp) HorizontalAxis() HorizontalAxis   { return PositiveRight }
func (RightUp) VerticalAxis() VerticalAxis       { return PositiveUp }
func (RightDown) HorizontalAxis() HorizontalAxis { return PositiveRight }
func (RightDown) VerticalAxis() VerticalAxis     { return PositiveDown }
func (LeftUp) HorizontalAxis() HorizontalAxis    { return PositiveLeft }
func (LeftUp) VerticalAxis() VerticalAxis        { return PositiveUp }
func (LeftDown) HorizontalAxis() HorizontalAxis  { return PositiveLeft }
func (LeftDown) VerticalAxis() VerticalAxis      { return PositiveDown }

// Coordinate is the constraint satisfied by XY and RowCol. C is the
// implementing type itself, so methods can return it.
//
// FromHorzVert is a constructor and ignores its receiver; call it on the
// zero value. Its arguments are always (horizontal, vertical) whatever the
// storage order of the concrete type.
type Coordinate[U Unit, C any] interface {
	comparable
	fmt.Stringer

	Horizontal() U
	Vertical() U
	Axes() (HorizontalAxis, VerticalAxis)
	FromHorzVert(h, v U) C

	// Project returns the coordinate distance steps away in direction d.
	Project(d Direction, distance U) C
	Up(distance U) C
	Down(distance U) C
	Left(distance U) C
	Right(distance U) C

	// HorizontalRelativeTo returns how far, and in which direction, the
	// receiver lies from other along the horizontal axis. VerticalRelativeTo
	// does the same vertically. Equal values yield (0, None).
	HorizontalRelativeTo(other C) (U, Direction)
	VerticalRelativeTo(other C) (U, Direction)

	ManhattanDistance(other C) U
}

// project shifts (h, v) by distance along d under the given orientation.
func project[U Unit](h, v U, hx HorizontalAxis, vx VerticalAxis, d Direction, distance U) (U, U) {
	switch d {
	case Up:
		if vx == PositiveUp {
			return h, v + distance
		}
		return h, v - distance
	case Down:
		if vx == PositiveUp {
			return h, v - distance
		}
		return h, v + distance
	case Left:
		if hx == PositiveRight {
			return h - distance, v
		}
		return h + distance, v
	case Right:
		if hx == PositiveRight {
			return h + distance, v
		}
		return h - distance, v
	default:
		return h, v
	}
}

// relative returns |a-b| and the direction a lies from b, where increasing
// is the direction in which stored values grow.
func relative[U Unit](a, b U, increasing Direction) (U, Direction) {
	switch {
	case a == b:
		return 0, None
	case a > b:
		return a - b, increasing
	default:
		return b - a, increasing.Opposite()
	}
}

func increasingHorizontal(hx HorizontalAxis) Direction {
	if hx == PositiveRight {
		return Right
	}
	return Left
}

func increasingVertical(vx VerticalAxis) Direction {
	if vx == PositiveUp {
		return Up
	}
	return Down
}

func absDiff[U Unit](a, b U) U {
	if a > b {
		return a - b
	}
	return b - a
}
