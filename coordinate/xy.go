package coordinate

import "fmt"

// XY is a Cartesian point. X is horizontal and Y vertical; O fixes which
// way each grows.
type XY[U Unit, O Orientation] struct {
	X, Y U
}

// Point is the conventional Cartesian point: x grows right, y grows up.
type Point = XY[int, RightUp]

// NewXY returns the point (x, y).
func NewXY[U Unit, O Orientation](x, y U) XY[U, O] {
	return XY[U, O]{X: x, Y: y}
}

func (p XY[U, O]) Horizontal() U { return p.X }
func (p XY[U, O]) Vertical() U   { return p.Y }

func (XY[U, O]) Axes() (HorizontalAxis, VerticalAxis) {
	var o O
	return o.HorizontalAxis(), o.VerticalAxis()
}

func (XY[U, O]) FromHorzVert(h, v U) XY[U, O] {
	return XY[U, O]{X: h, Y: v}
}

func (p XY[U, O]) Project(d Direction, distance U) XY[U, O] {
	hx, vx := p.Axes()
	x, y := project(p.X, p.Y, hx, vx, d, distance)
	return XY[U, O]{X: x, Y: y}
}

func (p XY[U, O]) Up(distance U) XY[U, O]    { return p.Project(Up, distance) }
func (p XY[U, O]) Down(distance U) XY[U, O]  { return p.Project(Down, distance) }
func (p XY[U, O]) Left(distance U) XY[U, O]  { return p.Project(Left, distance) }
func (p XY[U, O]) Right(distance U) XY[U, O] { return p.Project(Right, distance) }

func (p XY[U, O]) HorizontalRelativeTo(other XY[U, O]) (U, Direction) {
	hx, _ := p.Axes()
	return relative(p.X, other.X, increasingHorizontal(hx))
}

func (p XY[U, O]) VerticalRelativeTo(other XY[U, O]) (U, Direction) {
	_, vx := p.Axes()
	return relative(p.Y, other.Y, increasingVertical(vx))
}

// ManhattanDistance returns |dx| + |dy|.
func (p XY[U, O]) ManhattanDistance(other XY[U, O]) U {
	return absDiff(p.X, other.X) + absDiff(p.Y, other.Y)
}

func (p XY[U, O]) String() string {
	return fmt.Sprintf("<x=%d,y=%d>", p.X, p.Y)
}
