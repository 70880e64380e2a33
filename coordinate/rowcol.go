package coordinate

import "fmt"

// RowCol is a grid cell addressed row first. Row is the vertical axis and
// Col the horizontal one; O fixes which way each grows.
type RowCol[U Unit, O Orientation] struct {
	Row, Col U
}

// Cell is the conventional screen cell: rows grow downward, columns grow
// to the right.
type Cell = RowCol[int, RightDown]

// NewRowCol returns the cell at (row, col). Note the argument order differs
// from FromHorzVert.
func NewRowCol[U Unit, O Orientation](row, col U) RowCol[U, O] {
	return RowCol[U, O]{Row: row, Col: col}
}

func (c RowCol[U, O]) Horizontal() U { return c.Col }
func (c RowCol[U, O]) Vertical() U   { return c.Row }

func (RowCol[U, O]) Axes() (HorizontalAxis, VerticalAxis) {
	var o O
	return o.HorizontalAxis(), o.VerticalAxis()
}

func (RowCol[U, O]) FromHorzVert(h, v U) RowCol[U, O] {
	return RowCol[U, O]{Row: v, Col: h}
}

func (c RowCol[U, O]) Project(d Direction, distance U) RowCol[U, O] {
	hx, vx := c.Axes()
	col, row := project(c.Col, c.Row, hx, vx, d, distance)
	return RowCol[U, O]{Row: row, Col: col}
}

func (c RowCol[U, O]) Up(distance U) RowCol[U, O]    { return c.Project(Up, distance) }
func (c RowCol[U, O]) Down(distance U) RowCol[U, O]  { return c.Project(Down, distance) }
func (c RowCol[U, O]) Left(distance U) RowCol[U, O]  { return c.Project(Left, distance) }
func (c RowCol[U, O]) Right(distance U) RowCol[U, O] { return c.Project(Right, distance) }

func (c RowCol[U, O]) HorizontalRelativeTo(other RowCol[U, O]) (U, Direction) {
	hx, _ := c.Axes()
	return relative(c.Col, other.Col, increasingHorizontal(hx))
}

func (c RowCol[U, O]) VerticalRelativeTo(other RowCol[U, O]) (U, Direction) {
	_, vx := c.Axes()
	return relative(c.Row, other.Row, increasingVertical(vx))
}

// ManhattanDistance returns |drow| + |dcol|.
func (c RowCol[U, O]) ManhattanDistance(other RowCol[U, O]) U {
	return absDiff(c.Row, other.Row) + absDiff(c.Col, other.Col)
}

func (c RowCol[U, O]) String() string {
	return fmt.Sprintf("<r=%d,c=%d>", c.Row, c.Col)
}
