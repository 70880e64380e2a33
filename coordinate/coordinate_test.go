package coordinate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/coordinate"
)

type (
	cell      = coordinate.Cell
	point     = coordinate.Point
	mirrorRC  = coordinate.RowCol[int, coordinate.LeftUp]
	mirrorXY  = coordinate.XY[int64, coordinate.LeftDown]
	smallCell = coordinate.RowCol[int8, coordinate.RightDown]
)

// roundTrip checks the projection identities for any coordinate type.
func roundTrip[U coordinate.Unit, C coordinate.Coordinate[U, C]](t *testing.T, c C, d U) {
	t.Helper()
	assert.Equal(t, c, c.Up(d).Down(d), "up/down %v by %d", c, d)
	assert.Equal(t, c, c.Down(d).Up(d), "down/up %v by %d", c, d)
	assert.Equal(t, c, c.Left(d).Right(d), "left/right %v by %d", c, d)
	assert.Equal(t, c, c.Right(d).Left(d), "right/left %v by %d", c, d)
	assert.Equal(t, c, c.Project(coordinate.None, d), "none %v by %d", c, d)
}

// TestProjectionRoundTrip runs the identities over every orientation.
func TestProjectionRoundTrip(t *testing.T) {
	for r := -3; r <= 3; r++ {
		for c := -3; c <= 3; c++ {
			for d := 0; d <= 4; d++ {
				roundTrip[int](t, cell{Row: r, Col: c}, d)
				roundTrip[int](t, point{X: c, Y: r}, d)
				roundTrip[int](t, mirrorRC{Row: r, Col: c}, d)
				roundTrip[int64](t, mirrorXY{X: int64(c), Y: int64(r)}, int64(d))
			}
		}
	}
}

// TestProjectionOrientation pins down which stored value each direction moves.
func TestProjectionOrientation(t *testing.T) {
	c := cell{Row: 5, Col: 5}
	require.Equal(t, cell{Row: 4, Col: 5}, c.Up(1), "screen up decreases row")
	require.Equal(t, cell{Row: 6, Col: 5}, c.Down(1))
	require.Equal(t, cell{Row: 5, Col: 4}, c.Left(1))
	require.Equal(t, cell{Row: 5, Col: 7}, c.Right(2))

	p := point{X: 5, Y: 5}
	require.Equal(t, point{X: 5, Y: 6}, p.Up(1), "cartesian up increases y")
	require.Equal(t, point{X: 5, Y: 4}, p.Down(1))
	require.Equal(t, point{X: 4, Y: 5}, p.Left(1))

	m := mirrorRC{Row: 0, Col: 0}
	require.Equal(t, mirrorRC{Row: 1, Col: 0}, m.Up(1))
	require.Equal(t, mirrorRC{Row: 0, Col: 1}, m.Left(1), "positive-left: left increases col")
	require.Equal(t, mirrorRC{Row: 0, Col: -1}, m.Right(1))

	s := smallCell{Row: 1, Col: 1}
	require.Equal(t, smallCell{Row: 0, Col: 1}, s.Up(1))
}

// TestFromHorzVert verifies argument order independent of storage order.
func TestFromHorzVert(t *testing.T) {
	var zc cell
	require.Equal(t, cell{Row: 7, Col: 3}, zc.FromHorzVert(3, 7))
	c := zc.FromHorzVert(3, 7)
	require.Equal(t, 3, c.Horizontal())
	require.Equal(t, 7, c.Vertical())

	var zp point
	require.Equal(t, point{X: 3, Y: 7}, zp.FromHorzVert(3, 7))
	require.Equal(t, coordinate.NewRowCol[int, coordinate.RightDown](7, 3), zc.FromHorzVert(3, 7))
	require.Equal(t, coordinate.NewXY[int, coordinate.RightUp](3, 7), zp.FromHorzVert(3, 7))
}

// TestRelativeTo checks magnitude/direction decomposition for both shapes.
func TestRelativeTo(t *testing.T) {
	tail, head := cell{Row: 0, Col: 0}, cell{Row: -2, Col: 1}

	dist, dir := tail.HorizontalRelativeTo(head)
	require.Equal(t, 1, dist)
	require.Equal(t, coordinate.Left, dir, "tail is left of head")

	dist, dir = tail.VerticalRelativeTo(head)
	require.Equal(t, 2, dist)
	require.Equal(t, coordinate.Down, dir, "tail is below head on screen")

	dist, dir = tail.HorizontalRelativeTo(tail)
	require.Equal(t, 0, dist)
	require.Equal(t, coordinate.None, dir)

	a, b := point{X: 0, Y: 0}, point{X: 0, Y: 3}
	dist, dir = a.VerticalRelativeTo(b)
	require.Equal(t, 3, dist)
	require.Equal(t, coordinate.Down, dir, "smaller y is below in cartesian space")

	m1, m2 := mirrorRC{Col: 0}, mirrorRC{Col: 4}
	dist, dir = m1.HorizontalRelativeTo(m2)
	require.Equal(t, 4, dist)
	require.Equal(t, coordinate.Right, dir, "smaller col is right on a positive-left axis")
}

// TestRelativeToInvertsProject checks that projecting by the returned
// direction's opposite closes the gap.
func TestRelativeToInvertsProject(t *testing.T) {
	origin := cell{Row: 2, Col: -1}
	for _, d := range coordinate.Cardinals {
		for n := 1; n <= 3; n++ {
			moved := origin.Project(d, n)
			hd, hdir := moved.HorizontalRelativeTo(origin)
			vd, vdir := moved.VerticalRelativeTo(origin)
			back := moved.Project(hdir.Opposite(), hd).Project(vdir.Opposite(), vd)
			require.Equal(t, origin, back, "%v moved %v by %d", origin, d, n)
			if d == coordinate.Up || d == coordinate.Down {
				require.Equal(t, d, vdir)
			} else {
				require.Equal(t, d, hdir)
			}
		}
	}
}

// TestManhattan covers the taxicab metric.
func TestManhattan(t *testing.T) {
	require.Equal(t, 7, point{X: 2, Y: 18}.ManhattanDistance(point{X: -2, Y: 15}))
	require.Equal(t, 0, cell{}.ManhattanDistance(cell{}))
	require.Equal(t, 5, cell{Row: 1, Col: 1}.ManhattanDistance(cell{Row: -1, Col: -2}))
}

// TestDirection covers the total operations on Direction.
func TestDirection(t *testing.T) {
	for _, d := range coordinate.Cardinals {
		require.Equal(t, d, d.Opposite().Opposite())
		require.Equal(t, d, d.Clockwise().CounterClockwise())
		require.Equal(t, d.Opposite(), d.Clockwise().Clockwise())
	}
	require.Equal(t, coordinate.None, coordinate.None.Opposite())
	require.Equal(t, coordinate.None, coordinate.None.Clockwise())
	require.Equal(t, coordinate.None, coordinate.None.CounterClockwise())
	require.Equal(t, coordinate.Right, coordinate.Up.Clockwise())
	require.Equal(t, coordinate.Left, coordinate.Up.CounterClockwise())

	var zero coordinate.Direction
	require.Equal(t, coordinate.None, zero)

	require.Equal(t, '^', coordinate.Up.Rune())
	require.Equal(t, '.', coordinate.None.Rune())
	require.Equal(t, "Left", coordinate.Left.String())
}

// TestParseDirection covers short, long and invalid forms.
func TestParseDirection(t *testing.T) {
	for in, want := range map[string]coordinate.Direction{
		"U": coordinate.Up, "d": coordinate.Down, "Left": coordinate.Left, " R ": coordinate.Right,
	} {
		got, err := coordinate.ParseDirection(in)
		require.NoError(t, err)
		require.Equal(t, want, got, in)
	}
	_, err := coordinate.ParseDirection("X")
	require.ErrorIs(t, err, coordinate.ErrUnknownDirection)
}

// TestString covers the textual forms.
func TestString(t *testing.T) {
	require.Equal(t, "<r=1,c=2>", cell{Row: 1, Col: 2}.String())
	require.Equal(t, "<x=1,y=2>", point{X: 1, Y: 2}.String())
}
