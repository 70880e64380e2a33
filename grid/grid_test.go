package grid_test

import (
	"bytes"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc/coordinate"
	"github.com/katalvlaran/aoc/grid"
)

type (
	cell  = coordinate.Cell
	point = coordinate.Point
)

// GridSuite exercises Grid over screen cells.
type GridSuite struct {
	suite.Suite
	g *grid.Grid[int, int, cell]
}

func (s *GridSuite) SetupTest() {
	s.g = grid.New[int, int, cell]()
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

// TestNewIsEmpty checks a fresh grid.
func (s *GridSuite) TestNewIsEmpty() {
	s.Equal(0, s.g.Len())
	s.True(s.g.Bounds().IsEmpty())
	_, ok := s.g.Get(cell{})
	s.False(ok)
	s.Nil(s.g.Pointer(cell{}))
	s.Empty(slices.Collect(s.g.Tiles()))
}

// TestInsertGet checks insert/get and the previous-value return.
func (s *GridSuite) TestInsertGet() {
	prev, had := s.g.Insert(cell{Row: 1, Col: 2}, 7)
	s.False(had)
	s.Equal(0, prev)

	v, ok := s.g.Get(cell{Row: 1, Col: 2})
	s.True(ok)
	s.Equal(7, v)
	s.True(s.g.InBounds(cell{Row: 1, Col: 2}))

	prev, had = s.g.Insert(cell{Row: 1, Col: 2}, 9)
	s.True(had)
	s.Equal(7, prev)
	v, _ = s.g.Get(cell{Row: 1, Col: 2})
	s.Equal(9, v)
	s.Equal(1, s.g.Len())
}

// TestPointer checks that Pointer writes through and never materializes.
func (s *GridSuite) TestPointer() {
	s.g.Insert(cell{}, 1)
	p := s.g.Pointer(cell{})
	s.Require().NotNil(p)
	*p = 5
	v, _ := s.g.Get(cell{})
	s.Equal(5, v)

	s.Nil(s.g.Pointer(cell{Row: 9}))
	s.Equal(1, s.g.Len())
	s.False(s.g.InBounds(cell{Row: 9}))
}

// TestEnsure checks the get-or-default path and bounding-box growth.
func (s *GridSuite) TestEnsure() {
	p := s.g.Ensure(cell{Row: -3, Col: 4})
	s.Equal(0, *p)
	v, ok := s.g.Get(cell{Row: -3, Col: 4})
	s.True(ok, "Ensure materializes the zero value")
	s.Equal(0, v)

	*s.g.Ensure(cell{Row: -3, Col: 4}) += 2
	*s.g.Ensure(cell{Row: -3, Col: 4}) += 2
	v, _ = s.g.Get(cell{Row: -3, Col: 4})
	s.Equal(4, v)

	s.g.Ensure(cell{Row: 2, Col: 0})
	s.True(s.g.InBounds(cell{Row: 0, Col: 2}), "box covers cells between writes")
	_, ok = s.g.Get(cell{Row: 0, Col: 2})
	s.False(ok, "in-box cells without entries stay absent")
}

// TestBoundsEqualsFold checks the bounding box against a fold of inserted keys.
func (s *GridSuite) TestBoundsEqualsFold() {
	keys := []cell{{Row: 3, Col: 3}, {Row: -1, Col: 7}, {Row: 0, Col: -4}, {Row: 12, Col: 0}}
	for i, k := range keys {
		s.g.Insert(k, i)
		s.True(s.g.Bounds().Contains(k))
	}
	s.Equal(coordinate.FromPoints[int, cell](keys...), s.g.Bounds())
}

// TestEnumerateTiles checks full-box enumeration without materialization.
func (s *GridSuite) TestEnumerateTiles() {
	s.g.Insert(cell{Row: 0, Col: 0}, 1)
	s.g.Insert(cell{Row: 1, Col: 1}, 4)

	var present, absent int
	for c, t := range s.g.EnumerateTiles() {
		s.True(s.g.InBounds(c))
		if t == nil {
			absent++
			continue
		}
		present++
	}
	s.Equal(2, present)
	s.Equal(2, absent)
	s.Equal(2, s.g.Len())
}

// TestEnumerateTilesMut checks that every in-box cell is materialized.
func (s *GridSuite) TestEnumerateTilesMut() {
	s.g.Insert(cell{Row: 0, Col: 0}, 1)
	s.g.Insert(cell{Row: 1, Col: 2}, 6)

	n := 0
	for _, t := range s.g.EnumerateTilesMut() {
		s.Require().NotNil(t)
		*t += 10
		n++
	}
	s.Equal(6, n)
	s.Equal(6, s.g.Len())
	v, _ := s.g.Get(cell{Row: 1, Col: 0})
	s.Equal(10, v)
	v, _ = s.g.Get(cell{Row: 1, Col: 2})
	s.Equal(16, v)
}

// TestTilesMut writes through the unordered iterator.
func (s *GridSuite) TestTilesMut() {
	s.g.Insert(cell{Row: 0, Col: 0}, 1)
	s.g.Insert(cell{Row: 5, Col: 5}, 2)
	for p := range s.g.TilesMut() {
		*p *= 3
	}
	got := slices.Sorted(s.g.Tiles())
	s.Equal([]int{3, 6}, got)
}

// TestNeighbors checks clipping and both connectivities.
func (s *GridSuite) TestNeighbors() {
	for c := range coordinate.FromPoints[int, cell](cell{}, cell{Row: 2, Col: 2}).All() {
		s.g.Insert(c, 0)
	}
	center := slices.Collect(s.g.Neighbors(cell{Row: 1, Col: 1}, grid.Conn4))
	s.Equal([]cell{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 0}}, center)

	corner := slices.Collect(s.g.Neighbors(cell{}, grid.Conn4))
	s.ElementsMatch([]cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, corner)

	s.Len(slices.Collect(s.g.Neighbors(cell{Row: 1, Col: 1}, grid.Conn8)), 8)
	s.Len(slices.Collect(s.g.Neighbors(cell{}, grid.Conn8)), 3)
}

// TestFromRows builds a grid from nested slices.
func TestFromRows(t *testing.T) {
	g, err := grid.FromRows[byte, int, coordinate.RightDown]([][]byte{
		[]byte("abc"),
		[]byte("def"),
	})
	require.NoError(t, err)
	require.Equal(t, 6, g.Len())
	v, ok := g.Get(cell{Row: 1, Col: 0})
	require.True(t, ok)
	require.Equal(t, byte('d'), v)
	require.Equal(t, 3, g.Bounds().Width())
	require.Equal(t, 2, g.Bounds().Height())

	_, err = grid.FromRows[int, int, coordinate.RightDown]([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, grid.ErrNonRectangular)

	empty, err := grid.FromRows[int, int, coordinate.RightDown](nil)
	require.NoError(t, err)
	require.True(t, empty.Bounds().IsEmpty())

	_, err = grid.FromRows[int, int8, coordinate.RightDown](make([][]int, 200))
	require.Error(t, err, "row index overflows int8")
}

// TestRenderCartesian checks that rows print top to bottom in visual order.
func TestRenderCartesian(t *testing.T) {
	g := grid.New[int, int, point]()
	g.Insert(point{X: 0, Y: 0}, 1)
	g.Insert(point{X: 2, Y: 1}, 2)

	var buf bytes.Buffer
	err := g.Render(&buf, func(_ point, t *int) string {
		if t == nil {
			return "."
		}
		return strconv.Itoa(*t)
	})
	require.NoError(t, err)
	require.Equal(t, "..2\n1..\n", buf.String())
}

// TestZeroValueGrid checks that the zero value is usable.
func TestZeroValueGrid(t *testing.T) {
	var g grid.Grid[string, int, cell]
	g.Insert(cell{Row: 1}, "x")
	*g.Ensure(cell{Row: 2}) = "y"
	require.Equal(t, 2, g.Len())
}
