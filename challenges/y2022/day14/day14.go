// Package day14 solves 2022 day 14, Regolith Reservoir: sand falling through
// a cave slice.
//
// The cave uses x/y coordinates with y growing downward, so Down is the
// direction of gravity.
package day14

import (
	_ "embed"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/aoc/coordinate"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/input"
	"github.com/katalvlaran/aoc/puzzle"
)

var (
	//go:embed sample.txt
	sample string
	//go:embed puzzle.toml
	manifest string
)

// Day is the registered puzzle.
var Day = puzzle.MustDay(2022, 14, "Regolith Reservoir", Part1, Part2, sample, manifest)

type pos = coordinate.XY[int, coordinate.RightDown]

// Tile is one cell of the cave. The zero value is air.
type Tile uint8

// Cave contents.
const (
	Air Tile = iota
	Rock
	Sand
)

func (t Tile) String() string {
	switch t {
	case Rock:
		return "#"
	case Sand:
		return "o"
	}
	return "."
}

type cave = grid.Grid[Tile, int, pos]

var source = pos{X: 500, Y: 0}

// Part1 counts grains that come to rest before sand starts falling past
// the lowest rock.
func Part1(in string, _ puzzle.Params) (string, error) {
	c, err := parse(in)
	if err != nil {
		return "", err
	}
	bottom, _ := c.Bounds().Bottom()
	n := 0
	for {
		rest, ok := drop(c, func(pos) bool { return false }, bottom)
		if !ok {
			break
		}
		*c.Ensure(rest) = Sand
		n++
	}
	return strconv.Itoa(n), nil
}

// Part2 adds an infinite floor two below the lowest rock and counts grains
// until the source is covered.
func Part2(in string, _ puzzle.Params) (string, error) {
	c, err := parse(in)
	if err != nil {
		return "", err
	}
	bottom, _ := c.Bounds().Bottom()
	floor := bottom + 2
	n := 0
	for {
		if t, _ := c.Get(source); t == Sand {
			break
		}
		rest, _ := drop(c, func(p pos) bool { return p.Y >= floor }, floor)
		*c.Ensure(rest) = Sand
		n++
	}
	return strconv.Itoa(n), nil
}

// drop lets one grain fall from the source. It reports false if the grain
// passes below limit without coming to rest.
func drop(c *cave, solid func(pos) bool, limit int) (pos, bool) {
	sand := source
	for sand.Y <= limit {
		moved := false
		below := sand.Down(1)
		for _, next := range [3]pos{below, below.Left(1), below.Right(1)} {
			if solid(next) {
				continue
			}
			if t, _ := c.Get(next); t == Air {
				sand = next
				moved = true
				break
			}
		}
		if !moved {
			return sand, true
		}
	}
	return sand, false
}

// Render draws the cave, one line per row.
func Render(w io.Writer, c *cave) error {
	return c.Render(w, func(_ pos, t *Tile) string {
		if t == nil {
			return Air.String()
		}
		return t.String()
	})
}

func parse(in string) (*cave, error) {
	c := grid.New[Tile, int, pos]()
	for i, l := range input.Lines(in) {
		var corners []pos
		for _, part := range strings.Split(l, " -> ") {
			xy, err := input.Ints(part)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", i+1)
			}
			if len(xy) != 2 {
				return nil, errors.Newf("line %d: bad point %q", i+1, part)
			}
			corners = append(corners, pos{X: xy[0], Y: xy[1]})
		}
		for j := 1; j < len(corners); j++ {
			segment := coordinate.FromPoints[int, pos](corners[j-1], corners[j])
			for p := range segment.All() {
				*c.Ensure(p) = Rock
			}
		}
	}
	if c.Len() == 0 {
		return nil, errors.New("no rock paths")
	}
	return c, nil
}
