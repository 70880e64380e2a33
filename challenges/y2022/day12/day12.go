// Package day12 solves 2022 day 12, Hill Climbing Algorithm.
//
// Both parts run one breadth-first search backwards from the summit E. A
// forward step may climb at most one unit, so the reverse step from current
// to next is allowed when current-next <= 1.
package day12

import (
	_ "embed"
	"iter"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/aoc/coordinate"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/input"
	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/search"
)

var (
	//go:embed sample.txt
	sample string
	//go:embed puzzle.toml
	manifest string
)

// Day is the registered puzzle.
var Day = puzzle.MustDay(2022, 12, "Hill Climbing Algorithm", Part1, Part2, sample, manifest)

// ErrUnreachable is returned when no start square can reach the summit.
var ErrUnreachable = errors.New("summit unreachable")

// Height is an elevation from 'a' (0) to 'z' (25).
type Height int8

type heightmap struct {
	grid       *grid.Grid[Height, int, coordinate.Cell]
	start, end coordinate.Cell
}

// Part1 is the fewest steps from S to E.
func Part1(in string, _ puzzle.Params) (string, error) {
	hm, dist, err := solve(in)
	if err != nil {
		return "", err
	}
	d, ok := dist[hm.start]
	if !ok {
		return "", ErrUnreachable
	}
	return strconv.Itoa(d), nil
}

// Part2 is the fewest steps from any square of elevation 'a' to E.
func Part2(in string, _ puzzle.Params) (string, error) {
	hm, dist, err := solve(in)
	if err != nil {
		return "", err
	}
	best := -1
	for c, h := range hm.grid.EnumerateTiles() {
		if *h != 0 {
			continue
		}
		if d, ok := dist[c]; ok && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return "", ErrUnreachable
	}
	return strconv.Itoa(best), nil
}

func solve(in string) (*heightmap, map[coordinate.Cell]int, error) {
	hm, err := parse(in)
	if err != nil {
		return nil, nil, err
	}
	downhill := func(c coordinate.Cell) iter.Seq[coordinate.Cell] {
		return hm.grid.Neighbors(c, grid.Conn4)
	}
	dist, err := search.Distances(hm.end, downhill, search.WithFilterNeighbor(func(curr, next coordinate.Cell) bool {
		a, _ := hm.grid.Get(curr)
		b, _ := hm.grid.Get(next)
		return a-b <= 1
	}))
	if err != nil {
		return nil, nil, err
	}
	return hm, dist, nil
}

func parse(in string) (*heightmap, error) {
	rows := input.Bytes(in)
	heights := make([][]Height, len(rows))
	var (
		hm             heightmap
		foundS, foundE bool
	)
	for r, row := range rows {
		heights[r] = make([]Height, len(row))
		for c, b := range row {
			switch b {
			case 'S':
				hm.start, foundS = coordinate.Cell{Row: r, Col: c}, true
				b = 'a'
			case 'E':
				hm.end, foundE = coordinate.Cell{Row: r, Col: c}, true
				b = 'z'
			}
			if b < 'a' || b > 'z' {
				return nil, errors.Newf("row %d col %d: bad elevation %q", r, c, b)
			}
			heights[r][c] = Height(b - 'a')
		}
	}
	if !foundS || !foundE {
		return nil, errors.New("heightmap needs both S and E")
	}
	g, err := grid.FromRows[Height, int, coordinate.RightDown](heights)
	if err != nil {
		return nil, err
	}
	hm.grid = g
	return &hm, nil
}
