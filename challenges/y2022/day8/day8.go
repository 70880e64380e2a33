// Package day8 solves 2022 day 8, Treetop Tree House: line of sight over a
// height map.
package day8

import (
	_ "embed"
	"strconv"

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
var Day = puzzle.MustDay(2022, 8, "Treetop Tree House", Part1, Part2, sample, manifest)

type forest = grid.Grid[int8, int, coordinate.Cell]

// Part1 counts trees visible from outside the grid. Each edge is swept
// inward; a tree is visible if it is taller than everything before it.
func Part1(in string, _ puzzle.Params) (string, error) {
	g, err := parse(in)
	if err != nil {
		return "", err
	}
	bounds := g.Bounds()
	visible := map[coordinate.Cell]struct{}{}
	for _, edge := range coordinate.Cardinals {
		inward := edge.Opposite()
		for start := range bounds.EdgePositions(edge) {
			tallest := int8(-1)
			for c := start; g.InBounds(c); c = c.Project(inward, 1) {
				h, _ := g.Get(c)
				if h > tallest {
					visible[c] = struct{}{}
					tallest = h
				}
				if tallest == 9 {
					break
				}
			}
		}
	}
	return strconv.Itoa(len(visible)), nil
}

// Part2 returns the best scenic score: the product of viewing distances in
// the four directions.
func Part2(in string, _ puzzle.Params) (string, error) {
	g, err := parse(in)
	if err != nil {
		return "", err
	}
	best := 0
	for c, h := range g.EnumerateTiles() {
		score := 1
		for _, d := range coordinate.Cardinals {
			score *= viewDistance(g, c, *h, d)
		}
		best = max(best, score)
	}
	return strconv.Itoa(best), nil
}

func viewDistance(g *forest, from coordinate.Cell, height int8, d coordinate.Direction) int {
	n := 0
	for c := from.Project(d, 1); g.InBounds(c); c = c.Project(d, 1) {
		n++
		if h, _ := g.Get(c); h >= height {
			break
		}
	}
	return n
}

func parse(in string) (*forest, error) {
	rows := input.Bytes(in)
	heights := make([][]int8, len(rows))
	for r, row := range rows {
		heights[r] = make([]int8, len(row))
		for c, b := range row {
			if b < '0' || b > '9' {
				return nil, errors.Newf("row %d col %d: not a digit %q", r, c, b)
			}
			heights[r][c] = int8(b - '0')
		}
	}
	return grid.FromRows[int8, int, coordinate.RightDown](heights)
}
