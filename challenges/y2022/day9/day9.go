// Package day9 solves 2022 day 9, Rope Bridge: knots following a moving head.
package day9

import (
	_ "embed"
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
var Day = puzzle.MustDay(2022, 9, "Rope Bridge", Part1, Part2, sample, manifest)

type motion struct {
	dir   coordinate.Direction
	steps int
}

// Part1 counts cells visited by the tail of a two-knot rope.
func Part1(in string, _ puzzle.Params) (string, error) { return simulate(in, 2) }

// Part2 counts cells visited by the tail of a ten-knot rope.
func Part2(in string, _ puzzle.Params) (string, error) { return simulate(in, 10) }

func simulate(in string, knots int) (string, error) {
	motions, err := parse(in)
	if err != nil {
		return "", err
	}
	rope := make([]coordinate.Point, knots)
	visited := grid.New[bool, int, coordinate.Point]()
	*visited.Ensure(rope[knots-1]) = true

	for _, m := range motions {
		for range m.steps {
			rope[0] = rope[0].Project(m.dir, 1)
			for i := 1; i < knots; i++ {
				rope[i] = follow(rope[i], rope[i-1])
			}
			*visited.Ensure(rope[knots-1]) = true
		}
	}

	n := 0
	for v := range visited.Tiles() {
		if v {
			n++
		}
	}
	return strconv.Itoa(n), nil
}

// follow moves knot one step toward head, diagonally if needed, once they
// are no longer touching.
func follow(knot, head coordinate.Point) coordinate.Point {
	dh, hdir := head.HorizontalRelativeTo(knot)
	dv, vdir := head.VerticalRelativeTo(knot)
	if dh <= 1 && dv <= 1 {
		return knot
	}
	return knot.Project(hdir, min(dh, 1)).Project(vdir, min(dv, 1))
}

func parse(in string) ([]motion, error) {
	var out []motion
	for i, l := range input.Lines(in) {
		d, n, ok := strings.Cut(l, " ")
		if !ok {
			return nil, errors.Newf("line %d: malformed motion %q", i+1, l)
		}
		dir, err := coordinate.ParseDirection(d)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		steps, err := strconv.Atoi(n)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		out = append(out, motion{dir: dir, steps: steps})
	}
	return out, nil
}
