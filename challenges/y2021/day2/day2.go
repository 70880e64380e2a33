// Package day2 solves 2021 day 2, Dive!: steering a submarine.
//
// The submarine is a position.Position in screen coordinates: forward moves
// right along the columns and depth grows downward along the rows.
package day2

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/aoc/coordinate"
	"github.com/katalvlaran/aoc/input"
	"github.com/katalvlaran/aoc/position"
	"github.com/katalvlaran/aoc/puzzle"
)

var (
	//go:embed sample.txt
	sample string
	//go:embed puzzle.toml
	manifest string
)

// Day is the registered puzzle.
var Day = puzzle.MustDay(2021, 2, "Dive!", Part1, Part2, sample, manifest)

type command struct {
	dir   coordinate.Direction
	count int
}

// Part1 applies commands as absolute moves.
func Part1(in string, _ puzzle.Params) (string, error) {
	cmds, err := parse(in)
	if err != nil {
		return "", err
	}
	sub := position.New(0, 0)
	for _, c := range cmds {
		sub = sub.MoveAbsolute(c.dir, c.count)
	}
	return strconv.Itoa(sub.Row() * sub.Col()), nil
}

// Part2 treats up and down as aim changes; forward moves and dives by aim.
func Part2(in string, _ puzzle.Params) (string, error) {
	cmds, err := parse(in)
	if err != nil {
		return "", err
	}
	sub := position.New(0, 0)
	aim := 0
	for _, c := range cmds {
		switch c.dir {
		case coordinate.Down:
			aim += c.count
		case coordinate.Up:
			aim -= c.count
		default:
			sub = sub.MoveAbsolute(coordinate.Right, c.count).MoveAbsolute(coordinate.Down, aim*c.count)
		}
	}
	return strconv.Itoa(sub.Row() * sub.Col()), nil
}

func parse(in string) ([]command, error) {
	var cmds []command
	for i, l := range input.Lines(in) {
		word, num, ok := strings.Cut(l, " ")
		if !ok {
			return nil, errors.Newf("line %d: malformed command %q", i+1, l)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		var d coordinate.Direction
		switch word {
		case "forward":
			d = coordinate.Right
		case "down":
			d = coordinate.Down
		case "up":
			d = coordinate.Up
		default:
			return nil, errors.Newf("line %d: unknown command %q", i+1, word)
		}
		cmds = append(cmds, command{dir: d, count: n})
	}
	return cmds, nil
}
