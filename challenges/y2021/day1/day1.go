// Package day1 solves 2021 day 1, Sonar Sweep: counting depth increases.
package day1

import (
	_ "embed"
	"strconv"

	"github.com/cockroachdb/errors"

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
var Day = puzzle.MustDay(2021, 1, "Sonar Sweep", Part1, Part2, sample, manifest)

// Part1 counts measurements larger than the previous one.
func Part1(in string, _ puzzle.Params) (string, error) {
	depths, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(increases(depths, 1)), nil
}

// Part2 counts increases of the three-measurement sliding window sum.
func Part2(in string, _ puzzle.Params) (string, error) {
	depths, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(increases(depths, 3)), nil
}

// increases compares windows of size w. Consecutive windows share w-1
// values, so only the entering and leaving values matter.
func increases(depths []int, w int) int {
	n := 0
	for i := w; i < len(depths); i++ {
		if depths[i] > depths[i-w] {
			n++
		}
	}
	return n
}

func parse(in string) ([]int, error) {
	lines := input.Lines(in)
	out := make([]int, 0, len(lines))
	for i, l := range lines {
		v, err := strconv.Atoi(l)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		out = append(out, v)
	}
	return out, nil
}
