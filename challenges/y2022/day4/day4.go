// Package day4 solves 2022 day 4, Camp Cleanup: overlapping section ranges.
package day4

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/aoc/input"
	"github.com/katalvlaran/aoc/interval"
	"github.com/katalvlaran/aoc/puzzle"
)

var (
	//go:embed sample.txt
	sample string
	//go:embed puzzle.toml
	manifest string
)

// Day is the registered puzzle.
var Day = puzzle.MustDay(2022, 4, "Camp Cleanup", Part1, Part2, sample, manifest)

type pair [2]interval.Range[int]

// Part1 counts pairs where one assignment fully contains the other.
func Part1(in string, _ puzzle.Params) (string, error) {
	return count(in, func(p pair) bool {
		return p[0].ContainsRange(p[1]) || p[1].ContainsRange(p[0])
	})
}

// Part2 counts pairs that overlap at all.
func Part2(in string, _ puzzle.Params) (string, error) {
	return count(in, func(p pair) bool {
		return !p[0].Intersect(p[1]).IsEmpty()
	})
}

func count(in string, match func(pair) bool) (string, error) {
	n := 0
	for i, l := range input.Lines(in) {
		p, err := parsePair(l)
		if err != nil {
			return "", errors.Wrapf(err, "line %d", i+1)
		}
		if match(p) {
			n++
		}
	}
	return strconv.Itoa(n), nil
}

func parsePair(l string) (pair, error) {
	a, b, ok := strings.Cut(l, ",")
	if !ok {
		return pair{}, errors.Newf("missing comma in %q", l)
	}
	first, err := parseRange(a)
	if err != nil {
		return pair{}, err
	}
	second, err := parseRange(b)
	if err != nil {
		return pair{}, err
	}
	return pair{first, second}, nil
}

func parseRange(s string) (interval.Range[int], error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return interval.Range[int]{}, errors.Newf("missing dash in %q", s)
	}
	l, err := strconv.Atoi(lo)
	if err != nil {
		return interval.Range[int]{}, errors.Wrap(err, "range start")
	}
	h, err := strconv.Atoi(hi)
	if err != nil {
		return interval.Range[int]{}, errors.Wrap(err, "range end")
	}
	if l > h {
		return interval.Range[int]{}, errors.Newf("reversed range %q", s)
	}
	return interval.New(l, h), nil
}
