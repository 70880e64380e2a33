// Package day6 solves 2022 day 6, Tuning Trouble: finding the first run of
// distinct characters in a datastream.
package day6

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/aoc/puzzle"
)

var (
	//go:embed sample.txt
	sample string
	//go:embed puzzle.toml
	manifest string
)

// Day is the registered puzzle.
var Day = puzzle.MustDay(2022, 6, "Tuning Trouble", Part1, Part2, sample, manifest)

// ErrNoMarker is returned when no window of distinct characters exists.
var ErrNoMarker = errors.New("no marker found")

// Part1 finds the end of the first start-of-packet marker (4 distinct).
func Part1(in string, _ puzzle.Params) (string, error) { return marker(in, 4) }

// Part2 finds the end of the first start-of-message marker (14 distinct).
func Part2(in string, _ puzzle.Params) (string, error) { return marker(in, 14) }

// marker slides a window of size n, tracking the last index of each byte
// so the window's start only ever moves forward.
func marker(in string, n int) (string, error) {
	stream := strings.TrimSpace(in)
	var last [256]int
	start := 0
	for i := 0; i < len(stream); i++ {
		c := stream[i]
		if last[c] > start {
			start = last[c]
		}
		last[c] = i + 1
		if i+1-start == n {
			return strconv.Itoa(i + 1), nil
		}
	}
	return "", errors.Wrapf(ErrNoMarker, "window %d", n)
}
