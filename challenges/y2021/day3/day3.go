// Package day3 solves 2021 day 3, Binary Diagnostic.
package day3

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
var Day = puzzle.MustDay(2021, 3, "Binary Diagnostic", Part1, Part2, sample, manifest)

// Part1 multiplies the gamma rate (most common bits) by the epsilon rate.
func Part1(in string, _ puzzle.Params) (string, error) {
	lines, err := parse(in)
	if err != nil {
		return "", err
	}
	width := len(lines[0])
	gamma := 0
	for bit := 0; bit < width; bit++ {
		gamma <<= 1
		if ones(lines, bit)*2 >= len(lines) {
			gamma |= 1
		}
	}
	epsilon := ^gamma & (1<<width - 1)
	return strconv.Itoa(gamma * epsilon), nil
}

// Part2 multiplies the oxygen generator and CO2 scrubber ratings.
func Part2(in string, _ puzzle.Params) (string, error) {
	lines, err := parse(in)
	if err != nil {
		return "", err
	}
	oxygen, err := rating(lines, true)
	if err != nil {
		return "", err
	}
	co2, err := rating(lines, false)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(oxygen*co2, 10), nil
}

func ones(lines []string, bit int) int {
	n := 0
	for _, l := range lines {
		if l[bit] == '1' {
			n++
		}
	}
	return n
}

// rating filters lines bit by bit, keeping the most common value (ties
// keep '1') or the least common (ties keep '0'), until one remains.
func rating(lines []string, mostCommon bool) (int64, error) {
	for bit := 0; len(lines) > 1 && bit < len(lines[0]); bit++ {
		n := ones(lines, bit)
		keep := byte('0')
		if (n*2 >= len(lines)) == mostCommon {
			keep = '1'
		}
		var next []string
		for _, l := range lines {
			if l[bit] == keep {
				next = append(next, l)
			}
		}
		lines = next
	}
	if len(lines) != 1 {
		return 0, errors.Newf("rating is ambiguous: %d candidates", len(lines))
	}
	return strconv.ParseInt(lines[0], 2, 64)
}

func parse(in string) ([]string, error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return nil, errors.New("empty report")
	}
	for i, l := range lines {
		if len(l) != len(lines[0]) {
			return nil, errors.Newf("line %d: width %d, want %d", i+1, len(l), len(lines[0]))
		}
		for _, r := range l {
			if r != '0' && r != '1' {
				return nil, errors.Newf("line %d: not binary: %q", i+1, l)
			}
		}
	}
	return lines, nil
}
