// Package day3 solves 2022 day 3, Rucksack Reorganization.
//
// Item sets are 64-bit masks indexed by priority, so finding the shared
// item is a bitwise AND.
package day3

import (
	_ "embed"
	"math/bits"
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
var Day = puzzle.MustDay(2022, 3, "Rucksack Reorganization", Part1, Part2, sample, manifest)

// priority maps a-z to 1..26 and A-Z to 27..52.
func priority(b byte) (int, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 1, true
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 27, true
	}
	return 0, false
}

func items(s string) (uint64, error) {
	var set uint64
	for i := 0; i < len(s); i++ {
		p, ok := priority(s[i])
		if !ok {
			return 0, errors.Newf("bad item %q", s[i])
		}
		set |= 1 << p
	}
	return set, nil
}

// shared returns the priority of the single item common to every set.
func shared(sets ...uint64) (int, error) {
	common := ^uint64(0)
	for _, s := range sets {
		common &= s
	}
	if bits.OnesCount64(common) != 1 {
		return 0, errors.Newf("%d shared items, want 1", bits.OnesCount64(common))
	}
	return bits.TrailingZeros64(common), nil
}

// Part1 sums the priority of the item in both compartments of each sack.
func Part1(in string, _ puzzle.Params) (string, error) {
	sum := 0
	for i, l := range input.Lines(in) {
		if len(l)%2 != 0 {
			return "", errors.Newf("line %d: odd item count", i+1)
		}
		a, err := items(l[:len(l)/2])
		if err != nil {
			return "", errors.Wrapf(err, "line %d", i+1)
		}
		b, err := items(l[len(l)/2:])
		if err != nil {
			return "", errors.Wrapf(err, "line %d", i+1)
		}
		p, err := shared(a, b)
		if err != nil {
			return "", errors.Wrapf(err, "line %d", i+1)
		}
		sum += p
	}
	return strconv.Itoa(sum), nil
}

// Part2 sums the priority of the badge shared by each group of three.
func Part2(in string, _ puzzle.Params) (string, error) {
	lines := input.Lines(in)
	if len(lines)%3 != 0 {
		return "", errors.Newf("%d sacks do not form groups of three", len(lines))
	}
	sum := 0
	for g := 0; g < len(lines); g += 3 {
		var sets [3]uint64
		for j := range sets {
			s, err := items(lines[g+j])
			if err != nil {
				return "", errors.Wrapf(err, "line %d", g+j+1)
			}
			sets[j] = s
		}
		p, err := shared(sets[:]...)
		if err != nil {
			return "", errors.Wrapf(err, "group %d", g/3+1)
		}
		sum += p
	}
	return strconv.Itoa(sum), nil
}
