// Package day1 solves 2022 day 1, Calorie Counting.
package day1

import (
	_ "embed"
	"slices"
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
var Day = puzzle.MustDay(2022, 1, "Calorie Counting", Part1, Part2, sample, manifest)

// Part1 returns the largest total carried by one elf.
func Part1(in string, _ puzzle.Params) (string, error) {
	return topSum(in, 1)
}

// Part2 returns the combined total of the three best-stocked elves.
func Part2(in string, _ puzzle.Params) (string, error) {
	return topSum(in, 3)
}

func topSum(in string, n int) (string, error) {
	totals, err := parse(in)
	if err != nil {
		return "", err
	}
	slices.Sort(totals)
	slices.Reverse(totals)
	sum := 0
	for _, t := range totals[:min(n, len(totals))] {
		sum += t
	}
	return strconv.Itoa(sum), nil
}

// parse returns each elf's calorie total.
func parse(in string) ([]int, error) {
	var totals []int
	for i, block := range input.Blocks(in) {
		total := 0
		for _, l := range block {
			v, err := strconv.Atoi(l)
			if err != nil {
				return nil, errors.Wrapf(err, "elf %d", i+1)
			}
			total += v
		}
		totals = append(totals, total)
	}
	return totals, nil
}
