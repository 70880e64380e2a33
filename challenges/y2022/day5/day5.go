// Package day5 solves 2022 day 5, Supply Stacks.
package day5

import (
	_ "embed"
	"slices"
	"strings"

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
var Day = puzzle.MustDay(2022, 5, "Supply Stacks", Part1, Part2, sample, manifest)

// move takes count crates from stack from to stack to (zero-based).
type move struct{ count, from, to int }

// Part1 moves crates one at a time, reversing each moved group.
func Part1(in string, _ puzzle.Params) (string, error) { return rearrange(in, true) }

// Part2 moves each group at once, keeping its order.
func Part2(in string, _ puzzle.Params) (string, error) { return rearrange(in, false) }

func rearrange(in string, oneAtATime bool) (string, error) {
	stacks, moves, err := parse(in)
	if err != nil {
		return "", err
	}
	for i, m := range moves {
		src := stacks[m.from]
		if m.count > len(src) {
			return "", errors.Newf("move %d: %d crates from a stack of %d", i+1, m.count, len(src))
		}
		group := slices.Clone(src[len(src)-m.count:])
		if oneAtATime {
			slices.Reverse(group)
		}
		stacks[m.from] = src[:len(src)-m.count]
		stacks[m.to] = append(stacks[m.to], group...)
	}
	var top strings.Builder
	for _, s := range stacks {
		if len(s) > 0 {
			top.WriteByte(s[len(s)-1])
		}
	}
	return top.String(), nil
}

// parse reads the drawing, bottom row first, and the move list. Crate
// letters sit at column 1+4k for stack k.
func parse(in string) ([][]byte, []move, error) {
	blocks := input.Blocks(in)
	if len(blocks) != 2 {
		return nil, nil, errors.Newf("want drawing and moves, got %d blocks", len(blocks))
	}
	drawing, procedure := blocks[0], blocks[1]
	labels := strings.Fields(drawing[len(drawing)-1])
	stacks := make([][]byte, len(labels))
	for r := len(drawing) - 2; r >= 0; r-- {
		row := drawing[r]
		for k := range stacks {
			col := 1 + 4*k
			if col < len(row) && row[col] != ' ' {
				stacks[k] = append(stacks[k], row[col])
			}
		}
	}

	moves := make([]move, 0, len(procedure))
	for i, l := range procedure {
		v, err := input.Ints(l)
		if err != nil || len(v) != 3 {
			return nil, nil, errors.Newf("move %d: malformed %q", i+1, l)
		}
		m := move{count: v[0], from: v[1] - 1, to: v[2] - 1}
		if m.from < 0 || m.from >= len(stacks) || m.to < 0 || m.to >= len(stacks) {
			return nil, nil, errors.Newf("move %d: no such stack", i+1)
		}
		moves = append(moves, m)
	}
	return stacks, moves, nil
}
