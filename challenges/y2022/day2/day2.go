// Package day2 solves 2022 day 2, Rock Paper Scissors.
package day2

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
var Day = puzzle.MustDay(2022, 2, "Rock Paper Scissors", Part1, Part2, sample, manifest)

// Shapes are numbered 0 (rock), 1 (paper), 2 (scissors); shape s beats
// shape (s+2)%3.
type round struct{ them, me int }

// score is the shape value (1..3) plus 0, 3 or 6 for a loss, draw or win.
func score(them, me int) int {
	outcome := (me - them + 4) % 3 // 0 loss, 1 draw, 2 win
	return me + 1 + outcome*3
}

// Part1 reads the second column as the shape to play.
func Part1(in string, _ puzzle.Params) (string, error) {
	return total(in, func(r round) int { return score(r.them, r.me) })
}

// Part2 reads the second column as the required outcome.
func Part2(in string, _ puzzle.Params) (string, error) {
	return total(in, func(r round) int {
		// X lose, Y draw, Z win: shift the opponent's shape by -1, 0, +1.
		me := (r.them + r.me + 2) % 3
		return score(r.them, me)
	})
}

func total(in string, points func(round) int) (string, error) {
	sum := 0
	for i, l := range input.Lines(in) {
		if len(l) != 3 || l[1] != ' ' || l[0] < 'A' || l[0] > 'C' || l[2] < 'X' || l[2] > 'Z' {
			return "", errors.Newf("line %d: malformed round %q", i+1, l)
		}
		sum += points(round{them: int(l[0] - 'A'), me: int(l[2] - 'X')})
	}
	return strconv.Itoa(sum), nil
}
