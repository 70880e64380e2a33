// Package day10 solves 2022 day 10, Cathode-Ray Tube: a two-instruction CPU
// driving a 40-column CRT.
//
// The answer to part 2 is the rendered screen, one line per CRT row, with
// '#' for lit pixels and '.' for dark ones.
package day10

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
var Day = puzzle.MustDay(2022, 10, "Cathode-Ray Tube", Part1, Part2, sample, manifest)

const screenWidth = 40

// instruction is noop (add 0, one cycle) or addx (two cycles).
type instruction struct {
	cycles int
	add    int
}

// Part1 sums the signal strength, cycle times X, during cycles 20, 60, ...
// 220.
func Part1(in string, _ puzzle.Params) (string, error) {
	prog, err := parse(in)
	if err != nil {
		return "", err
	}
	sum := 0
	execute(prog, func(cycle, x int) {
		if cycle <= 220 && (cycle-20)%40 == 0 {
			sum += cycle * x
		}
	})
	return strconv.Itoa(sum), nil
}

// Part2 draws the CRT. During each cycle the pixel under the beam is lit
// when the three-pixel sprite centered on X covers it.
func Part2(in string, _ puzzle.Params) (string, error) {
	prog, err := parse(in)
	if err != nil {
		return "", err
	}
	screen := grid.New[bool, int, coordinate.Cell]()
	execute(prog, func(cycle, x int) {
		pixel := coordinate.Cell{Row: (cycle - 1) / screenWidth, Col: (cycle - 1) % screenWidth}
		*screen.Ensure(pixel) = abs(x-pixel.Col) <= 1
	})

	var sb strings.Builder
	err = screen.Render(&sb, func(_ coordinate.Cell, lit *bool) string {
		if lit != nil && *lit {
			return "#"
		}
		return "."
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// execute calls during for every cycle with the 1-based cycle number and the
// value of X during that cycle. addx changes X once both of its cycles
// have passed.
func execute(prog []instruction, during func(cycle, x int)) {
	cycle, x := 1, 1
	for _, ins := range prog {
		for range ins.cycles {
			during(cycle, x)
			cycle++
		}
		x += ins.add
	}
}

func parse(in string) ([]instruction, error) {
	var prog []instruction
	for i, l := range input.Lines(in) {
		op, arg, _ := strings.Cut(strings.TrimSpace(l), " ")
		switch op {
		case "noop":
			prog = append(prog, instruction{cycles: 1})
		case "addx":
			v, err := strconv.Atoi(arg)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", i+1)
			}
			prog = append(prog, instruction{cycles: 2, add: v})
		default:
			return nil, errors.Newf("line %d: unknown instruction %q", i+1, l)
		}
	}
	return prog, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
