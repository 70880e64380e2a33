package puzzle

import (
	"fmt"
	"path"
)

// Solver computes one part's answer from the full input text.
type Solver func(input string, p Params) (string, error)

// Day is one registered puzzle.
type Day struct {
	Year     int
	Day      int
	Title    string
	Part1    Solver
	Part2    Solver
	Sample   string
	Manifest Manifest
}

// MustDay builds a Day from its embedded sample and manifest text and
// panics if the manifest is invalid. Days are package-level variables, so a
// broken manifest is a programming error.
func MustDay(year, day int, title string, part1, part2 Solver, sample, manifest string) Day {
	m, err := ParseManifest(manifest)
	if err != nil {
		panic(fmt.Sprintf("puzzle: %d day %d: %v", year, day, err))
	}
	return Day{
		Year:     year,
		Day:      day,
		Title:    title,
		Part1:    part1,
		Part2:    part2,
		Sample:   sample,
		Manifest: m,
	}
}

// Dir is the day's directory relative to a challenges or inputs root,
// e.g. "y2022/day12".
func (d Day) Dir() string {
	return path.Join(fmt.Sprintf("y%d", d.Year), fmt.Sprintf("day%d", d.Day))
}

// InputPath is where the real input lives relative to the inputs root.
func (d Day) InputPath() string { return path.Join(d.Dir(), "input.txt") }

// Solver returns the solver for part 1 or 2, nil otherwise.
func (d Day) Solver(part int) Solver {
	switch part {
	case 1:
		return d.Part1
	case 2:
		return d.Part2
	}
	return nil
}

func (d Day) String() string {
	return fmt.Sprintf("AOC %d Day %d: %s", d.Year, d.Day, d.Title)
}
