// Package day15 solves 2022 day 15, Beacon Exclusion Zone.
//
// Each sensor excludes a diamond of radius equal to the Manhattan distance
// to its beacon. A single row of the diamond is an interval, so both parts
// reduce to merging intervals per row.
package day15

import (
	_ "embed"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/aoc/coordinate"
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
var Day = puzzle.MustDay(2022, 15, "Beacon Exclusion Zone", Part1, Part2, sample, manifest)

// ErrNoBeacon is returned when the search area has no uncovered position.
var ErrNoBeacon = errors.New("distress beacon not found")

const tuningMultiplier = 4000000

type sensor struct {
	at, beacon coordinate.Point
	radius     int
}

// coverage returns the x interval this sensor excludes on row y.
func (s sensor) coverage(y int) interval.Range[int] {
	dy, _ := s.at.VerticalRelativeTo(coordinate.Point{X: s.at.X, Y: y})
	spare := s.radius - dy
	if spare < 0 {
		return interval.Empty[int]()
	}
	return interval.New(s.at.X-spare, s.at.X+spare)
}

func rowCoverage(sensors []sensor, y int) []interval.Range[int] {
	ranges := make([]interval.Range[int], 0, len(sensors))
	for _, s := range sensors {
		ranges = append(ranges, s.coverage(y))
	}
	return interval.Merge(ranges...)
}

// Part1 counts positions on the row parameter where no beacon can be.
func Part1(in string, p puzzle.Params) (string, error) {
	sensors, err := parse(in)
	if err != nil {
		return "", err
	}
	y := int(p.Int("row", 2000000))
	merged := rowCoverage(sensors, y)

	n := 0
	for _, r := range merged {
		n += r.Count()
	}
	beacons := map[coordinate.Point]struct{}{}
	for _, s := range sensors {
		if s.beacon.Y != y {
			continue
		}
		if _, dup := beacons[s.beacon]; dup {
			continue
		}
		beacons[s.beacon] = struct{}{}
		for _, r := range merged {
			if r.Contains(s.beacon.X) {
				n--
				break
			}
		}
	}
	return strconv.Itoa(n), nil
}

// Part2 finds the one uncovered position with both coordinates in
// [0, max] and returns its tuning frequency x*4000000+y.
func Part2(in string, p puzzle.Params) (string, error) {
	sensors, err := parse(in)
	if err != nil {
		return "", err
	}
	limit := int(p.Int("max", 4000000))
	span := interval.New(0, limit)
	area := coordinate.NewRect[int, coordinate.Point](span, span)

	for y := range area.Vertical().All() {
		// Merged ranges are sorted and disjoint, so the first x not
		// covered by the ranges seen so far is the only candidate.
		x := 0
		for _, r := range rowCoverage(sensors, y) {
			clipped := r.Intersect(span)
			lo, ok := clipped.Start()
			if !ok {
				continue
			}
			if lo > x {
				break
			}
			hi, _ := clipped.End()
			x = max(x, hi+1)
		}
		if beacon := (coordinate.Point{X: x, Y: y}); area.Contains(beacon) {
			return strconv.FormatInt(int64(x)*tuningMultiplier+int64(y), 10), nil
		}
	}
	return "", ErrNoBeacon
}

func parse(in string) ([]sensor, error) {
	var out []sensor
	for i, l := range input.Lines(in) {
		v, err := input.Ints(l)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		if len(v) != 4 {
			return nil, errors.Newf("line %d: want 4 numbers, got %d", i+1, len(v))
		}
		s := sensor{at: coordinate.Point{X: v[0], Y: v[1]}, beacon: coordinate.Point{X: v[2], Y: v[3]}}
		s.radius = s.at.ManhattanDistance(s.beacon)
		out = append(out, s)
	}
	return out, nil
}
