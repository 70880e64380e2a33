// Package day11 solves 2022 day 11, Monkey in the Middle.
package day11

import (
	_ "embed"
	"slices"
	"strconv"
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
var Day = puzzle.MustDay(2022, 11, "Monkey in the Middle", Part1, Part2, sample, manifest)

type monkey struct {
	items []int64
	// operand is nil when the operation uses old on both sides.
	operand *int64
	mul     bool
	divisor int64
	target  [2]int // [false, true]
}

func (m monkey) inspect(old int64) int64 {
	v := old
	if m.operand != nil {
		v = *m.operand
	}
	if m.mul {
		return old * v
	}
	return old + v
}

// Part1 plays 20 rounds where worry drops by a factor of three after each
// inspection and returns the product of the two busiest monkeys' counts.
func Part1(in string, p puzzle.Params) (string, error) {
	return play(in, int(p.Int("rounds", 20)), true)
}

// Part2 plays 10000 rounds without relief. Worry is kept modulo the product
// of every divisor, which preserves each divisibility test.
func Part2(in string, p puzzle.Params) (string, error) {
	return play(in, int(p.Int("rounds", 10000)), false)
}

func play(in string, rounds int, relief bool) (string, error) {
	monkeys, err := parse(in)
	if err != nil {
		return "", err
	}
	modulus := int64(1)
	for _, m := range monkeys {
		modulus *= m.divisor
	}
	counts := make([]int, len(monkeys))
	for range rounds {
		for i := range monkeys {
			m := &monkeys[i]
			for _, item := range m.items {
				counts[i]++
				w := m.inspect(item)
				if relief {
					w /= 3
				} else {
					w %= modulus
				}
				to := m.target[0]
				if w%m.divisor == 0 {
					to = m.target[1]
				}
				monkeys[to].items = append(monkeys[to].items, w)
			}
			m.items = m.items[:0]
		}
	}
	slices.Sort(counts)
	n := len(counts)
	if n < 2 {
		return "", errors.New("need at least two monkeys")
	}
	return strconv.FormatInt(int64(counts[n-1])*int64(counts[n-2]), 10), nil
}

func parse(in string) ([]monkey, error) {
	var monkeys []monkey
	for i, block := range input.Blocks(in) {
		m, err := parseMonkey(block)
		if err != nil {
			return nil, errors.Wrapf(err, "monkey %d", i)
		}
		monkeys = append(monkeys, m)
	}
	for i, m := range monkeys {
		for _, t := range m.target {
			if t < 0 || t >= len(monkeys) || t == i {
				return nil, errors.Newf("monkey %d: bad target %d", i, t)
			}
		}
	}
	return monkeys, nil
}

func parseMonkey(block []string) (monkey, error) {
	if len(block) != 6 {
		return monkey{}, errors.Newf("want 6 lines, got %d", len(block))
	}
	var m monkey
	items, err := input.Ints(block[1])
	if err != nil {
		return monkey{}, err
	}
	for _, v := range items {
		m.items = append(m.items, int64(v))
	}

	_, expr, found := strings.Cut(block[2], "new = old ")
	op, arg, split := strings.Cut(expr, " ")
	if !found || !split || (op != "*" && op != "+") {
		return monkey{}, errors.Newf("bad operation %q", block[2])
	}
	m.mul = op == "*"
	if arg != "old" {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return monkey{}, errors.Wrap(err, "operand")
		}
		m.operand = &v
	}

	for j, line := range block[3:] {
		v, err := input.Ints(line)
		if err != nil || len(v) != 1 {
			return monkey{}, errors.Newf("bad line %q", line)
		}
		switch j {
		case 0:
			if v[0] <= 0 {
				return monkey{}, errors.Newf("bad divisor %d", v[0])
			}
			m.divisor = int64(v[0])
		case 1:
			m.target[1] = v[0]
		case 2:
			m.target[0] = v[0]
		}
	}
	return m, nil
}
