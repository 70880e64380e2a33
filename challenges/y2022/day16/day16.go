// Package day16 solves 2022 day 16, Proboscidea Volcanium.
//
// Valves are kept in one slice and refer to each other by index. Only
// valves with a positive flow rate matter once travel times are known, so
// the tunnels are first collapsed into shortest distances between those
// valves (one BFS each), and the search then enumerates the order in which
// they are opened. Open sets are bit masks over the useful valves.
package day16

import (
	_ "embed"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/aoc/input"
	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/search"
)

var (
	//go:embed sample.txt
	sample string
	//go:embed puzzle.toml
	manifest string
)

// Day is the registered puzzle.
var Day = puzzle.MustDay(2022, 16, "Proboscidea Volcanium", Part1, Part2, sample, manifest)

const (
	startValve = "AA"
	maxUseful  = 63
)

type valve struct {
	name    string
	rate    int
	tunnels []int
}

type network struct {
	valves []valve
	start  int
	// useful lists valve indices with a positive rate; a valve's position
	// here is its bit in an open mask.
	useful []int
	// dist[a][b] is the travel time between two valves of interest.
	dist map[int]map[int]int
}

type state struct {
	at       int
	left     int
	open     uint64
	pressure int
}

// Part1 is the most pressure one explorer releases in 30 minutes.
func Part1(in string, p puzzle.Params) (string, error) {
	n, err := parse(in)
	if err != nil {
		return "", err
	}
	best := 0
	for _, v := range n.explore(int(p.Int("minutes", 30))) {
		best = max(best, v)
	}
	return strconv.Itoa(best), nil
}

// Part2 is the most pressure two explorers release in 26 minutes. They
// never open the same valve, so the answer is the best pair of disjoint
// open sets.
func Part2(in string, p puzzle.Params) (string, error) {
	n, err := parse(in)
	if err != nil {
		return "", err
	}
	best := n.explore(int(p.Int("minutes", 26)))

	type entry struct {
		open     uint64
		pressure int
	}
	entries := make([]entry, 0, len(best))
	for open, pressure := range best {
		entries = append(entries, entry{open, pressure})
	}
	slices.SortFunc(entries, func(a, b entry) int { return b.pressure - a.pressure })

	total := 0
	for i, a := range entries {
		if a.pressure*2 < total {
			break
		}
		for _, b := range entries[i:] {
			if a.pressure+b.pressure <= total {
				break
			}
			if a.open&b.open == 0 {
				total = a.pressure + b.pressure
			}
		}
	}
	return strconv.Itoa(total), nil
}

// explore returns, for every reachable open set, the most pressure
// released by opening exactly those valves within the time limit.
func (n *network) explore(minutes int) map[uint64]int {
	best := map[uint64]int{}
	stack := []state{{at: n.start, left: minutes}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if v, ok := best[s.open]; !ok || s.pressure > v {
			best[s.open] = s.pressure
		}
		for bit, idx := range n.useful {
			if s.open&(1<<bit) != 0 {
				continue
			}
			d, ok := n.dist[s.at][idx]
			if !ok {
				continue
			}
			left := s.left - d - 1
			if left <= 0 {
				continue
			}
			stack = append(stack, state{
				at:       idx,
				left:     left,
				open:     s.open | 1<<bit,
				pressure: s.pressure + left*n.valves[idx].rate,
			})
		}
	}
	return best
}

func (n *network) tunnels(i int) iter.Seq[int] {
	return slices.Values(n.valves[i].tunnels)
}

func parse(in string) (*network, error) {
	n := &network{dist: map[int]map[int]int{}}
	index := map[string]int{}
	var links [][]string

	for i, l := range input.Lines(in) {
		head, tail, ok := strings.Cut(l, "; ")
		fields := strings.Fields(head)
		if !ok || len(fields) != 5 || fields[0] != "Valve" {
			return nil, errors.Newf("line %d: malformed valve %q", i+1, l)
		}
		rate, err := input.Ints(fields[4])
		if err != nil || len(rate) != 1 {
			return nil, errors.Newf("line %d: bad flow rate %q", i+1, fields[4])
		}
		to := strings.Fields(tail)
		if len(to) < 5 {
			return nil, errors.Newf("line %d: no tunnels", i+1)
		}
		for j := range to[4:] {
			to[4+j] = strings.TrimSuffix(to[4+j], ",")
		}
		index[fields[1]] = len(n.valves)
		n.valves = append(n.valves, valve{name: fields[1], rate: rate[0]})
		links = append(links, to[4:])
	}

	for i, names := range links {
		for _, name := range names {
			j, ok := index[name]
			if !ok {
				return nil, errors.Newf("valve %s: tunnel to unknown valve %s", n.valves[i].name, name)
			}
			n.valves[i].tunnels = append(n.valves[i].tunnels, j)
		}
		if n.valves[i].rate > 0 {
			n.useful = append(n.useful, i)
		}
	}
	if len(n.useful) > maxUseful {
		return nil, errors.Newf("%d valves with flow exceed %d", len(n.useful), maxUseful)
	}

	start, ok := index[startValve]
	if !ok {
		return nil, errors.Newf("no valve %s", startValve)
	}
	n.start = start

	for _, from := range append([]int{start}, n.useful...) {
		d, err := search.Distances(from, n.tunnels)
		if err != nil {
			return nil, err
		}
		n.dist[from] = d
	}
	return n, nil
}
