// Package day7 solves 2022 day 7, No Space Left On Device.
//
// The terminal transcript is replayed into a directory tree kept in an
// arena: directories live in one slice and refer to their parent and
// children by index, so "cd .." is a lookup rather than a pointer chase.
package day7

import (
	_ "embed"
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
var Day = puzzle.MustDay(2022, 7, "No Space Left On Device", Part1, Part2, sample, manifest)

const root = 0

type dir struct {
	name     string
	parent   int
	children map[string]int
	// files is the total size of files directly inside this directory.
	files int
}

type tree struct {
	dirs []dir
}

func newTree() *tree {
	return &tree{dirs: []dir{{name: "/", parent: root, children: map[string]int{}}}}
}

// child returns the index of name under parent, creating it on first use.
func (t *tree) child(parent int, name string) int {
	if i, ok := t.dirs[parent].children[name]; ok {
		return i
	}
	t.dirs = append(t.dirs, dir{name: name, parent: parent, children: map[string]int{}})
	i := len(t.dirs) - 1
	t.dirs[parent].children[name] = i
	return i
}

// sizes returns the recursive size of every directory, indexed like dirs.
// Children are always appended after their parent, so a reverse sweep sees
// every child before its parent.
func (t *tree) sizes() []int {
	out := make([]int, len(t.dirs))
	for i := len(t.dirs) - 1; i >= 0; i-- {
		out[i] += t.dirs[i].files
		if i != root {
			out[t.dirs[i].parent] += out[i]
		}
	}
	return out
}

// Part1 sums the sizes of directories no larger than the limit parameter.
func Part1(in string, p puzzle.Params) (string, error) {
	t, err := parse(in)
	if err != nil {
		return "", err
	}
	limit := int(p.Int("limit", 100000))
	sum := 0
	for _, s := range t.sizes() {
		if s <= limit {
			sum += s
		}
	}
	return strconv.Itoa(sum), nil
}

// Part2 finds the smallest directory whose removal frees enough space.
func Part2(in string, p puzzle.Params) (string, error) {
	t, err := parse(in)
	if err != nil {
		return "", err
	}
	sizes := t.sizes()
	free := int(p.Int("disk", 70000000)) - sizes[root]
	need := int(p.Int("needed", 30000000)) - free
	if need <= 0 {
		return "0", nil
	}
	best := sizes[root]
	for _, s := range sizes {
		if s >= need && s < best {
			best = s
		}
	}
	return strconv.Itoa(best), nil
}

func parse(in string) (*tree, error) {
	t := newTree()
	cwd := root
	for i, l := range input.Lines(in) {
		fields := strings.Fields(l)
		switch {
		case len(fields) == 0:
			continue
		case fields[0] == "$" && len(fields) >= 2 && fields[1] == "ls":
		case fields[0] == "$" && len(fields) == 3 && fields[1] == "cd":
			switch fields[2] {
			case "/":
				cwd = root
			case "..":
				cwd = t.dirs[cwd].parent
			default:
				cwd = t.child(cwd, fields[2])
			}
		case fields[0] == "dir" && len(fields) == 2:
			t.child(cwd, fields[1])
		case len(fields) == 2:
			size, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", i+1)
			}
			t.dirs[cwd].files += size
		default:
			return nil, errors.Newf("line %d: unrecognized %q", i+1, l)
		}
	}
	return t, nil
}
